package persistent

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sky-archive/internal/entity"
	"sky-archive/internal/model"
)

// UserRepository is the document-store contract for users. Lookups surface
// not-found as a nil record, not an error.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (string, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, cursorID string, limit int64) ([]*entity.User, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection(model.UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	userModel := ToUserModel(user)

	res, err := r.collection.InsertOne(ctx, userModel)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// List returns up to limit users ordered newest first. A non-empty cursorID
// restricts the page to users with a smaller id than the cursor.
func (r *userRepository) List(ctx context.Context, cursorID string, limit int64) ([]*entity.User, error) {
	filter := bson.M{}
	if cursorID != "" {
		oid, err := primitive.ObjectIDFromHex(cursorID)
		if err != nil {
			return nil, nil
		}
		filter["_id"] = bson.M{"$lt": oid}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var userModels []model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.collection.FindOne(ctx, filter).Decode(&userModel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}
