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

// AssetRepository is the document-store contract for assets. Lookups surface
// not-found as a nil record, not an error.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	GetNewest(ctx context.Context) (*entity.Asset, error)
	ListForScatter(ctx context.Context) ([]*entity.Asset, error)
}

type assetRepository struct {
	collection *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) AssetRepository {
	return &assetRepository{collection: db.Collection(model.AssetsCollection)}
}

func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) (string, error) {
	assetModel := ToAssetModel(asset)

	res, err := r.collection.InsertOne(ctx, assetModel)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid}, nil)
}

// GetNewest relies on ObjectIDs being monotonically increasing: the largest
// id is the most recently inserted document.
func (r *assetRepository) GetNewest(ctx context.Context) (*entity.Asset, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	return r.findOne(ctx, bson.M{}, opts)
}

// ListForScatter projects only the fields the scatter view needs.
func (r *assetRepository) ListForScatter(ctx context.Context) ([]*entity.Asset, error) {
	opts := options.Find().SetProjection(bson.M{
		"_id":        1,
		"src":        1,
		"created_at": 1,
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assetModels []model.AssetModel
	if err := cursor.All(ctx, &assetModels); err != nil {
		return nil, err
	}

	assets := make([]*entity.Asset, len(assetModels))
	for i := range assetModels {
		assets[i] = ToAssetEntity(&assetModels[i])
	}
	return assets, nil
}

func (r *assetRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*entity.Asset, error) {
	var assetModel model.AssetModel

	var err error
	if opts != nil {
		err = r.collection.FindOne(ctx, filter, opts).Decode(&assetModel)
	} else {
		err = r.collection.FindOne(ctx, filter).Decode(&assetModel)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return ToAssetEntity(&assetModel), nil
}
