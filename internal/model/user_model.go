package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const UsersCollection = "users"

type UserModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Role     string             `bson:"role"`
}
