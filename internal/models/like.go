package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

// LikeTarget is a tagged reference: exactly one kind of likeable entity.
type LikeTarget struct {
	Kind LikeTargetKind     `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Target    LikeTarget         `bson:"target" json:"target"`
	LikedBy   primitive.ObjectID `bson:"liked_by" json:"likedBy"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
