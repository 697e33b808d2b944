package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist keeps its videos as an ordered set: a video appears at most once.
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
}
