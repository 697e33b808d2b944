package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"username"`
	FullName   string             `bson:"full_name" json:"fullName"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverImage string             `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// ChannelStats is the projection produced by the dashboard aggregation.
type ChannelStats struct {
	VideoCount      int64 `bson:"video_count" json:"videoCount"`
	SubscriberCount int64 `bson:"subscriber_count" json:"subscriberCount"`
	TotalViews      int64 `bson:"total_views" json:"totalViews"`
}
