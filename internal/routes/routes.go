package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Samir-codes-123/videotube-backend/internal/handlers"
)

// Handlers bundles everything Register wires under /api/v1.
type Handlers struct {
	Videos        *handlers.VideoHandler
	Comments      *handlers.CommentHandler
	Likes         *handlers.LikeHandler
	Tweets        *handlers.TweetHandler
	Playlists     *handlers.PlaylistHandler
	Subscriptions *handlers.SubscriptionHandler
	Dashboard     *handlers.DashboardHandler
	Users         *handlers.UserHandler
}

// Register mounts the API behind the auth middleware. Health stays public.
func Register(app *fiber.App, h Handlers, auth fiber.Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api/v1", auth)

	api.Get("/videos", h.Videos.List)
	api.Post("/videos", h.Videos.Publish)
	api.Get("/videos/:videoId", h.Videos.Get)
	api.Patch("/videos/:videoId", h.Videos.Update)
	api.Delete("/videos/:videoId", h.Videos.Delete)
	api.Patch("/videos/:videoId/publish", h.Videos.TogglePublish)

	api.Get("/videos/:videoId/comments", h.Comments.List)
	api.Post("/videos/:videoId/comments", h.Comments.Add)
	api.Patch("/comments/:commentId", h.Comments.Update)
	api.Delete("/comments/:commentId", h.Comments.Delete)

	api.Post("/likes/toggle/v/:videoId", h.Likes.ToggleVideo)
	api.Post("/likes/toggle/c/:commentId", h.Likes.ToggleComment)
	api.Post("/likes/toggle/t/:tweetId", h.Likes.ToggleTweet)
	api.Get("/likes/videos", h.Likes.LikedVideos)

	api.Post("/tweets", h.Tweets.Create)
	api.Get("/users/:userId/tweets", h.Tweets.ListByUser)
	api.Patch("/tweets/:tweetId", h.Tweets.Update)
	api.Delete("/tweets/:tweetId", h.Tweets.Delete)

	api.Post("/playlists", h.Playlists.Create)
	api.Get("/users/:userId/playlists", h.Playlists.ListByUser)
	api.Get("/playlists/:playlistId", h.Playlists.Get)
	api.Patch("/playlists/:playlistId", h.Playlists.Update)
	api.Delete("/playlists/:playlistId", h.Playlists.Delete)
	api.Patch("/playlists/:playlistId/videos/:videoId", h.Playlists.AddVideo)
	api.Delete("/playlists/:playlistId/videos/:videoId", h.Playlists.RemoveVideo)

	api.Post("/subscriptions/c/:channelId", h.Subscriptions.Toggle)
	api.Get("/subscriptions/c/:channelId/subscribers", h.Subscriptions.ChannelSubscribers)
	api.Get("/subscriptions/u/:subscriberId/channels", h.Subscriptions.SubscribedChannels)

	api.Get("/dashboard/:channelId/stats", h.Dashboard.Stats)
	api.Get("/dashboard/:channelId/videos", h.Dashboard.Videos)

	api.Get("/users/:userId", h.Users.Profile)
}
