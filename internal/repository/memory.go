package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samir-codes-123/videotube-backend/internal/models"
)

// In-memory implementations of the repository interfaces. They mirror the
// mongo semantics closely enough for the service and handler tests to run
// without a database.

type MemoryVideoRepo struct {
	mu     sync.Mutex
	videos map[primitive.ObjectID]models.Video
}

func NewMemoryVideoRepo() *MemoryVideoRepo {
	return &MemoryVideoRepo{videos: map[primitive.ObjectID]models.Video{}}
}

func (r *MemoryVideoRepo) Create(_ context.Context, v *models.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	r.videos[v.ID] = *v
	return nil
}

func (r *MemoryVideoRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (r *MemoryVideoRepo) List(_ context.Context, opts VideoListOptions) ([]models.Video, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(opts.Query)
	matched := []models.Video{}
	for _, v := range r.videos {
		if !strings.Contains(strings.ToLower(v.Title), q) &&
			!strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		if !opts.Owner.IsZero() && v.Owner != opts.Owner {
			continue
		}
		matched = append(matched, v)
	}
	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch opts.SortBy {
		case "views":
			less = matched[i].Views < matched[j].Views
		case "duration":
			less = matched[i].Duration < matched[j].Duration
		case "title":
			less = matched[i].Title < matched[j].Title
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if opts.Ascending {
			return less
		}
		return !less
	})
	total := int64(len(matched))
	start := (opts.Page - 1) * opts.Limit
	if start >= total {
		return []models.Video{}, total, nil
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *MemoryVideoRepo) ListByOwner(_ context.Context, owner primitive.ObjectID, publishedOnly bool) ([]models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Video{}
	for _, v := range r.videos {
		if v.Owner != owner {
			continue
		}
		if publishedOnly && !v.IsPublished {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryVideoRepo) FindOwned(_ context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok || v.Owner != owner {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (r *MemoryVideoRepo) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, patch VideoPatch) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok || v.Owner != owner {
		return nil, ErrNotFound
	}
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.Thumbnail != nil {
		v.Thumbnail = *patch.Thumbnail
	}
	r.videos[id] = v
	return &v, nil
}

func (r *MemoryVideoRepo) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok || v.Owner != owner {
		return ErrNotFound
	}
	delete(r.videos, id)
	return nil
}

func (r *MemoryVideoRepo) TogglePublish(_ context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.videos[id]
	if !ok || v.Owner != owner {
		return nil, ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	r.videos[id] = v
	return &v, nil
}

type MemoryCommentRepo struct {
	mu       sync.Mutex
	comments map[primitive.ObjectID]models.Comment
}

func NewMemoryCommentRepo() *MemoryCommentRepo {
	return &MemoryCommentRepo{comments: map[primitive.ObjectID]models.Comment{}}
}

func (r *MemoryCommentRepo) Create(_ context.Context, c *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.comments[c.ID] = *c
	return nil
}

func (r *MemoryCommentRepo) ListByVideo(_ context.Context, video primitive.ObjectID, page, limit int64) ([]models.Comment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := []models.Comment{}
	for _, c := range r.comments {
		if c.Video == video {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= total {
		return []models.Comment{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *MemoryCommentRepo) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok || c.Owner != owner {
		return nil, ErrNotFound
	}
	c.Content = content
	r.comments[id] = c
	return &c, nil
}

func (r *MemoryCommentRepo) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok || c.Owner != owner {
		return ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

type MemoryLikeRepo struct {
	mu    sync.Mutex
	likes map[primitive.ObjectID]models.Like
}

func NewMemoryLikeRepo() *MemoryLikeRepo {
	return &MemoryLikeRepo{likes: map[primitive.ObjectID]models.Like{}}
}

func (r *MemoryLikeRepo) Find(_ context.Context, target models.LikeTarget, likedBy primitive.ObjectID) (*models.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.likes {
		if l.Target == target && l.LikedBy == likedBy {
			return &l, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryLikeRepo) Create(_ context.Context, l *models.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.likes[l.ID] = *l
	return nil
}

func (r *MemoryLikeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.likes[id]; !ok {
		return ErrNotFound
	}
	delete(r.likes, id)
	return nil
}

func (r *MemoryLikeRepo) ListByUser(_ context.Context, likedBy primitive.ObjectID, kind models.LikeTargetKind) ([]models.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Like{}
	for _, l := range r.likes {
		if l.LikedBy == likedBy && l.Target.Kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}

type MemoryTweetRepo struct {
	mu     sync.Mutex
	tweets map[primitive.ObjectID]models.Tweet
}

func NewMemoryTweetRepo() *MemoryTweetRepo {
	return &MemoryTweetRepo{tweets: map[primitive.ObjectID]models.Tweet{}}
}

func (r *MemoryTweetRepo) Create(_ context.Context, t *models.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	r.tweets[t.ID] = *t
	return nil
}

func (r *MemoryTweetRepo) ListByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Tweet{}
	for _, t := range r.tweets {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryTweetRepo) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, content string) (*models.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[id]
	if !ok || t.Owner != owner {
		return nil, ErrNotFound
	}
	t.Content = content
	r.tweets[id] = t
	return &t, nil
}

func (r *MemoryTweetRepo) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tweets[id]
	if !ok || t.Owner != owner {
		return ErrNotFound
	}
	delete(r.tweets, id)
	return nil
}

type MemoryPlaylistRepo struct {
	mu        sync.Mutex
	playlists map[primitive.ObjectID]models.Playlist
}

func NewMemoryPlaylistRepo() *MemoryPlaylistRepo {
	return &MemoryPlaylistRepo{playlists: map[primitive.ObjectID]models.Playlist{}}
}

func (r *MemoryPlaylistRepo) Create(_ context.Context, p *models.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	r.playlists[p.ID] = *p
	return nil
}

func (r *MemoryPlaylistRepo) ListByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Playlist{}
	for _, p := range r.playlists {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryPlaylistRepo) FindOwned(_ context.Context, id, owner primitive.ObjectID) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok || p.Owner != owner {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryPlaylistRepo) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, name, description string) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok || p.Owner != owner {
		return nil, ErrNotFound
	}
	p.Name = name
	p.Description = description
	r.playlists[id] = p
	return &p, nil
}

func (r *MemoryPlaylistRepo) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok || p.Owner != owner {
		return ErrNotFound
	}
	delete(r.playlists, id)
	return nil
}

func (r *MemoryPlaylistRepo) AddVideo(_ context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok || p.Owner != owner {
		return nil, ErrNotFound
	}
	for _, v := range p.Videos {
		if v == video {
			return &p, nil
		}
	}
	p.Videos = append(append([]primitive.ObjectID{}, p.Videos...), video)
	r.playlists[id] = p
	return &p, nil
}

func (r *MemoryPlaylistRepo) RemoveVideo(_ context.Context, id, owner, video primitive.ObjectID) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.playlists[id]
	if !ok || p.Owner != owner {
		return nil, ErrNotFound
	}
	kept := []primitive.ObjectID{}
	for _, v := range p.Videos {
		if v != video {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	r.playlists[id] = p
	return &p, nil
}

type MemorySubscriptionRepo struct {
	mu   sync.Mutex
	subs map[primitive.ObjectID]models.Subscription
}

func NewMemorySubscriptionRepo() *MemorySubscriptionRepo {
	return &MemorySubscriptionRepo{subs: map[primitive.ObjectID]models.Subscription{}}
}

func (r *MemorySubscriptionRepo) Find(_ context.Context, channel, subscriber primitive.ObjectID) (*models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.Channel == channel && s.Subscriber == subscriber {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemorySubscriptionRepo) Create(_ context.Context, s *models.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.subs[s.ID] = *s
	return nil
}

func (r *MemorySubscriptionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[id]; !ok {
		return ErrNotFound
	}
	delete(r.subs, id)
	return nil
}

func (r *MemorySubscriptionRepo) ListSubscribers(_ context.Context, channel primitive.ObjectID) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Subscription{}
	for _, s := range r.subs {
		if s.Channel == channel {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *MemorySubscriptionRepo) ListChannels(_ context.Context, subscriber primitive.ObjectID) ([]models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Subscription{}
	for _, s := range r.subs {
		if s.Subscriber == subscriber {
			out = append(out, s)
		}
	}
	return out, nil
}

// MemoryUserRepo resolves channel stats against the sibling memory repos, the
// way the mongo implementation joins collections with $lookup.
type MemoryUserRepo struct {
	mu     sync.Mutex
	users  map[primitive.ObjectID]models.User
	videos *MemoryVideoRepo
	subs   *MemorySubscriptionRepo
}

func NewMemoryUserRepo(videos *MemoryVideoRepo, subs *MemorySubscriptionRepo) *MemoryUserRepo {
	return &MemoryUserRepo{
		users:  map[primitive.ObjectID]models.User{},
		videos: videos,
		subs:   subs,
	}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepo) ChannelStats(ctx context.Context, channel primitive.ObjectID) (*models.ChannelStats, error) {
	if _, err := r.GetByID(ctx, channel); err != nil {
		return nil, err
	}
	videos, err := r.videos.ListByOwner(ctx, channel, false)
	if err != nil {
		return nil, err
	}
	subs, err := r.subs.ListSubscribers(ctx, channel)
	if err != nil {
		return nil, err
	}
	stats := &models.ChannelStats{
		VideoCount:      int64(len(videos)),
		SubscriberCount: int64(len(subs)),
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
	}
	return stats, nil
}
