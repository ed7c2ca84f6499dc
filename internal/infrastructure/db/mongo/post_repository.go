package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/embed"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

const collectionPosts = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *p
	clone.ID = primitive.NewObjectID().Hex()
	clone.Author = nil // author is resolved on reads only

	if _, err := r.col.InsertOne(ctx, bson.M{
		"_id":        clone.ID,
		"title":      clone.Title,
		"content":    clone.Content,
		"image_url":  clone.ImageURL,
		"user_id":    clone.UserID,
		"created_at": clone.CreatedAt,
	}); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return &clone, nil
}

// authorLookup joins the owning profile onto each post. The join always
// yields an array field, which is why every read funnels through
// embed.Related before the author is trusted.
func authorLookup() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         collectionProfiles,
		"localField":   "user_id",
		"foreignField": "_id",
		"as":           "profiles",
	}}}
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		authorLookup(),
	}

	posts, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrPostNotFound
	}
	return posts[0], nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	pipeline := mongo.Pipeline{
		authorLookup(),
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}
	return r.aggregate(ctx, pipeline)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Post, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userID}}},
		authorLookup(),
		bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}
	return r.aggregate(ctx, pipeline)
}

func (r *PostRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate posts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Post
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		out = append(out, postFromDoc(doc))
	}
	return out, cur.Err()
}

func postFromDoc(doc bson.M) *domain.Post {
	return &domain.Post{
		ID:        docString(doc, "_id"),
		Title:     docString(doc, "title"),
		Content:   docString(doc, "content"),
		ImageURL:  docString(doc, "image_url"),
		UserID:    docString(doc, "user_id"),
		CreatedAt: docTime(doc, "created_at"),
		Author:    authorFromDoc(doc),
	}
}

// authorFromDoc canonicalizes the joined profile regardless of the shape the
// store produced. A missing author degrades to nil; callers render the
// display placeholder.
func authorFromDoc(doc bson.M) *domain.Author {
	related := embed.Related(doc, "profiles")
	if related == nil {
		return nil
	}
	return &domain.Author{
		Username:  docString(related, "username"),
		Email:     docString(related, "email"),
		AvatarURL: docString(related, "avatar_url"),
	}
}

func docString(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

func docTime(doc map[string]any, key string) time.Time {
	switch t := doc[key].(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	}
	return time.Time{}
}

func (r *PostRepository) Update(ctx context.Context, id string, patch ports.PostPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the post queries rely on.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
