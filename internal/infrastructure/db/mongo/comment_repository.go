package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clone := *c
	clone.ID = primitive.NewObjectID().Hex()
	clone.Author = nil

	if _, err := r.col.InsertOne(ctx, bson.M{
		"_id":        clone.ID,
		"post_id":    clone.PostID,
		"user_id":    clone.UserID,
		"content":    clone.Content,
		"created_at": clone.CreatedAt,
	}); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &clone, nil
}

// ListByPost returns the thread oldest first, each comment with its author
// joined and normalized the same way the post reads do.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"post_id": postID}}},
		authorLookup(),
		bson.D{{Key: "$sort", Value: bson.M{"created_at": 1}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate comments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Comment
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		out = append(out, &domain.Comment{
			ID:        docString(doc, "_id"),
			PostID:    docString(doc, "post_id"),
			UserID:    docString(doc, "user_id"),
			Content:   docString(doc, "content"),
			CreatedAt: docTime(doc, "created_at"),
			Author:    authorFromDoc(doc),
		})
	}
	return out, cur.Err()
}

func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"post_id": postID}); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	return nil
}

// EnsureIndexes creates the index the thread query relies on.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	return err
}
