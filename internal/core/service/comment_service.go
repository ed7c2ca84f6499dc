package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// CommentService creates comments. There is deliberately no update or delete.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log}
}

func (s *CommentService) Create(ctx context.Context, actor domain.Actor, postID, content string) (*domain.Comment, error) {
	if err := domain.AuthorizeErr(actor, domain.CreateComment()); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrCommentEmpty
	}

	// The parent must exist; a comment cannot be created against a deleted post.
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    postID,
		UserID:    actor.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		s.log.Error().Err(err).Str("post_id", postID).Msg("failed to create comment")
		return nil, err
	}

	s.log.Info().Str("comment_id", created.ID).Str("post_id", postID).Msg("comment created")
	return created, nil
}
