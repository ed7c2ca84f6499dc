package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// PostService implements post operations. Every mutating or privileged read
// goes through domain.Authorize before touching the repository.
type PostService struct {
	posts    ports.PostRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewPostService(posts ports.PostRepository, comments ports.CommentRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, comments: comments, log: log}
}

func (s *PostService) Create(ctx context.Context, actor domain.Actor, in ports.CreatePostInput) (*domain.Post, error) {
	if err := domain.AuthorizeErr(actor, domain.CreatePost()); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		UserID:    actor.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("user_id", actor.ID).Msg("post created")
	return created, nil
}

// Get returns the post with its author and comment thread. Any session may
// read a single post; only the session requirement applies here.
func (s *PostService) Get(ctx context.Context, actor domain.Actor, id string) (*ports.PostDetail, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.PostDetail{Post: post, Comments: comments}, nil
}

func (s *PostService) ListAll(ctx context.Context, actor domain.Actor) ([]*domain.Post, error) {
	if err := domain.AuthorizeErr(actor, domain.ViewAllPosts()); err != nil {
		return nil, err
	}
	return s.posts.List(ctx)
}

func (s *PostService) ListMine(ctx context.Context, actor domain.Actor) ([]*domain.Post, error) {
	if err := domain.AuthorizeErr(actor, domain.ViewOwnPosts()); err != nil {
		return nil, err
	}
	return s.posts.ListByUser(ctx, actor.ID)
}

func (s *PostService) Update(ctx context.Context, actor domain.Actor, id string, in ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeErr(actor, domain.EditPost(post)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	patch := ports.PostPatch{
		Title:    &title,
		Content:  &in.Content,
		ImageURL: &in.ImageURL,
	}
	if err := s.posts.Update(ctx, id, patch); err != nil {
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to update post")
		return nil, err
	}

	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.AuthorizeErr(actor, domain.DeletePost(post)); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return err
	}

	// The store has no cascade; a post's comments go with it.
	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("post_id", id).Msg("failed to delete post comments")
	}

	s.log.Info().Str("post_id", id).Str("user_id", actor.ID).Str("role", string(actor.Role)).Msg("post deleted")
	return nil
}
