package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	byID    map[string]*domain.Profile
	nextID  int
	failErr error // if set, every call returns this error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byID: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, existing := range r.byID {
		if existing.Email == p.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *p
	clone.ID = "u" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	for _, p := range r.byID {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubProfileRepo) List(_ context.Context) ([]*domain.Profile, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	out := make([]*domain.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProfileRepo) UpdateProfile(_ context.Context, id string, patch ports.ProfilePatch) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if patch.Username != nil {
		p.Username = *patch.Username
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = *patch.AvatarURL
	}
	return nil
}

func (r *stubProfileRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.Role = role
	return nil
}

func (r *stubProfileRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.PasswordHash = hash
	return nil
}

func (r *stubProfileRepo) seed(p domain.Profile) *domain.Profile {
	clone := p
	r.byID[clone.ID] = &clone
	return &clone
}

type stubPostRepo struct {
	byID      map[string]*domain.Post
	nextID    int
	createErr error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *p
	clone.ID = "p" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPostRepo) ListByUser(_ context.Context, userID string) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.byID {
		if p.UserID == userID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, patch ports.PostPatch) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubCommentRepo struct {
	byPost map[string][]*domain.Comment
	nextID int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{byPost: make(map[string][]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	clone := *c
	clone.ID = "c" + strconv.Itoa(r.nextID)
	r.byPost[clone.PostID] = append(r.byPost[clone.PostID], &clone)
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	comments := r.byPost[postID]
	out := make([]*domain.Comment, 0, len(comments))
	for _, c := range comments {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCommentRepo) DeleteByPost(_ context.Context, postID string) error {
	delete(r.byPost, postID)
	return nil
}

type stubTokenStore struct {
	tokens map[string]string // token -> email
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Save(_ context.Context, token, email string) error {
	s.tokens[token] = email
	return nil
}

func (s *stubTokenStore) Consume(_ context.Context, token string) (string, error) {
	email, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrInvalidResetToken
	}
	delete(s.tokens, token)
	return email, nil
}
