package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/api/metrics"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service  ports.PostService
	comments ports.CommentService
}

func NewPostHandler(service ports.PostService, comments ports.CommentService) *PostHandler {
	return &PostHandler{service: service, comments: comments}
}

// --- Request / Response types ---

type createPostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type updatePostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type authorResponse struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type postResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	ImageURL  string          `json:"image_url,omitempty"`
	UserID    string          `json:"user_id"`
	CreatedAt string          `json:"created_at"`
	Author    *authorResponse `json:"author,omitempty"`
}

type commentResponse struct {
	ID        string          `json:"id"`
	PostID    string          `json:"post_id"`
	UserID    string          `json:"user_id"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"created_at"`
	Author    *authorResponse `json:"author,omitempty"`
}

type postDetailResponse struct {
	Post     postResponse      `json:"post"`
	Comments []commentResponse `json:"comments"`
}

type postListResponse struct {
	Posts []postResponse `json:"posts"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toAuthorResponse(a *domain.Author) *authorResponse {
	if a == nil {
		return nil
	}
	return &authorResponse{
		Username:  a.DisplayName(),
		AvatarURL: a.AvatarURL,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		UserID:    p.UserID,
		CreatedAt: formatTime(p.CreatedAt),
		Author:    toAuthorResponse(p.Author),
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: formatTime(c.CreatedAt),
		Author:    toAuthorResponse(c.Author),
	}
}

func toPostListResponse(posts []*domain.Post) postListResponse {
	out := postListResponse{Posts: make([]postResponse, 0, len(posts))}
	for _, p := range posts {
		out.Posts = append(out.Posts, toPostResponse(p))
	}
	return out
}

// --- Handlers ---

// Create publishes a new post owned by the caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), actorFromContext(c), ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// ListAll returns every post with authors embedded. Restricted to staff.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts [get]
func (h *PostHandler) ListAll(c echo.Context) error {
	posts, err := h.service.ListAll(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// ListMine returns the caller's own posts.
//
// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postListResponse
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts/mine [get]
func (h *PostHandler) ListMine(c echo.Context) error {
	posts, err := h.service.ListMine(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// Get returns a single post together with its comment thread.
//
// @Summary      Get a post with its comments
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postDetailResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		return err
	}

	resp := postDetailResponse{
		Post:     toPostResponse(detail.Post),
		Comments: make([]commentResponse, 0, len(detail.Comments)),
	}
	for _, cm := range detail.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(cm))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update replaces the mutable fields of a post. Only the owner may edit,
// regardless of role.
//
// @Summary      Edit a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Replacement fields"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), actorFromContext(c), c.Param("id"), ports.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete removes a post and its comment thread. Owners and staff may delete.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path  string  true  "Post id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), actorFromContext(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateComment adds a comment to a post's thread.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Post id"
// @Param        body  body      createCommentRequest  true  "Comment content"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /v1/posts/{id}/comments [post]
func (h *PostHandler) CreateComment(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.comments.Create(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	metrics.CommentsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}
