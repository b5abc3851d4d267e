package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/dto"
	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/middleware"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/utils"
)

// PostHandler coordinates post endpoints.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// PostRequest is the write payload of a post. Categories and tags are bare
// ids; the author is never accepted on input.
type PostRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Categories []uint64 `json:"categories"`
	Tags       []uint64 `json:"tags"`
}

// List returns the paginated post collection, narrowed by q/categories/tags.
func (h *PostHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.PostFilter{
		Query:       c.Query("q"),
		CategoryIDs: queryIDList(c, "categories"),
		TagIDs:      queryIDList(c, "tags"),
		Limit:       params.Limit,
		Offset:      params.Offset,
	}

	posts, count, err := h.postService.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts.")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostListResponse(posts, count))
}

// Create creates a new post authored by the authenticated principal.
func (h *PostHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	post, err := h.postService.Create(userID, services.PostInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.Categories,
		TagIDs:      req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostDTO(*post))
}

// Retrieve returns a single post by id.
func (h *PostHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "")
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// Update overwrites a post's scalar fields and replaces its associations when
// non-empty lists are supplied. The target is loaded by the ownership
// middleware.
func (h *PostHandler) Update(c *gin.Context) {
	post, ok := middleware.PostFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Post not found in context.")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	updated, err := h.postService.Update(post, services.PostInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.Categories,
		TagIDs:      req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*updated))
}

// Destroy deletes a post. The target is loaded by the ownership middleware.
func (h *PostHandler) Destroy(c *gin.Context) {
	post, ok := middleware.PostFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Post not found in context.")
		return
	}

	if err := h.postService.Delete(post.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
