package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/dto"
	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/middleware"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
)

// CommentHandler coordinates comment endpoints.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CommentRequest is the write payload of a comment. The post relation is a
// bare id; the author is never accepted on input.
type CommentRequest struct {
	Post    uint64 `json:"post" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// List returns comments, narrowed by q/post/author.
func (h *CommentHandler) List(c *gin.Context) {
	filter := repository.CommentFilter{
		Query:     c.Query("q"),
		PostIDs:   queryIDList(c, "post"),
		AuthorIDs: queryIDList(c, "author"),
	}

	comments, err := h.commentService.List(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch comments.")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(comments))
}

// Create creates a new comment authored by the authenticated principal.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	comment, err := h.commentService.Create(userID, services.CommentInput{
		PostID:  req.Post,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// Destroy deletes a comment. The target is loaded by the ownership
// middleware.
func (h *CommentHandler) Destroy(c *gin.Context) {
	comment, ok := middleware.CommentFromContext(c)
	if !ok {
		apierrors.InternalError(c, "Comment not found in context.")
		return
	}

	if err := h.commentService.Delete(comment.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
