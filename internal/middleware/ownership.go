package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
)

// Owned is a resource with an owning profile.
type Owned interface {
	OwnerProfileID() uint64
}

// RequireOwner gates update/delete on a resource. Checks run in order:
// authentication, then existence (404 for a missing row even when the caller
// would not own it), then ownership. The loaded resource is stored under
// contextKey for the handler.
func RequireOwner[T Owned](contextKey string, profiles repository.ProfileRepository, find func(id uint64) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.NotFound(c, "")
			c.Abort()
			return
		}

		resource, err := find(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.NotFound(c, "")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		profile, err := profiles.FindByUserID(userID)
		if err != nil {
			apierrors.Unauthorized(c, "No profile exists for the authenticated user.")
			c.Abort()
			return
		}

		if resource.OwnerProfileID() != profile.ID {
			apierrors.Forbidden(c, "You do not have permission to perform this action.")
			c.Abort()
			return
		}

		c.Set(contextKey, resource)
		c.Next()
	}
}

// PostFromContext retrieves the post loaded by the ownership middleware.
func PostFromContext(c *gin.Context) (*models.Post, bool) {
	value, exists := c.Get("post")
	if !exists {
		return nil, false
	}
	post, ok := value.(*models.Post)
	return post, ok
}

// CommentFromContext retrieves the comment loaded by the ownership middleware.
func CommentFromContext(c *gin.Context) (*models.Comment, bool) {
	value, exists := c.Get("comment")
	if !exists {
		return nil, false
	}
	comment, ok := value.(*models.Comment)
	return comment, ok
}
