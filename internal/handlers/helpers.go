package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
)

// queryIDList collects a repeatable or comma-separated id parameter. A value
// that is not a number becomes an id that matches nothing, so a bad filter
// yields an empty result instead of an error.
func queryIDList(c *gin.Context, name string) []uint64 {
	var ids []uint64
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				ids = append(ids, 0)
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}

// respondServiceError maps service failures to the response taxonomy:
// validation failures to 422, missing principal profiles to 401, missing
// resources to 404, anything else to 500.
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := apierrors.AsValidationErrors(err); ok {
		apierrors.UnprocessableEntity(c, ve)
		return
	}

	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.Unauthorized(c, "No profile exists for the authenticated user.")
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
