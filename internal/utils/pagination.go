package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageSize is used when no limit parameter is supplied.
	DefaultPageSize = 20
	// MaxPageSize caps the limit parameter.
	MaxPageSize = 100
)

// PaginationParams holds offset/limit pagination parameters.
type PaginationParams struct {
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates `limit` and `offset` from the
// request. Invalid or missing values fall back to the defaults rather than
// erroring.
func GetPaginationParams(c *gin.Context) PaginationParams {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil || limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}
