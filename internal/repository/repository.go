package repository

import (
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithProfile creates a user and its profile within a single
	// transaction. A user never exists without a profile.
	CreateWithProfile(user *models.User, profile *models.Profile) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByID finds a profile by ID with its user preloaded
	FindByID(id uint64) (*models.Profile, error)

	// FindByUserID finds the profile owned by the given user
	FindByUserID(userID uint64) (*models.Profile, error)

	// Update updates a profile
	Update(profile *models.Profile) error
}

// PostFilter holds filtering options for listing posts. Zero values apply no
// constraint; filter families combine with AND.
type PostFilter struct {
	// Query matches title OR content, case-insensitively.
	Query string
	// CategoryIDs restricts to posts associated with any of the categories.
	CategoryIDs []uint64
	// TagIDs restricts to posts associated with any of the tags.
	TagIDs []uint64
	// Limit/Offset paginate the result. Limit <= 0 returns everything.
	Limit  int
	Offset int
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create persists a post together with its category/tag associations in
	// one transaction.
	Create(post *models.Post) error

	// FindByID finds a post by ID with author, categories and tags preloaded
	FindByID(id uint64) (*models.Post, error)

	// List retrieves posts matching the filter in creation order, along with
	// the total count before pagination.
	List(filter PostFilter) ([]models.Post, int64, error)

	// Update persists scalar changes and, when categories/tags are non-nil,
	// replaces the associations, all within one transaction.
	Update(post *models.Post, categories []models.Category, tags []models.Tag) error

	// Delete removes a post, its comments and its association rows. The
	// categories and tags themselves are left untouched.
	Delete(id uint64) error
}

// CommentFilter holds filtering options for listing comments.
type CommentFilter struct {
	// Query matches content, case-insensitively.
	Query string
	// PostIDs restricts to comments on the given posts.
	PostIDs []uint64
	// AuthorIDs restricts to comments authored by the given profiles.
	AuthorIDs []uint64
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create persists a comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID with its author preloaded
	FindByID(id uint64) (*models.Comment, error)

	// List retrieves comments matching the filter in creation order
	List(filter CommentFilter) ([]models.Comment, error)

	// Delete removes a comment
	Delete(id uint64) error
}

// TermFilter holds the search option for category/tag listings.
type TermFilter struct {
	// Search matches id (as text), name or slug, case-insensitively.
	Search string
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(category *models.Category) error
	List(filter TermFilter) ([]models.Category, error)
	FindByIDs(ids []uint64) ([]models.Category, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(tag *models.Tag) error
	List(filter TermFilter) ([]models.Tag, error)
	FindByIDs(ids []uint64) ([]models.Tag, error)
}
