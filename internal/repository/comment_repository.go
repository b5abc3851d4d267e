package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create persists a comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID finds a comment by ID with its author preloaded
func (r *GormCommentRepository) FindByID(id uint64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.
		Preload("Author").
		Preload("Author.User").
		First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// List retrieves comments matching the filter in creation order
func (r *GormCommentRepository) List(filter CommentFilter) ([]models.Comment, error) {
	var comments []models.Comment

	query := r.db.Model(&models.Comment{})

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(comments.content) LIKE ?", pattern)
	}
	if len(filter.PostIDs) > 0 {
		query = query.Where("comments.post_id IN ?", filter.PostIDs)
	}
	if len(filter.AuthorIDs) > 0 {
		query = query.Where("comments.author_id IN ?", filter.AuthorIDs)
	}

	err := query.
		Order("comments.created_at ASC, comments.id ASC").
		Preload("Author").
		Preload("Author.User").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// Delete removes a comment
func (r *GormCommentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
