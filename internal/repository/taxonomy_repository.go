package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
)

// idAsText returns a dialect-appropriate expression casting the id column to
// text so it can participate in substring search.
func idAsText(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "CAST(id AS TEXT)"
	}
	return "CAST(id AS CHAR)"
}

func termSearch(db *gorm.DB, query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return query.Where(
		db.Where("LOWER(name) LIKE ?", pattern).
			Or("LOWER(slug) LIKE ?", pattern).
			Or("LOWER("+idAsText(db)+") LIKE ?", pattern),
	)
}

// GormCategoryRepository is a GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create persists a category
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// List retrieves categories matching the filter in id order
func (r *GormCategoryRepository) List(filter TermFilter) ([]models.Category, error) {
	var categories []models.Category
	query := termSearch(r.db, r.db.Model(&models.Category{}), filter.Search)
	if err := query.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByIDs retrieves the categories with the given ids
func (r *GormCategoryRepository) FindByIDs(ids []uint64) ([]models.Category, error) {
	var categories []models.Category
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GormTagRepository is a GORM implementation of TagRepository
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &GormTagRepository{db: db}
}

// Create persists a tag
func (r *GormTagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// List retrieves tags matching the filter in id order
func (r *GormTagRepository) List(filter TermFilter) ([]models.Tag, error) {
	var tags []models.Tag
	query := termSearch(r.db, r.db.Model(&models.Tag{}), filter.Search)
	if err := query.Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByIDs retrieves the tags with the given ids
func (r *GormTagRepository) FindByIDs(ids []uint64) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
