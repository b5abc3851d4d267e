package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/database"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/utils"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create persists a post together with its associations in one transaction
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
}

// FindByID finds a post by ID with author, categories and tags preloaded
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Author").
		Preload("Author.User").
		Preload("Categories").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves posts matching the filter in creation order
func (r *GormPostRepository) List(filter PostFilter) ([]models.Post, int64, error) {
	var posts []models.Post

	query := r.db.Model(&models.Post{})

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			r.db.Where("LOWER(posts.title) LIKE ?", pattern).
				Or("LOWER(posts.content) LIKE ?", pattern),
		)
	}
	if len(filter.CategoryIDs) > 0 {
		categorySubQuery := r.db.Table("post_categories").
			Select("1").
			Where("post_categories.post_id = posts.id").
			Where("post_categories.category_id IN ?", filter.CategoryIDs)
		query = query.Where("EXISTS (?)", categorySubQuery)
	}
	if len(filter.TagIDs) > 0 {
		tagSubQuery := r.db.Table("post_tags").
			Select("1").
			Where("post_tags.post_id = posts.id").
			Where("post_tags.tag_id IN ?", filter.TagIDs)
		query = query.Where("EXISTS (?)", tagSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("posts.created_at ASC, posts.id ASC")
	if filter.Limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  filter.Limit,
			Offset: filter.Offset,
		}))
	}

	err := listQuery.
		Preload("Author").
		Preload("Author.User").
		Preload("Categories").
		Preload("Tags").
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Update persists scalar changes and, when categories/tags are non-nil,
// replaces the associations, all within one transaction.
func (r *GormPostRepository) Update(post *models.Post, categories []models.Category, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Tags", "Author", "Comments").Save(post).Error; err != nil {
			return err
		}
		if categories != nil {
			if err := tx.Model(post).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		if tags != nil {
			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a post, its comments and its association rows
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_categories WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Post{}, id).Error
	})
}
