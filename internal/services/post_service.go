package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/dto"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/utils"
)

var ErrPostNotFound = errors.New("post not found")

// PostService handles post business logic.
type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	categories  dto.RelationField[models.Category, dto.CategoryDTO]
	tags        dto.RelationField[models.Tag, dto.TagDTO]
}

// NewPostService creates a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		categories: dto.RelationField[models.Category, dto.CategoryDTO]{
			Name:   "categories",
			Render: dto.ToCategoryDTO,
			Lookup: categoryRepo.FindByIDs,
			ID:     func(c models.Category) uint64 { return c.ID },
		},
		tags: dto.RelationField[models.Tag, dto.TagDTO]{
			Name:   "tags",
			Render: dto.ToTagDTO,
			Lookup: tagRepo.FindByIDs,
			ID:     func(t models.Tag) uint64 { return t.ID },
		},
	}
}

// PostInput represents the writable fields of a post. The author is never
// part of it; it always comes from the authenticated principal.
type PostInput struct {
	Title       string
	Content     string
	CategoryIDs []uint64
	TagIDs      []uint64
}

// List retrieves posts matching the filter along with the unpaginated count.
func (s *PostService) List(filter repository.PostFilter) ([]models.Post, int64, error) {
	return s.postRepo.List(filter)
}

// Get retrieves a single post by id.
func (s *PostService) Get(id uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Create persists a new post authored by the given user's profile. The row
// and its category/tag associations are written in one transaction.
func (s *PostService) Create(userID uint64, input PostInput) (*models.Post, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	categories, err := s.categories.Resolve(input.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.Resolve(input.TagIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      utils.Sanitize(input.Title),
		Content:    utils.Sanitize(input.Content),
		AuthorID:   profile.ID,
		Categories: categories,
		Tags:       tags,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(post.ID)
}

// Update overwrites the post's scalar fields and, only when non-empty lists
// are supplied, replaces its category/tag associations. The author is never
// altered.
func (s *PostService) Update(post *models.Post, input PostInput) (*models.Post, error) {
	categories, err := s.categories.Resolve(input.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.Resolve(input.TagIDs)
	if err != nil {
		return nil, err
	}

	post.Title = utils.Sanitize(input.Title)
	post.Content = utils.Sanitize(input.Content)

	// Empty lists leave existing associations untouched.
	if len(categories) == 0 {
		categories = nil
	}
	if len(tags) == 0 {
		tags = nil
	}

	if err := s.postRepo.Update(post, categories, tags); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(post.ID)
}

// Delete removes a post and its dependent comments and association rows.
func (s *PostService) Delete(id uint64) error {
	return s.postRepo.Delete(id)
}
