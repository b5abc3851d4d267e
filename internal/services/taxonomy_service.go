package services

import (
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
)

// TaxonomyService exposes the public category/tag listings.
type TaxonomyService struct {
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *TaxonomyService {
	return &TaxonomyService{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// ListCategories retrieves categories matching the search term.
func (s *TaxonomyService) ListCategories(search string) ([]models.Category, error) {
	return s.categoryRepo.List(repository.TermFilter{Search: search})
}

// ListTags retrieves tags matching the search term.
func (s *TaxonomyService) ListTags(search string) ([]models.Tag, error) {
	return s.tagRepo.List(repository.TermFilter{Search: search})
}
