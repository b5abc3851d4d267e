package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/utils"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// CommentInput represents the writable fields of a comment.
type CommentInput struct {
	PostID  uint64
	Content string
}

// List retrieves comments matching the filter in creation order.
func (s *CommentService) List(filter repository.CommentFilter) ([]models.Comment, error) {
	return s.commentRepo.List(filter)
}

// Create persists a comment authored by the given user's profile. The post
// reference must resolve to a live row.
func (s *CommentService) Create(userID uint64, input CommentInput) (*models.Comment, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if _, err := s.postRepo.FindByID(input.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ValidationErrors{
				"post": {fmt.Sprintf("Invalid id %d - object does not exist.", input.PostID)},
			}
		}
		return nil, err
	}

	comment := &models.Comment{
		PostID:   input.PostID,
		AuthorID: profile.ID,
		Content:  utils.Sanitize(input.Content),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.FindByID(comment.ID)
}

// Delete removes a comment.
func (s *CommentService) Delete(id uint64) error {
	return s.commentRepo.Delete(id)
}
