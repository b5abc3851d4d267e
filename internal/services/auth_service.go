package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
)

var (
	ErrInvalidCredentials   = errors.New("no active account found with the given credentials")
	ErrProfileNotFound      = errors.New("no profile exists for the authenticated user")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and credential checks.
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// RegisterInput represents the registration payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password1 string
	Password2 string
	Bio       string
}

// Register creates a user and its profile atomically. Password mismatch and
// duplicate usernames surface as field-keyed validation failures.
func (s *AuthService) Register(input RegisterInput) (*models.User, *models.Profile, error) {
	username := strings.TrimSpace(input.Username)

	if input.Password1 != input.Password2 {
		return nil, nil, apierrors.ValidationErrors{
			"password": {"The two password fields did not match."},
		}
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, nil, apierrors.ValidationErrors{
			"username": {"A user with that username already exists."},
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password1), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(input.Email),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashedPassword),
	}

	profile := &models.Profile{}
	if bio := strings.TrimSpace(input.Bio); bio != "" {
		profile.Bio = &bio
	}

	if err := s.userRepo.CreateWithProfile(user, profile); err != nil {
		return nil, nil, err
	}

	return user, profile, nil
}

// SetProfilePicture records the stored location of an uploaded picture.
func (s *AuthService) SetProfilePicture(profile *models.Profile, url string) error {
	profile.ProfilePicture = &url
	return s.profileRepo.Update(profile)
}

// Authenticate checks a username/password pair and returns the user.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
