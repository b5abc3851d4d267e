package repository

import (
	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithProfile creates a user and its profile within a single transaction
func (r *GormUserRepository) CreateWithProfile(user *models.User, profile *models.Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a profile by ID with its user preloaded
func (r *GormProfileRepository) FindByID(id uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Preload("User").First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID finds the profile owned by the given user
func (r *GormProfileRepository) FindByUserID(userID uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates a profile
func (r *GormProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
