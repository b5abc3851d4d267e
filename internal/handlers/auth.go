package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/storage"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/token"
)

// AuthHandler coordinates registration and the token endpoints.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *token.Manager
	files       *storage.FileStore
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *token.Manager, files *storage.FileStore, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		files:       files,
		logger:      logger,
	}
}

// RegisterRequest is the multipart registration payload. The profile picture
// travels as a separate file part.
type RegisterRequest struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Username  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required"`
	Bio       string `form:"bio"`
}

// Register creates a user with its profile and returns a fresh token pair.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	user, profile, err := h.authService.Register(services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password1: req.Password1,
		Password2: req.Password2,
		Bio:       req.Bio,
	})
	if err != nil {
		if ve, ok := apierrors.AsValidationErrors(err); ok {
			apierrors.UnprocessableEntity(c, ve)
			return
		}
		apierrors.InternalError(c, "Failed to register user.")
		return
	}

	if file, err := c.FormFile("profile_picture"); err == nil && h.files != nil {
		diskPath, publicURL, err := h.files.ProfilePicturePath(user.ID, file.Filename)
		if err == nil {
			err = c.SaveUploadedFile(file, diskPath)
		}
		if err == nil {
			err = h.authService.SetProfilePicture(profile, publicURL)
		}
		if err != nil {
			// The account exists; a failed picture upload is not fatal.
			h.logger.Warn("failed to store profile picture",
				zap.Uint64("user_id", user.ID),
				zap.Error(err),
			)
		}
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue tokens.")
		return
	}

	c.JSON(http.StatusCreated, pair)
}

// TokenObtain issues an access/refresh pair for valid credentials.
func (h *AuthHandler) TokenObtain(c *gin.Context) {
	type ObtainRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req ObtainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "No active account found with the given credentials.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	pair, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue tokens.")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// TokenRefresh issues a fresh access token from a live refresh token.
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	type RefreshRequest struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	access, err := h.tokens.Refresh(req.Refresh)
	if err != nil {
		apierrors.Unauthorized(c, "Token is invalid or expired.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// TokenVerify checks that a token is valid and not revoked.
func (h *AuthHandler) TokenVerify(c *gin.Context) {
	type VerifyRequest struct {
		Token string `json:"token" binding:"required"`
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	if _, err := h.tokens.Parse(req.Token); err != nil {
		apierrors.Unauthorized(c, "Token is invalid or expired.")
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// TokenBlacklist revokes a refresh token.
func (h *AuthHandler) TokenBlacklist(c *gin.Context) {
	type BlacklistRequest struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, apierrors.FromBindingError(err))
		return
	}

	if err := h.tokens.Revoke(req.Refresh); err != nil {
		apierrors.Unauthorized(c, "Token is invalid or expired.")
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
