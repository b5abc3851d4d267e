package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/storage"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/token"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	db          *gorm.DB
	authService *services.AuthService
	tokens      *token.Manager
	handler     *AuthHandler
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	profileRepo := repository.NewProfileRepository(suite.db)
	suite.authService = services.NewAuthService(userRepo, profileRepo)

	suite.tokens, err = token.NewManager("test-secret", 15*time.Minute, 24*time.Hour, nil)
	suite.Require().NoError(err)

	files := storage.NewFileStore(suite.T().TempDir(), "/media")
	suite.handler = NewAuthHandler(suite.authService, suite.tokens, files, nil)

	gin.SetMode(gin.TestMode)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthHandlerTestSuite) newJSONContext(target string, payload gin.H) (*gin.Context, *httptest.ResponseRecorder) {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *AuthHandlerTestSuite) newRegisterContext(fields map[string]string, pictureName string) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		suite.Require().NoError(writer.WriteField(key, value))
	}
	if pictureName != "" {
		part, err := writer.CreateFormFile("profile_picture", pictureName)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("fake image bytes"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *AuthHandlerTestSuite) registerFields() map[string]string {
	return map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"username":   "ada",
		"email":      "ada@example.com",
		"password1":  "password123",
		"password2":  "password123",
		"bio":        "First programmer.",
	}
}

func (suite *AuthHandlerTestSuite) TestRegister() {
	c, w := suite.newRegisterContext(suite.registerFields(), "")

	suite.handler.Register(c)

	suite.Equal(http.StatusCreated, w.Code)

	var pair token.Pair
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &pair))
	suite.NotEmpty(pair.Access)
	suite.NotEmpty(pair.Refresh)

	// The password was stored hashed and usable for login.
	user, err := suite.authService.Authenticate("ada", "password123")
	suite.Require().NoError(err)
	suite.Equal("ada@example.com", user.Email)

	var profile models.Profile
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&profile).Error)
	suite.Require().NotNil(profile.Bio)
	suite.Equal("First programmer.", *profile.Bio)
}

func (suite *AuthHandlerTestSuite) TestRegister_WithProfilePicture() {
	c, w := suite.newRegisterContext(suite.registerFields(), "avatar.png")

	suite.handler.Register(c)

	suite.Equal(http.StatusCreated, w.Code)

	var profile models.Profile
	suite.Require().NoError(suite.db.First(&profile).Error)
	suite.Require().NotNil(profile.ProfilePicture)
	suite.Contains(*profile.ProfilePicture, "/media/")
	suite.Contains(*profile.ProfilePicture, ".png")
}

func (suite *AuthHandlerTestSuite) TestRegister_PasswordMismatch() {
	fields := suite.registerFields()
	fields["password2"] = "different"
	c, w := suite.newRegisterContext(fields, "")

	suite.handler.Register(c)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var response map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Contains(response, "password")

	var userCount int64
	suite.db.Model(&models.User{}).Count(&userCount)
	suite.Equal(int64(0), userCount)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	c, w := suite.newRegisterContext(suite.registerFields(), "")
	suite.handler.Register(c)
	suite.Require().Equal(http.StatusCreated, w.Code)

	fields := suite.registerFields()
	fields["email"] = "other@example.com"
	c, w = suite.newRegisterContext(fields, "")
	suite.handler.Register(c)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var response map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Contains(response, "username")
}

func (suite *AuthHandlerTestSuite) TestRegister_InvalidEmail() {
	fields := suite.registerFields()
	fields["email"] = "not-an-email"
	c, w := suite.newRegisterContext(fields, "")

	suite.handler.Register(c)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var response map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Contains(response, "email")
}

func (suite *AuthHandlerTestSuite) register() {
	c, w := suite.newRegisterContext(suite.registerFields(), "")
	suite.handler.Register(c)
	suite.Require().Equal(http.StatusCreated, w.Code)
}

func (suite *AuthHandlerTestSuite) TestTokenObtain() {
	suite.register()

	c, w := suite.newJSONContext("/auth/token", gin.H{"username": "ada", "password": "password123"})
	suite.handler.TokenObtain(c)

	suite.Equal(http.StatusOK, w.Code)

	var pair token.Pair
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &pair))
	suite.NotEmpty(pair.Access)
	suite.NotEmpty(pair.Refresh)
}

func (suite *AuthHandlerTestSuite) TestTokenObtain_BadCredentials() {
	suite.register()

	c, w := suite.newJSONContext("/auth/token", gin.H{"username": "ada", "password": "wrong"})
	suite.handler.TokenObtain(c)

	suite.Equal(http.StatusUnauthorized, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("No active account found with the given credentials.", response["detail"])
}

func (suite *AuthHandlerTestSuite) TestTokenRefresh() {
	suite.register()
	pair, err := suite.tokens.IssuePair(1)
	suite.Require().NoError(err)

	c, w := suite.newJSONContext("/auth/token/refresh", gin.H{"refresh": pair.Refresh})
	suite.handler.TokenRefresh(c)

	suite.Equal(http.StatusOK, w.Code)

	var response map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.NotEmpty(response["access"])
}

func (suite *AuthHandlerTestSuite) TestTokenRefresh_AccessTokenRejected() {
	pair, err := suite.tokens.IssuePair(1)
	suite.Require().NoError(err)

	c, w := suite.newJSONContext("/auth/token/refresh", gin.H{"refresh": pair.Access})
	suite.handler.TokenRefresh(c)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestTokenVerify() {
	pair, err := suite.tokens.IssuePair(1)
	suite.Require().NoError(err)

	c, w := suite.newJSONContext("/auth/token/verify", gin.H{"token": pair.Access})
	suite.handler.TokenVerify(c)
	suite.Equal(http.StatusOK, w.Code)

	c, w = suite.newJSONContext("/auth/token/verify", gin.H{"token": "garbage"})
	suite.handler.TokenVerify(c)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestTokenBlacklist() {
	pair, err := suite.tokens.IssuePair(1)
	suite.Require().NoError(err)

	c, w := suite.newJSONContext("/auth/token/blacklist", gin.H{"refresh": pair.Refresh})
	suite.handler.TokenBlacklist(c)
	suite.Equal(http.StatusOK, w.Code)

	// The revoked refresh token can no longer mint access tokens.
	c, w = suite.newJSONContext("/auth/token/refresh", gin.H{"refresh": pair.Refresh})
	suite.handler.TokenRefresh(c)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
