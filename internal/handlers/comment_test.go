package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/middleware"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/repository"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/services"
)

// CommentHandlerTestSuite defines the test suite for CommentHandler
type CommentHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *CommentHandler

	user    models.User
	profile models.Profile
	post    models.Post
}

func (suite *CommentHandlerTestSuite) SetupTest() {
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

	commentRepo := repository.NewCommentRepository(suite.db)
	postRepo := repository.NewPostRepository(suite.db)
	profileRepo := repository.NewProfileRepository(suite.db)
	suite.handler = NewCommentHandler(services.NewCommentService(commentRepo, postRepo, profileRepo))

	gin.SetMode(gin.TestMode)

	suite.user = models.User{Username: "reader", Email: "reader@example.com", PasswordHash: "x"}
	suite.Require().NoError(suite.db.Create(&suite.user).Error)
	suite.profile = models.Profile{UserID: suite.user.ID}
	suite.Require().NoError(suite.db.Create(&suite.profile).Error)

	suite.post = models.Post{Title: "T", Content: "C", AuthorID: suite.profile.ID}
	suite.Require().NoError(suite.db.Create(&suite.post).Error)
}

func (suite *CommentHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *CommentHandlerTestSuite) newContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *CommentHandlerTestSuite) createComment(content string) *models.Comment {
	comment := &models.Comment{PostID: suite.post.ID, AuthorID: suite.profile.ID, Content: content}
	suite.Require().NoError(suite.db.Create(comment).Error)
	return comment
}

func (suite *CommentHandlerTestSuite) TestList() {
	suite.createComment("first")
	suite.createComment("second")

	c, w := suite.newContext("GET", "/comments", nil)
	suite.handler.List(c)

	suite.Equal(http.StatusOK, w.Code)

	var response []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response, 2)
	suite.Equal("first", response[0]["content"])
	suite.Equal(float64(suite.post.ID), response[0]["post"])
}

func (suite *CommentHandlerTestSuite) TestList_PostFilter() {
	suite.createComment("on post")

	c, w := suite.newContext("GET", "/comments?post=999", nil)
	suite.handler.List(c)

	suite.Equal(http.StatusOK, w.Code)

	var response []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Empty(response)
}

func (suite *CommentHandlerTestSuite) TestCreate_Unauthenticated() {
	body, _ := json.Marshal(gin.H{"post": suite.post.ID, "content": "hi"})
	c, w := suite.newContext("POST", "/comments", body)

	suite.handler.Create(c)

	suite.Equal(http.StatusUnauthorized, w.Code)

	var commentCount int64
	suite.db.Model(&models.Comment{}).Count(&commentCount)
	suite.Equal(int64(0), commentCount)
}

func (suite *CommentHandlerTestSuite) TestCreate() {
	body, _ := json.Marshal(gin.H{"post": suite.post.ID, "content": "hi"})
	c, w := suite.newContext("POST", "/comments", body)
	c.Set(middleware.ContextUserIDKey, suite.user.ID)

	suite.handler.Create(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("hi", response["content"])

	author := response["author"].(map[string]interface{})
	suite.Equal(float64(suite.profile.ID), author["id"])
}

func (suite *CommentHandlerTestSuite) TestCreate_UnknownPostIs422() {
	body, _ := json.Marshal(gin.H{"post": 999, "content": "hi"})
	c, w := suite.newContext("POST", "/comments", body)
	c.Set(middleware.ContextUserIDKey, suite.user.ID)

	suite.handler.Create(c)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var response map[string][]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Contains(response, "post")
}

func (suite *CommentHandlerTestSuite) TestDestroy() {
	comment := suite.createComment("bye")
	loaded, err := repository.NewCommentRepository(suite.db).FindByID(comment.ID)
	suite.Require().NoError(err)

	c, w := suite.newContext("DELETE", "/comments/1", nil)
	c.Set(middleware.ContextUserIDKey, suite.user.ID)
	c.Set("comment", loaded)

	suite.handler.Destroy(c)

	suite.Equal(http.StatusNoContent, w.Code)

	var commentCount int64
	suite.db.Model(&models.Comment{}).Count(&commentCount)
	suite.Equal(int64(0), commentCount)
}

func TestCommentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}
