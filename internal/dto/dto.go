package dto

import (
	"time"

	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
)

// UserDTO represents a user nested inside an author in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// AuthorDTO represents the authoring profile in API responses. It is never
// accepted on input; the author is always the authenticated principal.
type AuthorDTO struct {
	ID             uint64  `json:"id"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
	User           UserDTO `json:"user"`
}

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostDTO represents a post in API responses
type PostDTO struct {
	ID         uint64        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Author     AuthorDTO     `json:"author"`
	Categories []CategoryDTO `json:"categories"`
	Tags       []TagDTO      `json:"tags"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PostListResponse represents the paginated post collection
type PostListResponse struct {
	Count   int64     `json:"count"`
	Results []PostDTO `json:"results"`
}

// CommentDTO represents a comment in API responses. The post relation is
// rendered as a bare id, matching the write-side encoding.
type CommentDTO struct {
	ID        uint64    `json:"id"`
	Post      uint64    `json:"post"`
	Content   string    `json:"content"`
	Author    AuthorDTO `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
	}
}

// ToAuthorDTO converts a Profile model (with its user preloaded) to AuthorDTO
func ToAuthorDTO(profile models.Profile) AuthorDTO {
	return AuthorDTO{
		ID:             profile.ID,
		Bio:            profile.Bio,
		ProfilePicture: profile.ProfilePicture,
		User:           ToUserDTO(profile.User),
	}
}

// ToCategoryDTO converts a Category model to CategoryDTO
func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}
}

// ToPostDTO converts a Post model (with relations preloaded) to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	categories := make([]CategoryDTO, len(post.Categories))
	for i, category := range post.Categories {
		categories[i] = ToCategoryDTO(category)
	}

	tags := make([]TagDTO, len(post.Tags))
	for i, tag := range post.Tags {
		tags[i] = ToTagDTO(tag)
	}

	return PostDTO{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Author:     ToAuthorDTO(post.Author),
		Categories: categories,
		Tags:       tags,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

// ToPostListResponse converts a slice of posts to the paginated collection
func ToPostListResponse(posts []models.Post, count int64) PostListResponse {
	results := make([]PostDTO, len(posts))
	for i, post := range posts {
		results[i] = ToPostDTO(post)
	}
	return PostListResponse{
		Count:   count,
		Results: results,
	}
}

// ToCommentDTO converts a Comment model (with its author preloaded) to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Post:      comment.PostID,
		Content:   comment.Content,
		Author:    ToAuthorDTO(comment.Author),
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentDTOs converts a slice of comments
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	results := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		results[i] = ToCommentDTO(comment)
	}
	return results
}

// ToCategoryDTOs converts a slice of categories
func ToCategoryDTOs(categories []models.Category) []CategoryDTO {
	results := make([]CategoryDTO, len(categories))
	for i, category := range categories {
		results[i] = ToCategoryDTO(category)
	}
	return results
}

// ToTagDTOs converts a slice of tags
func ToTagDTOs(tags []models.Tag) []TagDTO {
	results := make([]TagDTO, len(tags))
	for i, tag := range tags {
		results[i] = ToTagDTO(tag)
	}
	return results
}
