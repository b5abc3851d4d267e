package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
	"github.com/Sohype-Khaled/PluseOneBlogTask/internal/models"
)

func testCategoryField(known ...models.Category) RelationField[models.Category, CategoryDTO] {
	return RelationField[models.Category, CategoryDTO]{
		Name:   "categories",
		Render: ToCategoryDTO,
		Lookup: func(ids []uint64) ([]models.Category, error) {
			var found []models.Category
			for _, id := range ids {
				for _, c := range known {
					if c.ID == id {
						found = append(found, c)
						break
					}
				}
			}
			return found, nil
		},
		ID: func(c models.Category) uint64 { return c.ID },
	}
}

func TestRelationField_Resolve(t *testing.T) {
	field := testCategoryField(
		models.Category{ID: 1, Name: "Tech", Slug: "tech"},
		models.Category{ID: 2, Name: "Life", Slug: "life"},
	)

	categories, err := field.Resolve([]uint64{1, 2})
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestRelationField_Resolve_Empty(t *testing.T) {
	field := testCategoryField()

	categories, err := field.Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestRelationField_Resolve_UnknownID(t *testing.T) {
	field := testCategoryField(models.Category{ID: 1, Name: "Tech", Slug: "tech"})

	_, err := field.Resolve([]uint64{1, 99})
	require.Error(t, err)

	ve, ok := apierrors.AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve, "categories")
	assert.Contains(t, ve["categories"][0], "99")
}

func TestRelationField_RenderAll(t *testing.T) {
	field := testCategoryField()

	rendered := field.RenderAll([]models.Category{
		{ID: 1, Name: "Tech", Slug: "tech"},
	})
	require.Len(t, rendered, 1)
	assert.Equal(t, CategoryDTO{ID: 1, Name: "Tech", Slug: "tech"}, rendered[0])
}

func TestToPostDTO_NestedAuthor(t *testing.T) {
	bio := "about me"
	post := models.Post{
		ID:      3,
		Title:   "Hello",
		Content: "World",
		Author: models.Profile{
			ID:  5,
			Bio: &bio,
			User: models.User{
				ID:        9,
				FirstName: "Ada",
				LastName:  "Lovelace",
				Username:  "ada",
				Email:     "ada@example.com",
			},
		},
		Categories: []models.Category{{ID: 1, Name: "Tech", Slug: "tech"}},
	}

	rendered := ToPostDTO(post)
	assert.Equal(t, uint64(5), rendered.Author.ID)
	require.NotNil(t, rendered.Author.Bio)
	assert.Equal(t, "about me", *rendered.Author.Bio)
	assert.Equal(t, "ada", rendered.Author.User.Username)
	require.Len(t, rendered.Categories, 1)
	assert.Equal(t, "tech", rendered.Categories[0].Slug)
	assert.Empty(t, rendered.Tags)
}
