package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/middleware"
	"github.com/l3blonde/grip-and-grin/internal/service"
)

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Content     string         `json:"content"`
	Excerpt     string         `json:"excerpt"`
	AuthorID    int64          `json:"author_id"`
	CategoryID  int64          `json:"category_id"`
	Status      string         `json:"status"`
	PublishedAt *string        `json:"published_at,omitempty"`
	CreatedAt   string         `json:"created_at"`
	Image       *ImageResponse `json:"featured_image,omitempty"`
}

// ImageResponse represents a featured image and its derivatives.
type ImageResponse struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
	Full      string `json:"full"`
	AltText   string `json:"alt_text"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// PageResponse wraps a page of articles with pagination metadata.
type PageResponse struct {
	Articles    []ArticleResponse `json:"articles"`
	CurrentPage int               `json:"current_page"`
	TotalPages  int               `json:"total_pages"`
	TotalCount  int               `json:"total_count"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

// CategoryResponse represents a category in the API response.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// UserResponse represents an account in the API response. The password
// hash never leaves the domain type.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	response := ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Content:    a.Content,
		Excerpt:    a.Excerpt,
		AuthorID:   a.AuthorID,
		CategoryID: a.CategoryID,
		Status:     a.Status.String(),
		CreatedAt:  a.CreatedAt.Format(TimeFormat),
	}
	if a.PublishedAt != nil {
		publishedAt := a.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	if a.FeaturedImage != nil {
		response.Image = &ImageResponse{
			Original:  a.FeaturedImage.OriginalPath,
			Thumbnail: a.FeaturedImage.ThumbnailPath,
			Medium:    a.FeaturedImage.MediumPath,
			Full:      a.FeaturedImage.FullPath,
			AltText:   a.FeaturedImage.AltText,
			Width:     a.FeaturedImage.Width,
			Height:    a.FeaturedImage.Height,
		}
	}
	return response
}

func toPageResponse(page *service.ArticlePage) PageResponse {
	articles := make([]ArticleResponse, 0, len(page.Articles))
	for i := range page.Articles {
		articles = append(articles, toArticleResponse(&page.Articles[i]))
	}
	return PageResponse{
		Articles:    articles,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalCount:  page.TotalCount,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format(TimeFormat),
	}
}

// respondError maps domain errors to HTTP status codes. Validation
// failures surface their message; anything unexpected is logged with
// the request id and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		log.Printf("[request_id=%s] %s %s failed: %v",
			middleware.GetRequestID(c), c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
