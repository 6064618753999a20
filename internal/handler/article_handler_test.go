package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/handler"
	"github.com/l3blonde/grip-and-grin/internal/mocks"
	"github.com/l3blonde/grip-and-grin/internal/service"
)

func newPublicRouter(svc service.ArticleServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewArticleHandler(svc)
	router := gin.New()
	router.GET("/api/v1/articles", h.ListArticles)
	router.GET("/api/v1/articles/:slug", h.GetArticle)
	router.GET("/api/v1/search", h.Search)
	router.GET("/api/v1/categories", h.ListCategories)
	router.GET("/api/v1/categories/:slug/articles", h.ListByCategory)
	return router
}

func TestArticleHandler_ListArticles(t *testing.T) {
	t.Run("returns a page with pagination metadata", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		publishedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		mockService.EXPECT().ListPublished(mock.Anything, 2).Return(&service.ArticlePage{
			Articles: []domain.Article{{
				ID:          1,
				Title:       "Opening Day",
				Slug:        "opening-day",
				Status:      domain.StatusPublished,
				PublishedAt: &publishedAt,
				CreatedAt:   publishedAt,
			}},
			CurrentPage: 2,
			TotalPages:  3,
			TotalCount:  12,
		}, nil)

		router := newPublicRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?page=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"opening-day"`)
		assert.Contains(t, w.Body.String(), `"current_page":2`)
		assert.Contains(t, w.Body.String(), `"has_next":true`)
		assert.Contains(t, w.Body.String(), `"has_previous":true`)
	})

	t.Run("invalid page parameter defaults to 1", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().ListPublished(mock.Anything, 1).
			Return(&service.ArticlePage{CurrentPage: 1}, nil)

		router := newPublicRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles?page=banana", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestArticleHandler_GetArticle(t *testing.T) {
	t.Run("returns the article", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		publishedAt := time.Now()
		mockService.EXPECT().GetBySlug(mock.Anything, "opening-day").Return(&domain.Article{
			ID:          1,
			Title:       "Opening Day",
			Slug:        "opening-day",
			Status:      domain.StatusPublished,
			PublishedAt: &publishedAt,
			CreatedAt:   publishedAt,
			FeaturedImage: &domain.Image{
				OriginalPath:  "/uploads/originals/img_a.jpg",
				ThumbnailPath: "/uploads/thumbnails/img_a.webp",
				AltText:       "Angler at dawn",
			},
		}, nil)

		router := newPublicRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/opening-day", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alt_text":"Angler at dawn"`)
	})

	t.Run("hidden article returns 404", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().GetBySlug(mock.Anything, "hidden").Return(nil, domain.ErrNotFound)

		router := newPublicRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/hidden", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_Search(t *testing.T) {
	mockService := mocks.NewMockArticleServiceInterface(t)
	mockService.EXPECT().Search(mock.Anything, "walleye", 1).
		Return(&service.ArticlePage{CurrentPage: 1}, nil)

	router := newPublicRouter(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=walleye", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestArticleHandler_ListCategories(t *testing.T) {
	mockService := mocks.NewMockArticleServiceInterface(t)
	mockService.EXPECT().ListCategories(mock.Anything).Return([]domain.Category{
		{ID: 1, Name: "Bass Fishing", Slug: "bass-fishing"},
	}, nil)

	router := newPublicRouter(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"bass-fishing"`)
}

func TestArticleHandler_ListByCategory(t *testing.T) {
	t.Run("returns the category and its articles", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().ListByCategory(mock.Anything, "bass-fishing", 1).
			Return(&service.CategoryPage{
				ArticlePage: service.ArticlePage{CurrentPage: 1, TotalPages: 1, TotalCount: 1,
					Articles: []domain.Article{{ID: 1, Slug: "opening-day"}}},
				Category: &domain.Category{ID: 1, Name: "Bass Fishing", Slug: "bass-fishing"},
			}, nil)

		router := newPublicRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/bass-fishing/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Bass Fishing"`)
		assert.Contains(t, w.Body.String(), `"opening-day"`)
	})

	t.Run("unknown category returns 404", func(t *testing.T) {
		mockService := mocks.NewMockArticleServiceInterface(t)
		mockService.EXPECT().ListByCategory(mock.Anything, "nope", 1).Return(nil, domain.ErrNotFound)

		router := newPublicRouter(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/nope/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
