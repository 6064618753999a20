package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/l3blonde/grip-and-grin/internal/service"
)

// ArticleHandler handles the public, read-only article endpoints.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// ListArticles handles GET /api/v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	page, err := h.articleService.ListPublished(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// GetArticle handles GET /api/v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Search handles GET /api/v1/search?q=...
func (h *ArticleHandler) Search(c *gin.Context) {
	page, err := h.articleService.Search(c.Request.Context(), c.Query("q"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// ListByCategory handles GET /api/v1/categories/:slug/articles
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	page, err := h.articleService.ListByCategory(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"category": toCategoryResponse(page.Category),
	}
	listing := toPageResponse(&page.ArticlePage)
	response["articles"] = listing.Articles
	response["current_page"] = listing.CurrentPage
	response["total_pages"] = listing.TotalPages
	response["total_count"] = listing.TotalCount
	response["has_next"] = listing.HasNext
	response["has_previous"] = listing.HasPrevious
	c.JSON(http.StatusOK, response)
}

// ListCategories handles GET /api/v1/categories
func (h *ArticleHandler) ListCategories(c *gin.Context) {
	categories, err := h.articleService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		response = append(response, toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, gin.H{"categories": response})
}

// pageParam parses the page query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
