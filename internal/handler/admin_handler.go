package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/l3blonde/grip-and-grin/internal/images"
	"github.com/l3blonde/grip-and-grin/internal/middleware"
	"github.com/l3blonde/grip-and-grin/internal/service"
)

// AdminHandler handles the authenticated article-management endpoints.
// Writes arrive as multipart forms so an image upload can ride along
// with the article fields.
type AdminHandler struct {
	articleService service.ArticleServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(articleService service.ArticleServiceInterface) *AdminHandler {
	return &AdminHandler{
		articleService: articleService,
	}
}

// CreateArticle handles POST /api/v1/admin/articles
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	authorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	categoryID, err := formInt64(c, "category_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id must be an integer"})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), service.CreateArticleInput{
		Title:      c.PostForm("title"),
		Content:    c.PostForm("content"),
		Excerpt:    c.PostForm("excerpt"),
		AuthorID:   authorID,
		CategoryID: categoryID,
		Status:     c.PostForm("status"),
		Image:      uploadFromForm(c),
		ImageAlt:   c.PostForm("alt_text"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id
func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	categoryID, err := formInt64(c, "category_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id must be an integer"})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), service.UpdateArticleInput{
		ID:          id,
		Title:       c.PostForm("title"),
		Content:     c.PostForm("content"),
		Excerpt:     c.PostForm("excerpt"),
		CategoryID:  categoryID,
		Status:      c.PostForm("status"),
		Image:       uploadFromForm(c),
		ImageAlt:    c.PostForm("alt_text"),
		RemoveImage: c.PostForm("remove_image") == "true" || c.PostForm("remove_image") == "1",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAllArticles handles GET /api/v1/admin/articles
func (h *AdminHandler) ListAllArticles(c *gin.Context) {
	page, err := h.articleService.ListAll(c.Request.Context(), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// uploadFromForm reads the optional "image" form file. Absence yields
// nil; a present but unreadable file yields an Upload whose Err makes
// the pipeline reject it with a validation error.
func uploadFromForm(c *gin.Context) *images.Upload {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil
		}
		return &images.Upload{Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return &images.Upload{Filename: header.Filename, Err: err}
	}

	return &images.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Data:     data,
	}
}

func formInt64(c *gin.Context, field string) (int64, error) {
	return strconv.ParseInt(c.PostForm(field), 10, 64)
}
