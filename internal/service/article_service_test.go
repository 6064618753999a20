package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/images"
	"github.com/l3blonde/grip-and-grin/internal/mocks"
	"github.com/l3blonde/grip-and-grin/internal/service"
	"github.com/l3blonde/grip-and-grin/internal/validator"
)

const testPageSize = 5

type articleServiceMocks struct {
	articles   *mocks.MockArticleRepository
	categories *mocks.MockCategoryRepository
	pipeline   *mocks.MockImagePipeline
}

func newArticleService(t *testing.T) (*service.ArticleService, articleServiceMocks) {
	m := articleServiceMocks{
		articles:   mocks.NewMockArticleRepository(t),
		categories: mocks.NewMockCategoryRepository(t),
		pipeline:   mocks.NewMockImagePipeline(t),
	}
	svc := service.NewArticleService(m.articles, m.categories, m.pipeline, validator.NewValidator(), testPageSize)
	return svc, m
}

// echoSave makes the repository return its argument with an id, the way
// an insert would.
func echoSave(m *mocks.MockArticleRepository, id int64) {
	m.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("domain.Article")).
		RunAndReturn(func(_ context.Context, a domain.Article) (*domain.Article, error) {
			if a.IsNew() {
				a.ID = id
			}
			return &a, nil
		})
}

func TestArticleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft with a slug derived from the title", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindBySlug(mock.Anything, "best-bass-fishing-spots").Return(nil, nil)
		echoSave(m.articles, 1)

		article, err := svc.Create(ctx, service.CreateArticleInput{
			Title:      "Best Bass Fishing Spots!",
			Content:    "The spots that produced this season.",
			AuthorID:   7,
			CategoryID: 3,
			Status:     "draft",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), article.ID)
		assert.Equal(t, "best-bass-fishing-spots", article.Slug)
		assert.Equal(t, domain.StatusDraft, article.Status)
		assert.Nil(t, article.PublishedAt)
	})

	t.Run("publishing sets the publish instant", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindBySlug(mock.Anything, mock.Anything).Return(nil, nil)
		echoSave(m.articles, 2)

		article, err := svc.Create(ctx, service.CreateArticleInput{
			Title:    "Live Report",
			Content:  "content",
			Status:   "published",
			AuthorID: 7,
		})

		require.NoError(t, err)
		require.NotNil(t, article.PublishedAt)
		assert.WithinDuration(t, time.Now(), *article.PublishedAt, 5*time.Second)
	})

	t.Run("slug collision gets a timestamp suffix", func(t *testing.T) {
		svc, m := newArticleService(t)

		taken := &domain.Article{ID: 99, Slug: "live-report"}
		m.articles.EXPECT().FindBySlug(mock.Anything, "live-report").Return(taken, nil)

		var savedSlug string
		m.articles.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("domain.Article")).
			RunAndReturn(func(_ context.Context, a domain.Article) (*domain.Article, error) {
				savedSlug = a.Slug
				a.ID = 3
				return &a, nil
			})

		_, err := svc.Create(ctx, service.CreateArticleInput{
			Title:   "Live Report",
			Content: "content",
			Status:  "draft",
		})

		require.NoError(t, err)
		assert.Regexp(t, `^live-report-\d+$`, savedSlug)
	})

	t.Run("rejects missing title without touching the repository", func(t *testing.T) {
		svc, _ := newArticleService(t)

		_, err := svc.Create(ctx, service.CreateArticleInput{
			Title:   "   ",
			Content: "content",
			Status:  "draft",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindBySlug(mock.Anything, mock.Anything).Return(nil, nil)

		_, err := svc.Create(ctx, service.CreateArticleInput{
			Title:   "Title",
			Content: "content",
			Status:  "pending",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("processes the upload and defaults alt text to the title", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindBySlug(mock.Anything, mock.Anything).Return(nil, nil)
		echoSave(m.articles, 4)

		upload := &images.Upload{Filename: "bass.jpg", Size: 100, Data: []byte("fake")}
		img := &domain.Image{OriginalPath: "/uploads/originals/img_a.jpg", AltText: "Trophy Catch"}
		m.pipeline.EXPECT().Process(*upload, "Trophy Catch").Return(img, nil)

		article, err := svc.Create(ctx, service.CreateArticleInput{
			Title:   "Trophy Catch",
			Content: "content",
			Status:  "draft",
			Image:   upload,
		})

		require.NoError(t, err)
		require.NotNil(t, article.FeaturedImage)
		assert.Equal(t, "Trophy Catch", article.FeaturedImage.AltText)
	})

	t.Run("rejected upload fails the create", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindBySlug(mock.Anything, mock.Anything).Return(nil, nil)

		upload := &images.Upload{Filename: "huge.jpg", Size: 11 * 1024 * 1024, Data: []byte("fake")}
		m.pipeline.EXPECT().Process(*upload, mock.Anything).
			Return(nil, domain.NewValidationError("image", "file too large, maximum size is 10MB"))

		_, err := svc.Create(ctx, service.CreateArticleInput{
			Title:   "Title",
			Content: "content",
			Status:  "draft",
			Image:   upload,
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()

	existingDraft := func() *domain.Article {
		return &domain.Article{
			ID:         10,
			Title:      "Original Title",
			Slug:       "original-title",
			Content:    "original content",
			AuthorID:   7,
			CategoryID: 3,
			Status:     domain.StatusDraft,
			CreatedAt:  time.Now().Add(-time.Hour),
		}
	}

	t.Run("missing article returns ErrNotFound", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(nil, nil)

		_, err := svc.Update(ctx, service.UpdateArticleInput{ID: 10, Title: "T", Content: "c", Status: "draft"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("slug is stable when the title does not change", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(existingDraft(), nil)
		echoSave(m.articles, 0)

		article, err := svc.Update(ctx, service.UpdateArticleInput{
			ID:      10,
			Title:   "Original Title",
			Content: "rewritten content",
			Status:  "draft",
		})

		require.NoError(t, err)
		assert.Equal(t, "original-title", article.Slug)
		assert.Equal(t, "rewritten content", article.Content)
	})

	t.Run("changed title regenerates the slug", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(existingDraft(), nil)
		m.articles.EXPECT().FindBySlug(mock.Anything, "new-title").Return(nil, nil)
		echoSave(m.articles, 0)

		article, err := svc.Update(ctx, service.UpdateArticleInput{
			ID:      10,
			Title:   "New Title",
			Content: "content",
			Status:  "draft",
		})

		require.NoError(t, err)
		assert.Equal(t, "new-title", article.Slug)
	})

	t.Run("title change keeps the slug when the article already owns it", func(t *testing.T) {
		svc, m := newArticleService(t)

		existing := existingDraft()
		existing.Title = "Original Title!"
		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(existing, nil)
		// Slug lookup finds this same article, so no suffix is added.
		m.articles.EXPECT().FindBySlug(mock.Anything, "original-title").Return(existing, nil)
		echoSave(m.articles, 0)

		article, err := svc.Update(ctx, service.UpdateArticleInput{
			ID:      10,
			Title:   "Original Title",
			Content: "content",
			Status:  "draft",
		})

		require.NoError(t, err)
		assert.Equal(t, "original-title", article.Slug)
	})

	t.Run("publish sets the instant once and archive clears it", func(t *testing.T) {
		svc, m := newArticleService(t)

		current := existingDraft()
		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(current, nil).Times(3)
		m.articles.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("domain.Article")).
			RunAndReturn(func(_ context.Context, a domain.Article) (*domain.Article, error) {
				// Feed the saved state back to the next FindByID.
				*current = a
				return &a, nil
			}).Times(3)

		published, err := svc.Update(ctx, service.UpdateArticleInput{
			ID: 10, Title: "Original Title", Content: "c", Status: "published",
		})
		require.NoError(t, err)
		require.NotNil(t, published.PublishedAt)
		firstInstant := *published.PublishedAt

		archived, err := svc.Update(ctx, service.UpdateArticleInput{
			ID: 10, Title: "Original Title", Content: "c", Status: "archived",
		})
		require.NoError(t, err)
		assert.Nil(t, archived.PublishedAt)

		republished, err := svc.Update(ctx, service.UpdateArticleInput{
			ID: 10, Title: "Original Title", Content: "c", Status: "published",
		})
		require.NoError(t, err)
		require.NotNil(t, republished.PublishedAt)
		assert.True(t, republished.PublishedAt.Equal(firstInstant),
			"re-publishing must restore the original publish instant")
	})

	t.Run("remove image deletes the stored files", func(t *testing.T) {
		svc, m := newArticleService(t)

		img := domain.Image{OriginalPath: "/uploads/originals/img_a.jpg"}
		existing := existingDraft()
		existing.FeaturedImage = &img

		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(existing, nil)
		m.pipeline.EXPECT().Delete(img).Return(nil)
		echoSave(m.articles, 0)

		article, err := svc.Update(ctx, service.UpdateArticleInput{
			ID:          10,
			Title:       "Original Title",
			Content:     "content",
			Status:      "draft",
			RemoveImage: true,
		})

		require.NoError(t, err)
		assert.Nil(t, article.FeaturedImage)
	})

	t.Run("new upload replaces the existing image", func(t *testing.T) {
		svc, m := newArticleService(t)

		oldImg := domain.Image{OriginalPath: "/uploads/originals/img_old.jpg"}
		existing := existingDraft()
		existing.FeaturedImage = &oldImg

		m.articles.EXPECT().FindByID(mock.Anything, int64(10)).Return(existing, nil)
		m.pipeline.EXPECT().Delete(oldImg).Return(nil)

		upload := &images.Upload{Filename: "new.jpg", Size: 10, Data: []byte("new")}
		newImg := &domain.Image{OriginalPath: "/uploads/originals/img_new.jpg"}
		m.pipeline.EXPECT().Process(*upload, "Original Title").Return(newImg, nil)
		echoSave(m.articles, 0)

		article, err := svc.Update(ctx, service.UpdateArticleInput{
			ID:      10,
			Title:   "Original Title",
			Content: "content",
			Status:  "draft",
			Image:   upload,
		})

		require.NoError(t, err)
		require.NotNil(t, article.FeaturedImage)
		assert.Equal(t, "/uploads/originals/img_new.jpg", article.FeaturedImage.OriginalPath)
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes image files before the row", func(t *testing.T) {
		svc, m := newArticleService(t)

		img := domain.Image{OriginalPath: "/uploads/originals/img_a.jpg"}
		m.articles.EXPECT().FindByID(mock.Anything, int64(5)).
			Return(&domain.Article{ID: 5, FeaturedImage: &img}, nil)
		m.pipeline.EXPECT().Delete(img).Return(nil)
		m.articles.EXPECT().Delete(mock.Anything, int64(5)).Return(nil)

		require.NoError(t, svc.Delete(ctx, 5))
	})

	t.Run("missing article returns ErrNotFound", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 5), domain.ErrNotFound)
	})
}

func TestArticleService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("get by slug returns ErrNotFound when not visible", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().FindPublishedBySlug(mock.Anything, "hidden").Return(nil, nil)

		_, err := svc.GetBySlug(ctx, "hidden")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list published computes pagination metadata", func(t *testing.T) {
		svc, m := newArticleService(t)

		listed := make([]domain.Article, testPageSize)
		m.articles.EXPECT().ListPublished(mock.Anything, testPageSize, testPageSize).Return(listed, nil)
		m.articles.EXPECT().CountPublished(mock.Anything).Return(12, nil)

		page, err := svc.ListPublished(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 12, page.TotalCount)
		assert.True(t, page.HasNext())
		assert.True(t, page.HasPrevious())
	})

	t.Run("page below one is clamped", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().ListPublished(mock.Anything, testPageSize, 0).Return(nil, nil)
		m.articles.EXPECT().CountPublished(mock.Anything).Return(0, nil)

		page, err := svc.ListPublished(ctx, -3)
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage)
		assert.False(t, page.HasNext())
	})

	t.Run("empty search query short-circuits", func(t *testing.T) {
		svc, _ := newArticleService(t)

		page, err := svc.Search(ctx, "   ", 1)
		require.NoError(t, err)
		assert.Empty(t, page.Articles)
		assert.Equal(t, 0, page.TotalCount)
	})

	t.Run("search delegates to the repository", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().Search(mock.Anything, "walleye", testPageSize, 0).
			Return([]domain.Article{{ID: 1}}, nil)
		m.articles.EXPECT().CountSearch(mock.Anything, "walleye").Return(1, nil)

		page, err := svc.Search(ctx, "walleye", 1)
		require.NoError(t, err)
		assert.Len(t, page.Articles, 1)
	})

	t.Run("unknown category returns ErrNotFound", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.categories.EXPECT().FindBySlug(mock.Anything, "nope").Return(nil, nil)

		_, err := svc.ListByCategory(ctx, "nope", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("category listing carries the category", func(t *testing.T) {
		svc, m := newArticleService(t)

		category := &domain.Category{ID: 3, Name: "Bass Fishing", Slug: "bass-fishing"}
		m.categories.EXPECT().FindBySlug(mock.Anything, "bass-fishing").Return(category, nil)
		m.articles.EXPECT().ListByCategory(mock.Anything, int64(3), testPageSize, 0).
			Return([]domain.Article{{ID: 1}}, nil)
		m.articles.EXPECT().CountByCategory(mock.Anything, int64(3)).Return(1, nil)

		page, err := svc.ListByCategory(ctx, "bass-fishing", 1)
		require.NoError(t, err)
		assert.Equal(t, "Bass Fishing", page.Category.Name)
		assert.Len(t, page.Articles, 1)
	})

	t.Run("list all pages every status for the admin panel", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().ListAll(mock.Anything, testPageSize, 0).
			Return([]domain.Article{{ID: 1, Status: domain.StatusDraft}}, nil)
		m.articles.EXPECT().CountAll(mock.Anything).Return(1, nil)

		page, err := svc.ListAll(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, page.Articles, 1)
	})

	t.Run("list categories delegates to the repository", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.categories.EXPECT().FindAll(mock.Anything).
			Return([]domain.Category{{ID: 1, Name: "Bass Fishing"}}, nil)

		categories, err := svc.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 1)
	})

	t.Run("repository failures surface wrapped", func(t *testing.T) {
		svc, m := newArticleService(t)

		m.articles.EXPECT().ListPublished(mock.Anything, testPageSize, 0).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := svc.ListPublished(ctx, 1)
		require.Error(t, err)
		assert.False(t, domain.IsValidation(err))
	})
}
