package domain

import "time"

// Article is the aggregate root for published content. Values are
// immutable: every change builds a new Article via the With helpers,
// which keeps the published-timestamp coupling in one place instead of
// duplicated across the create and update paths.
type Article struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt"`
	AuthorID      int64      `json:"author_id"`
	CategoryID    int64      `json:"category_id"`
	Status        Status     `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	FeaturedImage *Image     `json:"featured_image,omitempty"`

	// FirstPublishedAt remembers the first publish instant across
	// archive/re-publish cycles while PublishedAt stays coupled to the
	// current status. Not exposed in API responses.
	FirstPublishedAt *time.Time `json:"-"`
}

// NewArticle builds an unsaved article carrying the ID 0 sentinel.
// PublishedAt is derived from the status: a brand-new published article
// is stamped with now, anything else carries no publish instant.
func NewArticle(title, slug, content, excerpt string, authorID, categoryID int64, status Status, now time.Time) Article {
	a := Article{
		Title:      title,
		Slug:       slug,
		Content:    content,
		Excerpt:    excerpt,
		AuthorID:   authorID,
		CategoryID: categoryID,
		Status:     StatusDraft,
		CreatedAt:  now,
	}
	return a.WithStatus(status, now)
}

// IsNew reports whether the article has been persisted yet.
func (a Article) IsNew() bool {
	return a.ID == 0
}

// WithStatus returns a copy of the article in the given status.
// Entering published sets PublishedAt only when the article has never
// been published before; re-publishing restores the original publish
// instant rather than stamping a new one. Leaving published clears
// PublishedAt, keeping it coupled to the current status.
func (a Article) WithStatus(status Status, now time.Time) Article {
	switch {
	case status.IsPublished() && a.PublishedAt == nil:
		if a.FirstPublishedAt != nil {
			a.PublishedAt = a.FirstPublishedAt
		} else {
			t := now
			a.PublishedAt = &t
			a.FirstPublishedAt = &t
		}
	case status.IsPublished() && a.FirstPublishedAt == nil:
		a.FirstPublishedAt = a.PublishedAt
	case !status.IsPublished():
		a.PublishedAt = nil
	}
	a.Status = status
	return a
}

// WithImage returns a copy referencing img as the featured image.
func (a Article) WithImage(img Image) Article {
	a.FeaturedImage = &img
	return a
}

// WithoutImage returns a copy with no featured image.
func (a Article) WithoutImage() Article {
	a.FeaturedImage = nil
	return a
}

// IsVisible reports whether the article belongs in public listings:
// published status and a publish instant that is not in the future.
func (a Article) IsVisible(now time.Time) bool {
	return a.Status.IsPublished() && a.PublishedAt != nil && !a.PublishedAt.After(now)
}
