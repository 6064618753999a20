package domain

// Image holds the stored variant paths for a featured image plus the
// original pixel dimensions. It is a value object with no identity of
// its own: equality is structural and its lifecycle is owned entirely
// by the article that references it. The variant paths are public URL
// paths; each WEBP derivative has a same-named .jpg sibling on disk as
// a fallback for consumers without WEBP support.
type Image struct {
	OriginalPath  string `json:"original"`
	ThumbnailPath string `json:"thumbnail"`
	MediumPath    string `json:"medium"`
	FullPath      string `json:"full"`
	AltText       string `json:"alt"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
}
