package models

// MediaKind is derived from the file extension.
type MediaKind string

const (
	KindAudio MediaKind = "audio"
	KindVideo MediaKind = "video"
)

// MediaEntry is one asset of a freshly fetched catalog.
// ID is regenerated on every fetch and must never be used as a storage key;
// Name is the stable key.
type MediaEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	URL         string    `json:"url"`
	Type        MediaKind `json:"type"`
	SizeBytes   *int64    `json:"size,omitempty"`
	Likes       *int64    `json:"likes,omitempty"`
}

type MediaResponse struct {
	Files []MediaEntry `json:"files"`
	Repo  string       `json:"repo"`
	Total int          `json:"total"`
}

// RepoItem is one element of the remote repository listing.
type RepoItem struct {
	Name string `json:"name"`
	Type string `json:"type"` // "file" или "dir"
	Size *int64 `json:"size,omitempty"`
}
