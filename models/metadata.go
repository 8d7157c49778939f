package models

// MetadataRecord is a detailed catalog entry for one title, keyed by imdb_id.
// Records are fetched fresh per request and never persisted.
type MetadataRecord struct {
	ImdbID      string    `json:"imdb_id"`
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Type        string    `json:"type,omitempty"`
	Poster      string    `json:"poster,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	Cast        []string  `json:"cast,omitempty"`
	Director    []string  `json:"director,omitempty"`
	Writer      []string  `json:"writer,omitempty"`
	ReleaseInfo string    `json:"releaseInfo,omitempty"`
	ImdbRating  string    `json:"imdbRating,omitempty"`
	Description string    `json:"description,omitempty"`
	Awards      string    `json:"awards,omitempty"`
	Runtime     string    `json:"runtime,omitempty"`
	Trailers    []Trailer `json:"trailers,omitempty"`
}

// Trailer points at a playable preview clip.
type Trailer struct {
	Source string `json:"source"`
	Type   string `json:"type,omitempty"`
}

// MetaSummary is the abbreviated record returned by catalog search; its ID
// feeds a subsequent detailed lookup.
type MetaSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Poster      string `json:"poster,omitempty"`
	ReleaseInfo string `json:"releaseInfo,omitempty"`
	ImdbRating  string `json:"imdbRating,omitempty"`
}

// EnrichedItem is a playlist item with its catalog metadata attached.
// Metadata is nil when the catalog had no record for the item's content id;
// that is a normal state, not an error.
type EnrichedItem struct {
	PlaylistItem
	Metadata *MetadataRecord `json:"metadata"`
}
