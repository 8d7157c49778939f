package models

// Playlist groups saved titles for one user. Order determines display position
// among the user's playlists and is assigned at creation time.
type Playlist struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"playlist_name"`
	Order  int    `json:"playlist_order"`
	Color  string `json:"color,omitempty"`
}

// PlaylistItem is one saved title inside a playlist. ContentID is the
// catalog's stable identifier for the title (an IMDb-style id). No two items
// in the same playlist share the same (content id, type) pair.
type PlaylistItem struct {
	ID         int64       `json:"id"`
	PlaylistID int64       `json:"playlist_id"`
	ContentID  string      `json:"content_id"`
	Type       ContentType `json:"type"`
}

// PlaylistUpdate carries the editable playlist fields.
type PlaylistUpdate struct {
	Name  string `json:"playlist_name"`
	Order int    `json:"playlist_order"`
	Color string `json:"color,omitempty"`
}
