package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nncsumb/moviePlaylist/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrItemNotFound     = errors.New("playlist item not found")
	ErrDuplicateItem    = errors.New("playlist item already exists in the playlist")
)

// Repository provides access to users, playlists and playlist items.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an open database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user and returns it with a generated id.
func (r *Repository) CreateUser(ctx context.Context, name string) (models.User, error) {
	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)",
		user.ID, user.Name, user.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// GetUser looks up a user by id.
func (r *Repository) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM users WHERE id = ?", id).
		Scan(&user.ID, &user.Name, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

// CreatePlaylist inserts a playlist for the user, assigning the next display
// order (current user maximum + 1) inside a single transaction.
func (r *Repository) CreatePlaylist(ctx context.Context, userID, name string) (models.Playlist, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var maxOrder int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(playlist_order), 0) FROM playlists WHERE user_id = ?", userID).
		Scan(&maxOrder)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("select max playlist order: %w", err)
	}

	playlist := models.Playlist{
		UserID: userID,
		Name:   name,
		Order:  maxOrder + 1,
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO playlists (user_id, playlist_name, playlist_order, color) VALUES (?, ?, ?, ?)",
		playlist.UserID, playlist.Name, playlist.Order, playlist.Color)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}

	playlist.ID, err = result.LastInsertId()
	if err != nil {
		return models.Playlist{}, fmt.Errorf("read playlist id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Playlist{}, fmt.Errorf("commit playlist insert: %w", err)
	}

	return playlist, nil
}

// GetPlaylist looks up a playlist by id.
func (r *Repository) GetPlaylist(ctx context.Context, id int64) (models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, playlist_name, playlist_order, color FROM playlists WHERE id = ?", id).
		Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.Order, &playlist.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, ErrPlaylistNotFound
	}
	if err != nil {
		return models.Playlist{}, fmt.Errorf("select playlist: %w", err)
	}
	return playlist, nil
}

// ListPlaylists returns all playlists owned by the user in display order.
func (r *Repository) ListPlaylists(ctx context.Context, userID string) ([]models.Playlist, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, playlist_name, playlist_order, color FROM playlists WHERE user_id = ? ORDER BY playlist_order",
		userID)
	if err != nil {
		return nil, fmt.Errorf("select playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.UserID, &playlist.Name, &playlist.Order, &playlist.Color); err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist rows: %w", err)
	}

	return playlists, nil
}

// UpdatePlaylist replaces the editable fields of an existing playlist.
func (r *Repository) UpdatePlaylist(ctx context.Context, id int64, update models.PlaylistUpdate) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE playlists SET playlist_name = ?, playlist_order = ?, color = ? WHERE id = ?",
		update.Name, update.Order, update.Color, id)
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// DeletePlaylist removes a playlist row. Items referencing the playlist are
// left in place: there is no cascade.
func (r *Repository) DeletePlaylist(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM playlists WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}

// ListPlaylistItems returns all items of a playlist ordered by insertion.
func (r *Repository) ListPlaylistItems(ctx context.Context, playlistID int64) ([]models.PlaylistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, playlist_id, content_id, type FROM playlist_items WHERE playlist_id = ? ORDER BY id",
		playlistID)
	if err != nil {
		return nil, fmt.Errorf("select playlist items: %w", err)
	}
	defer rows.Close()

	var items []models.PlaylistItem
	for rows.Next() {
		var item models.PlaylistItem
		if err := rows.Scan(&item.ID, &item.PlaylistID, &item.ContentID, &item.Type); err != nil {
			return nil, fmt.Errorf("scan playlist item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist item rows: %w", err)
	}

	return items, nil
}

// AddPlaylistItem inserts an item unless the playlist already holds the same
// (content id, type) pair, in which case ErrDuplicateItem is returned.
func (r *Repository) AddPlaylistItem(ctx context.Context, playlistID int64, contentID string, contentType models.ContentType) (models.PlaylistItem, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.PlaylistItem{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM playlist_items WHERE playlist_id = ? AND content_id = ? AND type = ?",
		playlistID, contentID, contentType).Scan(&existingID)
	if err == nil {
		return models.PlaylistItem{}, ErrDuplicateItem
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.PlaylistItem{}, fmt.Errorf("check existing playlist item: %w", err)
	}

	item := models.PlaylistItem{
		PlaylistID: playlistID,
		ContentID:  contentID,
		Type:       contentType,
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO playlist_items (playlist_id, content_id, type) VALUES (?, ?, ?)",
		item.PlaylistID, item.ContentID, item.Type)
	if err != nil {
		return models.PlaylistItem{}, fmt.Errorf("insert playlist item: %w", err)
	}

	item.ID, err = result.LastInsertId()
	if err != nil {
		return models.PlaylistItem{}, fmt.Errorf("read playlist item id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.PlaylistItem{}, fmt.Errorf("commit playlist item insert: %w", err)
	}

	return item, nil
}

// DeletePlaylistItem removes one item of a playlist.
func (r *Repository) DeletePlaylistItem(ctx context.Context, playlistID, itemID int64) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM playlist_items WHERE playlist_id = ? AND id = ?", playlistID, itemID); err != nil {
		return fmt.Errorf("delete playlist item: %w", err)
	}
	return nil
}
