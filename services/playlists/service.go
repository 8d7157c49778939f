package playlists

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nncsumb/moviePlaylist/internal/database"
	"github.com/nncsumb/moviePlaylist/models"
)

// ErrInvalidInput marks a request that failed validation before touching the
// store. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")

type playlistStore interface {
	CreateUser(ctx context.Context, name string) (models.User, error)
	CreatePlaylist(ctx context.Context, userID, name string) (models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (models.Playlist, error)
	ListPlaylists(ctx context.Context, userID string) ([]models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id int64, update models.PlaylistUpdate) error
	DeletePlaylist(ctx context.Context, id int64) error
	AddPlaylistItem(ctx context.Context, playlistID int64, contentID string, contentType models.ContentType) (models.PlaylistItem, error)
	DeletePlaylistItem(ctx context.Context, playlistID, itemID int64) error
}

var _ playlistStore = (*database.Repository)(nil)

// Service validates and executes playlist and user mutations against the
// store.
type Service struct {
	store playlistStore
}

func NewService(store playlistStore) *Service {
	return &Service{store: store}
}

// CreateUser registers a new user.
func (s *Service) CreateUser(ctx context.Context, name string) (models.User, error) {
	if strings.TrimSpace(name) == "" {
		return models.User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.store.CreateUser(ctx, name)
}

// CreatePlaylist creates a playlist for the user; its display order is
// assigned automatically.
func (s *Service) CreatePlaylist(ctx context.Context, userID, name string) (models.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(userID) == "" {
		return models.Playlist{}, fmt.Errorf("%w: playlist name and user id are required", ErrInvalidInput)
	}

	playlist, err := s.store.CreatePlaylist(ctx, userID, name)
	if err != nil {
		return models.Playlist{}, err
	}

	log.Printf("[playlists] created playlist id=%d user=%s order=%d", playlist.ID, playlist.UserID, playlist.Order)
	return playlist, nil
}

// Playlist fetches a single playlist by id.
func (s *Service) Playlist(ctx context.Context, id int64) (models.Playlist, error) {
	return s.store.GetPlaylist(ctx, id)
}

// Playlists returns the user's playlists in display order.
func (s *Service) Playlists(ctx context.Context, userID string) ([]models.Playlist, error) {
	return s.store.ListPlaylists(ctx, userID)
}

// UpdatePlaylist edits the playlist's name, order and color.
func (s *Service) UpdatePlaylist(ctx context.Context, id int64, update models.PlaylistUpdate) error {
	if strings.TrimSpace(update.Name) == "" {
		return fmt.Errorf("%w: playlist name is required", ErrInvalidInput)
	}
	return s.store.UpdatePlaylist(ctx, id, update)
}

// DeletePlaylist removes the playlist row. Its items are left behind on
// purpose; there is no cascade.
func (s *Service) DeletePlaylist(ctx context.Context, id int64) error {
	return s.store.DeletePlaylist(ctx, id)
}

// AddItem stores a new title reference on the playlist.
func (s *Service) AddItem(ctx context.Context, playlistID int64, contentID string, contentType models.ContentType) (models.PlaylistItem, error) {
	if strings.TrimSpace(contentID) == "" || contentType == "" {
		return models.PlaylistItem{}, fmt.Errorf("%w: content id and type are required", ErrInvalidInput)
	}
	if !contentType.Valid() {
		return models.PlaylistItem{}, fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, contentType)
	}
	return s.store.AddPlaylistItem(ctx, playlistID, contentID, contentType)
}

// RemoveItem deletes one item from the playlist.
func (s *Service) RemoveItem(ctx context.Context, playlistID, itemID int64) error {
	return s.store.DeletePlaylistItem(ctx, playlistID, itemID)
}
