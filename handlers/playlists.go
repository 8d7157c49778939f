package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nncsumb/moviePlaylist/internal/database"
	"github.com/nncsumb/moviePlaylist/models"
	playlistsvc "github.com/nncsumb/moviePlaylist/services/playlists"
)

type playlistService interface {
	CreateUser(ctx context.Context, name string) (models.User, error)
	CreatePlaylist(ctx context.Context, userID, name string) (models.Playlist, error)
	Playlists(ctx context.Context, userID string) ([]models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id int64, update models.PlaylistUpdate) error
	DeletePlaylist(ctx context.Context, id int64) error
	AddItem(ctx context.Context, playlistID int64, contentID string, contentType models.ContentType) (models.PlaylistItem, error)
	RemoveItem(ctx context.Context, playlistID, itemID int64) error
}

var _ playlistService = (*playlistsvc.Service)(nil)

// PlaylistHandler exposes user and playlist management endpoints.
type PlaylistHandler struct {
	Service playlistService
}

func NewPlaylistHandler(s playlistService) *PlaylistHandler {
	return &PlaylistHandler{Service: s}
}

// CreateUser registers a user and responds with the generated id.
func (h *PlaylistHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name string `json:"name"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Service.CreateUser(r.Context(), request.Name)
	if err != nil {
		writePlaylistError(w, err, "Error creating user")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"userId": user.ID})
}

// CreatePlaylist creates a playlist; display order is assigned server-side.
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PlaylistName string `json:"playlist_name"`
		UserID       string `json:"user_id"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	playlist, err := h.Service.CreatePlaylist(r.Context(), request.UserID, request.PlaylistName)
	if err != nil {
		writePlaylistError(w, err, "Error creating playlist")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(playlist)
}

// ListPlaylists returns all playlists of a user in display order.
func (h *PlaylistHandler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	playlists, err := h.Service.Playlists(r.Context(), userID)
	if err != nil {
		writePlaylistError(w, err, "Error retrieving playlists")
		return
	}
	if playlists == nil {
		playlists = []models.Playlist{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(playlists)
}

// UpdatePlaylist edits a playlist's name, order and color.
func (h *PlaylistHandler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := parsePlaylistID(r)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}

	var update models.PlaylistUpdate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdatePlaylist(r.Context(), playlistID, update); err != nil {
		writePlaylistError(w, err, "Error updating playlist")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeletePlaylist removes a playlist. Items are not cascaded.
func (h *PlaylistHandler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := parsePlaylistID(r)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeletePlaylist(r.Context(), playlistID); err != nil {
		writePlaylistError(w, err, "Error deleting playlist")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// AddItem appends a title to the playlist.
func (h *PlaylistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	playlistID, err := parsePlaylistID(r)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}

	var request struct {
		ContentID string `json:"content_id"`
		Type      string `json:"type"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Service.AddItem(r.Context(), playlistID, request.ContentID, models.ContentType(request.Type))
	if err != nil {
		writePlaylistError(w, err, "Error adding playlist item")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(item)
}

// DeleteItem removes one item from the playlist.
func (h *PlaylistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	playlistID, err := parsePlaylistID(r)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}
	itemID, err := strconv.ParseInt(mux.Vars(r)["itemId"], 10, 64)
	if err != nil || itemID <= 0 {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveItem(r.Context(), playlistID, itemID); err != nil {
		writePlaylistError(w, err, "Error deleting playlist item")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func parsePlaylistID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["playlistId"], 10, 64)
}

// writePlaylistError maps service errors onto the API's status codes:
// validation and duplicates are 400, missing rows 404, everything else 500.
func writePlaylistError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, playlistsvc.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, database.ErrDuplicateItem):
		http.Error(w, "Playlist item already exists in the playlist", http.StatusBadRequest)
	case errors.Is(err, database.ErrPlaylistNotFound), errors.Is(err, database.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("[playlist-handler] %s: %v", fallback, err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
