package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nncsumb/moviePlaylist/models"
	"github.com/nncsumb/moviePlaylist/services/catalog"
	itemsvc "github.com/nncsumb/moviePlaylist/services/items"
)

type enrichedItemService interface {
	ListEnriched(ctx context.Context, playlistID int64, typeFilter, genreFilter string) ([]models.EnrichedItem, error)
}

var _ enrichedItemService = (*itemsvc.Service)(nil)

// ItemsHandler serves the enriched playlist item listing.
type ItemsHandler struct {
	Service enrichedItemService
}

func NewItemsHandler(s enrichedItemService) *ItemsHandler {
	return &ItemsHandler{Service: s}
}

// ListItems returns the playlist's items with catalog metadata attached,
// optionally filtered by ?type= and ?genre=.
func (h *ItemsHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	playlistID, err := parsePlaylistID(r)
	if err != nil {
		http.Error(w, "invalid playlist id", http.StatusBadRequest)
		return
	}

	typeFilter := r.URL.Query().Get("type")
	genreFilter := r.URL.Query().Get("genre")

	if typeFilter != "" && typeFilter != itemsvc.TypeFilterBoth && !models.ContentType(typeFilter).Valid() {
		http.Error(w, "type must be movie, series or both", http.StatusBadRequest)
		return
	}

	enriched, err := h.Service.ListEnriched(r.Context(), playlistID, typeFilter, genreFilter)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			log.Printf("[items-handler] catalog lookup failed for playlist %d: %v", playlistID, err)
			http.Error(w, "Error retrieving playlist items with metadata", http.StatusInternalServerError)
			return
		}
		log.Printf("[items-handler] listing playlist %d failed: %v", playlistID, err)
		http.Error(w, "Error retrieving playlist items", http.StatusInternalServerError)
		return
	}
	if enriched == nil {
		enriched = []models.EnrichedItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(enriched)
}
