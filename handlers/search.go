package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	searchsvc "github.com/nncsumb/moviePlaylist/services/search"
)

type searchService interface {
	Search(ctx context.Context, term string) (*searchsvc.Results, error)
}

var _ searchService = (*searchsvc.Service)(nil)

// SearchHandler exposes catalog title search with detailed enrichment.
type SearchHandler struct {
	Service searchService
}

func NewSearchHandler(s searchService) *SearchHandler {
	return &SearchHandler{Service: s}
}

// Search looks up movies and series matching the path term.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := mux.Vars(r)["searchTerm"]

	results, err := h.Service.Search(r.Context(), term)
	if err != nil {
		log.Printf("[search-handler] search %q failed: %v", term, err)
		http.Error(w, "Error performing search", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}
