package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes attaches all API endpoints to the router.
func RegisterRoutes(r *mux.Router, playlists *PlaylistHandler, items *ItemsHandler, search *SearchHandler) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/user", playlists.CreateUser).Methods(http.MethodPost)

	api.HandleFunc("/playlist/new", playlists.CreatePlaylist).Methods(http.MethodPost)
	api.HandleFunc("/playlist/{userId}", playlists.ListPlaylists).Methods(http.MethodGet)
	api.HandleFunc("/playlist/{playlistId:[0-9]+}", playlists.UpdatePlaylist).Methods(http.MethodPut)
	api.HandleFunc("/playlist/{playlistId:[0-9]+}", playlists.DeletePlaylist).Methods(http.MethodDelete)

	api.HandleFunc("/playlist/{playlistId:[0-9]+}/items", playlists.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/playlist/{playlistId:[0-9]+}/items", items.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/playlist/{playlistId:[0-9]+}/items/{itemId:[0-9]+}", playlists.DeleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/search/{searchTerm}", search.Search).Methods(http.MethodGet)
}
