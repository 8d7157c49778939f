package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nncsumb/moviePlaylist/config"
	"github.com/nncsumb/moviePlaylist/handlers"
	"github.com/nncsumb/moviePlaylist/internal/database"
	"github.com/nncsumb/moviePlaylist/services/catalog"
	"github.com/nncsumb/moviePlaylist/services/items"
	"github.com/nncsumb/moviePlaylist/services/playlists"
	"github.com/nncsumb/moviePlaylist/services/search"
	"github.com/nncsumb/moviePlaylist/utils"
)

func main() {
	settingsPath := flag.String("settings", "settings.json", "path to the settings file")
	flag.Parse()

	manager := config.NewManager(*settingsPath)
	settings, err := manager.Load()
	if err != nil {
		log.Fatalf("[main] load settings: %v", err)
	}

	if settings.LogFilePath != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   settings.LogFilePath,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}

	db, err := database.NewDB(database.Config{DatabasePath: settings.DatabasePath})
	if err != nil {
		log.Fatalf("[main] open database: %v", err)
	}
	defer db.Close()

	catalogClient := catalog.NewClient(settings.CatalogBaseURL,
		time.Duration(settings.CatalogTimeoutSeconds)*time.Second)

	playlistService := playlists.NewService(db.Repository)
	itemService := items.NewService(db.Repository, catalogClient)
	searchService := search.NewService(catalogClient)

	router := utils.NewRouter()
	handlers.RegisterRoutes(router,
		handlers.NewPlaylistHandler(playlistService),
		handlers.NewItemsHandler(itemService),
		handlers.NewSearchHandler(searchService))

	server := &http.Server{
		Addr:         settings.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("[main] listening on %s", settings.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("[main] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}
