package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nncsumb/moviePlaylist/models"
	"github.com/nncsumb/moviePlaylist/services/catalog"
)

func TestFetchMetadataBatchesIdsInOneRequest(t *testing.T) {
	var requests int32
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"metasDetailed":[{"imdb_id":"tt0111161","name":"The Shawshank Redemption","genres":["Drama"]}]}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 5*time.Second)
	records, err := client.FetchMetadata(context.Background(), []string{"tt0111161", "tt0068646"}, models.ContentTypeMovie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if atomic.LoadInt32(&requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", requests)
	}
	wantPath := "/catalog/movie/last-videos/lastVideosIds=tt0111161,tt0068646.json"
	if gotPath != wantPath {
		t.Fatalf("expected path %q, got %q", wantPath, gotPath)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ImdbID != "tt0111161" || records[0].Name != "The Shawshank Redemption" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if len(records[0].Genres) != 1 || records[0].Genres[0] != "Drama" {
		t.Fatalf("expected genres decoded, got %v", records[0].Genres)
	}
}

func TestFetchMetadataEmptyIdsSkipsNetwork(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 5*time.Second)
	records, err := client.FetchMetadata(context.Background(), nil, models.ContentTypeMovie)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d records", len(records))
	}
	if atomic.LoadInt32(&requests) != 0 {
		t.Fatalf("expected zero requests, got %d", requests)
	}
}

func TestFetchMetadataServerErrorFailsWithoutRetry(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 5*time.Second)
	_, err := client.FetchMetadata(context.Background(), []string{"tt0111161"}, models.ContentTypeMovie)
	if err == nil {
		t.Fatal("expected error on 503 response")
	}
	if !errors.Is(err, catalog.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
	if atomic.LoadInt32(&requests) != 1 {
		t.Fatalf("expected a non-success status not to be retried, got %d requests", requests)
	}
}

func TestFetchMetadataMissingRecordsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"metasDetailed":[]}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 5*time.Second)
	records, err := client.FetchMetadata(context.Background(), []string{"tt0000000"}, models.ContentTypeSeries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestSearchDecodesSummaries(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"metas":[{"id":"tt0903747","name":"Breaking Bad"},{"id":"tt0944947","name":"Game of Thrones"}]}`))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 5*time.Second)
	summaries, err := client.Search(context.Background(), "b", models.ContentTypeSeries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/catalog/series/top/search=b.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != "tt0903747" {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
}

func TestSearchServerErrorIsCatalogUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, 5*time.Second)
	if _, err := client.Search(context.Background(), "term", models.ContentTypeMovie); !errors.Is(err, catalog.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
