package items

import (
	"testing"

	"github.com/nncsumb/moviePlaylist/models"
)

func TestJoinMetadataMatchesByContentID(t *testing.T) {
	playlistItems := []models.PlaylistItem{
		{ID: 1, PlaylistID: 7, ContentID: "tt0111161", Type: models.ContentTypeMovie},
		{ID: 2, PlaylistID: 7, ContentID: "tt0903747", Type: models.ContentTypeSeries},
	}
	metadataByType := map[models.ContentType][]models.MetadataRecord{
		models.ContentTypeMovie: {
			{ImdbID: "tt0111161", Name: "The Shawshank Redemption", Genres: []string{"Drama"}},
		},
		models.ContentTypeSeries: {
			{ImdbID: "tt0903747", Name: "Breaking Bad"},
		},
	}

	enriched := joinMetadata(playlistItems, metadataByType)
	if len(enriched) != 2 {
		t.Fatalf("expected 2 enriched items, got %d", len(enriched))
	}
	if enriched[0].Metadata == nil || enriched[0].Metadata.Name != "The Shawshank Redemption" {
		t.Fatalf("expected movie metadata on first item, got %+v", enriched[0].Metadata)
	}
	if enriched[1].Metadata == nil || enriched[1].Metadata.Name != "Breaking Bad" {
		t.Fatalf("expected series metadata on second item, got %+v", enriched[1].Metadata)
	}
}

func TestJoinMetadataKeepsUnmatchedItems(t *testing.T) {
	playlistItems := []models.PlaylistItem{
		{ID: 1, ContentID: "tt0000001", Type: models.ContentTypeMovie},
		{ID: 2, ContentID: "tt0000002", Type: models.ContentTypeMovie},
	}
	metadataByType := map[models.ContentType][]models.MetadataRecord{
		models.ContentTypeMovie: {{ImdbID: "tt0000002", Name: "Known"}},
	}

	enriched := joinMetadata(playlistItems, metadataByType)
	if len(enriched) != len(playlistItems) {
		t.Fatalf("expected item count preserved, got %d of %d", len(enriched), len(playlistItems))
	}
	if enriched[0].Metadata != nil {
		t.Fatalf("expected nil metadata for unmatched item, got %+v", enriched[0].Metadata)
	}
	if enriched[1].Metadata == nil {
		t.Fatal("expected metadata for matched item")
	}
}

func TestJoinMetadataEmptyMetadata(t *testing.T) {
	playlistItems := []models.PlaylistItem{
		{ID: 1, ContentID: "tt0000001", Type: models.ContentTypeMovie},
	}

	enriched := joinMetadata(playlistItems, nil)
	if len(enriched) != 1 {
		t.Fatalf("expected 1 enriched item, got %d", len(enriched))
	}
	if enriched[0].Metadata != nil {
		t.Fatal("expected nil metadata when no metadata was fetched")
	}
}

func TestJoinMetadataFirstRecordWins(t *testing.T) {
	playlistItems := []models.PlaylistItem{
		{ID: 1, ContentID: "tt0000001", Type: models.ContentTypeMovie},
	}
	metadataByType := map[models.ContentType][]models.MetadataRecord{
		models.ContentTypeMovie: {
			{ImdbID: "tt0000001", Name: "First"},
			{ImdbID: "tt0000001", Name: "Second"},
		},
	}

	enriched := joinMetadata(playlistItems, metadataByType)
	if enriched[0].Metadata.Name != "First" {
		t.Fatalf("expected first record to win, got %q", enriched[0].Metadata.Name)
	}
}
