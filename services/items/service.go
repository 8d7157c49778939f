package items

import (
	"context"
	"fmt"
	"log"

	"github.com/sourcegraph/conc/pool"

	"github.com/nncsumb/moviePlaylist/internal/database"
	"github.com/nncsumb/moviePlaylist/models"
	"github.com/nncsumb/moviePlaylist/services/catalog"
)

type itemStore interface {
	ListPlaylistItems(ctx context.Context, playlistID int64) ([]models.PlaylistItem, error)
}

type metadataCatalog interface {
	FetchMetadata(ctx context.Context, contentIds []string, contentType models.ContentType) ([]models.MetadataRecord, error)
}

var _ itemStore = (*database.Repository)(nil)
var _ metadataCatalog = (*catalog.Client)(nil)

// Service loads a playlist's items, enriches them with catalog metadata and
// applies the optional type/genre filters.
type Service struct {
	store   itemStore
	catalog metadataCatalog
}

// NewService wires the item store and the metadata catalog into the
// enrichment pipeline.
func NewService(store itemStore, metadataCatalog metadataCatalog) *Service {
	return &Service{
		store:   store,
		catalog: metadataCatalog,
	}
}

type typeMetadata struct {
	contentType models.ContentType
	records     []models.MetadataRecord
}

// ListEnriched returns the playlist's items with metadata attached, filtered
// by the optional type and genre values. A catalog failure for any content
// type aborts the whole call; partial enrichment is never returned.
func (s *Service) ListEnriched(ctx context.Context, playlistID int64, typeFilter, genreFilter string) ([]models.EnrichedItem, error) {
	playlistItems, err := s.store.ListPlaylistItems(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("load playlist items: %w", err)
	}
	if len(playlistItems) == 0 {
		return []models.EnrichedItem{}, nil
	}

	idsByType := make(map[models.ContentType][]string)
	for _, item := range playlistItems {
		idsByType[item.Type] = append(idsByType[item.Type], item.ContentID)
	}

	// One batched catalog lookup per distinct content type, issued
	// concurrently. Sequential execution would be equally correct.
	fetches := pool.NewWithResults[typeMetadata]().WithContext(ctx).WithCancelOnError()
	for contentType, contentIds := range idsByType {
		fetches.Go(func(ctx context.Context) (typeMetadata, error) {
			records, err := s.catalog.FetchMetadata(ctx, contentIds, contentType)
			if err != nil {
				return typeMetadata{}, err
			}
			return typeMetadata{contentType: contentType, records: records}, nil
		})
	}

	results, err := fetches.Wait()
	if err != nil {
		return nil, err
	}

	metadataByType := make(map[models.ContentType][]models.MetadataRecord, len(results))
	for _, result := range results {
		metadataByType[result.contentType] = result.records
	}

	enriched := joinMetadata(playlistItems, metadataByType)
	filtered := filterItems(enriched, typeFilter, genreFilter)

	log.Printf("[items] playlist=%d items=%d enriched=%d returned=%d type=%q genre=%q",
		playlistID, len(playlistItems), len(enriched), len(filtered), typeFilter, genreFilter)

	return filtered, nil
}
