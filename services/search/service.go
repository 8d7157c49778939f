package search

import (
	"context"
	"log"

	"github.com/sourcegraph/conc/pool"

	"github.com/nncsumb/moviePlaylist/models"
	"github.com/nncsumb/moviePlaylist/services/catalog"
)

type searchCatalog interface {
	Search(ctx context.Context, term string, contentType models.ContentType) ([]models.MetaSummary, error)
	FetchMetadata(ctx context.Context, contentIds []string, contentType models.ContentType) ([]models.MetadataRecord, error)
}

var _ searchCatalog = (*catalog.Client)(nil)

// Results groups enriched search hits by content type.
type Results struct {
	Movies []models.MetadataRecord `json:"movies"`
	Series []models.MetadataRecord `json:"series"`
}

// Service searches the catalog for movies and series matching a term and
// enriches the hits with detailed metadata.
type Service struct {
	catalog searchCatalog
}

func NewService(searchCatalog searchCatalog) *Service {
	return &Service{catalog: searchCatalog}
}

// Search runs the movie and series lookups concurrently. Each type costs at
// most two catalog calls: the summary search plus one batched detailed fetch.
func (s *Service) Search(ctx context.Context, term string) (*Results, error) {
	type typeResult struct {
		contentType models.ContentType
		records     []models.MetadataRecord
	}

	lookups := pool.NewWithResults[typeResult]().WithContext(ctx).WithCancelOnError()
	for _, contentType := range models.ContentTypes {
		lookups.Go(func(ctx context.Context) (typeResult, error) {
			summaries, err := s.catalog.Search(ctx, term, contentType)
			if err != nil {
				return typeResult{}, err
			}

			ids := make([]string, 0, len(summaries))
			for _, summary := range summaries {
				ids = append(ids, summary.ID)
			}

			records, err := s.catalog.FetchMetadata(ctx, ids, contentType)
			if err != nil {
				return typeResult{}, err
			}
			return typeResult{contentType: contentType, records: records}, nil
		})
	}

	typeResults, err := lookups.Wait()
	if err != nil {
		return nil, err
	}

	results := &Results{
		Movies: []models.MetadataRecord{},
		Series: []models.MetadataRecord{},
	}
	for _, r := range typeResults {
		records := r.records
		if records == nil {
			records = []models.MetadataRecord{}
		}
		switch r.contentType {
		case models.ContentTypeMovie:
			results.Movies = records
		case models.ContentTypeSeries:
			results.Series = records
		}
	}

	log.Printf("[search] term=%q movies=%d series=%d", term, len(results.Movies), len(results.Series))
	return results, nil
}
