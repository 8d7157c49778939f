package items

import (
	"slices"

	"github.com/nncsumb/moviePlaylist/models"
)

// TypeFilterBoth is the sentinel type filter meaning "no type restriction".
const TypeFilterBoth = "both"

// filterItems applies the optional type and genre predicates. An empty filter
// value means no restriction; both filters compose with logical AND. The genre
// check is a case-sensitive membership test on the metadata genres list, so an
// active genre filter drops items without metadata.
func filterItems(enriched []models.EnrichedItem, typeFilter, genreFilter string) []models.EnrichedItem {
	filtered := enriched

	if typeFilter != "" && typeFilter != TypeFilterBoth {
		kept := make([]models.EnrichedItem, 0, len(filtered))
		for _, item := range filtered {
			if string(item.Type) == typeFilter {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}

	if genreFilter != "" {
		kept := make([]models.EnrichedItem, 0, len(filtered))
		for _, item := range filtered {
			if item.Metadata != nil && slices.Contains(item.Metadata.Genres, genreFilter) {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}

	return filtered
}
