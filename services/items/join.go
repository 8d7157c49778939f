package items

import "github.com/nncsumb/moviePlaylist/models"

// joinMetadata merges playlist items with the metadata fetched for their
// content types. Every input item yields exactly one enriched item; when the
// catalog returned no record for an item's content id the metadata field stays
// nil. Records are indexed by imdb_id per type, first record wins.
func joinMetadata(playlistItems []models.PlaylistItem, metadataByType map[models.ContentType][]models.MetadataRecord) []models.EnrichedItem {
	index := make(map[models.ContentType]map[string]*models.MetadataRecord, len(metadataByType))
	for contentType, records := range metadataByType {
		byID := make(map[string]*models.MetadataRecord, len(records))
		for i := range records {
			record := &records[i]
			if _, seen := byID[record.ImdbID]; !seen {
				byID[record.ImdbID] = record
			}
		}
		index[contentType] = byID
	}

	enriched := make([]models.EnrichedItem, 0, len(playlistItems))
	for _, item := range playlistItems {
		enriched = append(enriched, models.EnrichedItem{
			PlaylistItem: item,
			Metadata:     index[item.Type][item.ContentID],
		})
	}
	return enriched
}
