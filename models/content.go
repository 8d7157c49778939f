package models

// ContentType distinguishes the two catalog namespaces a playlist entry can
// reference.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// ContentTypes lists every valid content type, in the order the catalog
// endpoints are queried.
var ContentTypes = []ContentType{ContentTypeMovie, ContentTypeSeries}

// Valid reports whether t is one of the supported content types.
func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeSeries
}

func (t ContentType) String() string {
	return string(t)
}
