package shelf

// Item is a catalog entry in an AudioBookShelf library. Only the fields
// this tool inspects are decoded.
type Item struct {
	ID      string `json:"id"`
	AddedAt int64  `json:"addedAt"` // unix milliseconds
	Media   Media  `json:"media"`
}

// Media wraps an item's metadata.
type Media struct {
	Metadata Metadata `json:"metadata"`
}

// Metadata carries the fields used for matching.
type Metadata struct {
	Title      string `json:"title"`
	AuthorName string `json:"authorName"`
	ASIN       string `json:"asin"`
}

// itemsResponse is the paginated items listing; results is the only field
// the pipeline reads.
type itemsResponse struct {
	Results []Item `json:"results"`
}

// matchRequest is the body for the force-match endpoint. AudioBookShelf
// expects overrideDefaults as the string "true", not a boolean.
type matchRequest struct {
	Author           string `json:"author"`
	Provider         string `json:"provider"`
	ASIN             string `json:"asin"`
	Title            string `json:"title"`
	OverrideDefaults string `json:"overrideDefaults"`
}
