package models

// SearchResult is a single hit of GET /api/search.
type SearchResult struct {
	Kind    EntityKind `json:"kind"`
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Snippet string     `json:"snippet"`
}

// SearchResponse is the envelope returned by GET /api/search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Query   string         `json:"query"`
}
