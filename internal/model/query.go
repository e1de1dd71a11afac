package model

import "encoding/json"

// MessageRequest carries one inbound user utterance
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SearchRequest represents a direct filter search request.
// Filters are kept raw so they go through the same normalization as generated plans.
type SearchRequest struct {
	Filters json.RawMessage `json:"filters,omitempty"`
	Limit   int             `json:"limit"`
}

// SearchResponse represents a ranked search result
type SearchResponse struct {
	Results []Property `json:"results"`
	Total   int        `json:"total"`
	Filters Filters    `json:"filters"`
	Took    int64      `json:"took_ms"`
}

// ReloadResponse reports the outcome of a catalog reload
type ReloadResponse struct {
	Records int   `json:"records"`
	Took    int64 `json:"took_ms"`
}

// ReplyKind tells the caller how to present an assistant reply
type ReplyKind string

const (
	ReplyListings      ReplyKind = "listings"
	ReplyListing       ReplyKind = "listing"
	ReplyPhotos        ReplyKind = "photos"
	ReplyNoResults     ReplyKind = "no_results"
	ReplyNotFound      ReplyKind = "not_found"
	ReplyClarification ReplyKind = "clarification"
	ReplyUnsupported   ReplyKind = "unsupported"
)

// Reply is the structured answer to one utterance; formatting and delivery happen elsewhere
type Reply struct {
	Kind       ReplyKind  `json:"kind"`
	Plan       *Plan      `json:"plan"`
	Listings   []Property `json:"listings,omitempty"`
	Photos     []string   `json:"photos,omitempty"`
	Questions  []string   `json:"questions,omitempty"`
	NeedFields []string   `json:"need_fields,omitempty"`
	Took       int64      `json:"took_ms"`
}
