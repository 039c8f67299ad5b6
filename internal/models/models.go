package models

// Reference is one of the sources summarized on the about & methods page
type Reference struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	UsedFor string `json:"used_for"`
}

// AboutResponse describes the methods behind the dashboard
type AboutResponse struct {
	Name       string      `json:"name"`
	Version    string      `json:"version"`
	Methods    []string    `json:"methods"`
	References []Reference `json:"references"`
}

// ListResponse wraps collection responses
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// NewListResponse builds a ListResponse, never encoding a null array
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Count: len(items)}
}
