package dto

// ErrorResponse is the error body of the API:
// type "validation" carries a per-field error map, type "error" a domain
// failure with its status, type "internal" a withheld server error.
type ErrorResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Details any               `json:"details,omitempty"`
}

// PageMeta pagination metadata in list responses.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
