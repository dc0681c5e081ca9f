package types

// ParseResult is the body of a successful POST /parse.
type ParseResult struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// Metadata fields are pointers so that missing values serialize as null.
type Metadata struct {
	Pages       int     `json:"pages"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	CreatedDate *string `json:"createdDate"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
