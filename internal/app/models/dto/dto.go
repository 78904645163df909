// Package dto holds the boundary request/response shapes. Inbound payloads
// accept both camelCase and snake_case spellings for the same logical field;
// Normalize resolves them into one canonical draft, preferring camelCase when
// both are present. The dual spelling never crosses into the domain model.
package dto

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

func pickString(camel, snake *string) string {
	if camel != nil {
		return *camel
	}
	if snake != nil {
		return *snake
	}
	return ""
}

func pickStringPtr(camel, snake *string) *string {
	if camel != nil {
		return camel
	}
	return snake
}

func pickInt(camel, snake *int) int {
	if camel != nil {
		return *camel
	}
	if snake != nil {
		return *snake
	}
	return 0
}

func pickInt64Ptr(camel, snake *int64) *int64 {
	if camel != nil {
		return camel
	}
	return snake
}

func pickFloat(camel, snake *float64) float64 {
	if camel != nil {
		return *camel
	}
	if snake != nil {
		return *snake
	}
	return 0
}
