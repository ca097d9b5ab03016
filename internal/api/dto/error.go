package dto

// Error is the body of every non-2xx response
type Error struct {
	Error string `json:"error" example:"Could not validate credentials"`
}
