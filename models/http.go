package models

// LoginResponse is the body returned by the login endpoint. The token is also
// mirrored in the Authorization response header.
type LoginResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}

// ErrorResponse is the JSON error body returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
