package models

// User is the mock account attached to a session. There is no real
// credential verification behind it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
