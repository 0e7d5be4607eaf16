package store

import "github.com/google/uuid"

// Session represents an authenticated browser session held server-side.
type Session struct {
	ID     string    `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`

	// Flash is a one-shot message consumed on the next page render.
	Flash string `json:"flash"`
}
