package models

import "time"

// Comment is a user-submitted note about a location.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) RecordID() string { return c.ID }

// SearchFields covers the comment text and its author.
func (c Comment) SearchFields() []string {
	return []string{c.Text, c.Author}
}

func (c Comment) Label() string { return c.Text }

// Profile describes the logged-in operator as returned by the backend.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
