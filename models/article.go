package models

import "time"

type Article struct {
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	URL         string    `bson:"url,omitempty" json:"url,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt"`
}

// VolunteerMessage is a contact-form submission. It is relayed by mail
// and never persisted.
type VolunteerMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
