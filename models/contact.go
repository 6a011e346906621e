package models

import "time"

// ContactMessage is one submission of the agency site's contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// ContactMessage model.
func (m ContactMessage) TableName() string {
	return "contact_messages"
}
