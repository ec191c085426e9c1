/*
Package book persists the catalog's book records.
*/
package book

import "time"

// Book is a catalog record.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	PublishedYear int       `json:"publishedYear"`
	CoverKey      string    `json:"coverKey,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
