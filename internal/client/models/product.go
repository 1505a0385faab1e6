// Package models defines the data transfer objects exchanged with the
// store API. All types are read-only snapshots: the client never mutates
// them after decoding.
package models

// Product is a single catalog item, uniquely identified by ID.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Brand       string   `json:"brand"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

// ProductPage is one slice of the server-side catalog.
//
// Total is the size of the whole collection as reported by the server at
// the time of this fetch; it is a stopping bound for pagination, not a
// schema guarantee, and may change between calls.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}
