package domain

import "fmt"

// Rating is a single review left on an app: a star count plus free text.
// Ratings are values; once created they are not changed.
// The type does not range-check Stars, rating sources are expected to produce 1-5.
type Rating struct {
	stars   int
	author  string
	comment string
}

// NewRating creates a rating.
func NewRating(stars int, author, comment string) Rating {
	return Rating{stars: stars, author: author, comment: comment}
}

// Stars returns the number of stars awarded.
func (r Rating) Stars() int {
	return r.stars
}

// Author returns who left the rating.
func (r Rating) Author() string {
	return r.author
}

// Comment returns the free-text comment.
func (r Rating) Comment() string {
	return r.comment
}

func (r Rating) String() string {
	return fmt.Sprintf("%d stars by %s: %s", r.stars, r.author, r.comment)
}
