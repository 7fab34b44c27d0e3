package domain

import (
	"fmt"
	"time"
)

// Category is the topic a word belongs to
type Category string

const (
	CategoryTech  Category = "tech"
	CategoryDaily Category = "daily"
)

// ParseCategory validates a raw category value
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTech, CategoryDaily:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Word represents a word-translation pair owned by a single user.
// Username is purely a scoping key; every read and write is filtered by it.
type Word struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	MotherLanguage string    `json:"motherLanguage"`
	German         string    `json:"german"`
	Category       Category  `json:"categoryAdd"`
	Review         bool      `json:"review"`
	CreatedAt      time.Time `json:"createdAt"`
}
