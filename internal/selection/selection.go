// Package selection implements the pure filtering, searching and sampling
// logic used to pick which words to show. It operates on a snapshot of the
// owner's words and never touches storage.
package selection

import (
	"errors"
	"math/rand"
	"strings"

	"wortschatz/internal/domain"
)

// ErrInvalidQuantity is returned by Sample when the requested count is not in [1, len(words)]
var ErrInvalidQuantity = errors.New("requested quantity out of range")

// Filter returns the words matching both the review-state and the topic
// predicate. The two predicates AND together.
func Filter(words []domain.Word, primary domain.PrimaryFilter, secondary domain.SecondaryFilter) []domain.Word {
	out := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if !matchesPrimary(w, primary) || !matchesSecondary(w, secondary) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Sample returns n words drawn uniformly without replacement. The input
// slice is not modified; a Fisher-Yates shuffle of a copy keeps the
// distribution uniform over all n-subsets.
func Sample(words []domain.Word, n int) ([]domain.Word, error) {
	if n <= 0 || n > len(words) {
		return nil, ErrInvalidQuantity
	}

	shuffled := make([]domain.Word, len(words))
	copy(shuffled, words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n], nil
}

// Search returns the words where query is a case-insensitive substring of
// either language field. An empty query matches nothing.
func Search(words []domain.Word, query string) []domain.Word {
	out := make([]domain.Word, 0)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return out
	}

	for _, w := range words {
		if strings.Contains(strings.ToLower(w.MotherLanguage), query) ||
			strings.Contains(strings.ToLower(w.German), query) {
			out = append(out, w)
		}
	}
	return out
}

func matchesPrimary(w domain.Word, primary domain.PrimaryFilter) bool {
	switch primary {
	case domain.PrimaryReview:
		return w.Review
	case domain.PrimaryUnfamiliar:
		return !w.Review
	}
	return true
}

func matchesSecondary(w domain.Word, secondary domain.SecondaryFilter) bool {
	switch secondary {
	case domain.SecondaryTech:
		return w.Category == domain.CategoryTech
	case domain.SecondaryDaily:
		return w.Category == domain.CategoryDaily
	}
	return true
}
