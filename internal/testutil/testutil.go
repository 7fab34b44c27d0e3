package testutil

import (
	"time"

	"wortschatz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// fixedTime keeps fixtures deterministic so repeated fixture calls
// compare equal in tests.
var fixedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewTestUser creates a test user
func NewTestUser(id int64, username, passwordHash string) *domain.User {
	return &domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    fixedTime,
	}
}

// NewTestWord creates a test word
func NewTestWord(id int64, username, motherLanguage, german string, category domain.Category, review bool) *domain.Word {
	return &domain.Word{
		ID:             id,
		Username:       username,
		MotherLanguage: motherLanguage,
		German:         german,
		Category:       category,
		Review:         review,
		CreatedAt:      fixedTime,
	}
}

// Words is a convenience for building word slices from fixtures
func Words(words ...*domain.Word) []domain.Word {
	out := make([]domain.Word, 0, len(words))
	for _, w := range words {
		out = append(out, *w)
	}
	return out
}
