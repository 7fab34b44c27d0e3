package repository

import (
	"errors"

	"wortschatz/internal/domain"
)

// Sentinel errors returned by repository implementations
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository defines user data operations
type UserRepository interface {
	CreateUser(username, passwordHash string) (*domain.User, error)
	GetByUsername(username string) (*domain.User, error)
}

// WordRepository defines word data operations.
// Every owner-scoped method filters by username; a mismatched owner is
// indistinguishable from a missing record (ErrNotFound).
type WordRepository interface {
	SaveWord(username, motherLanguage, german string, category domain.Category) (*domain.Word, error)
	FindByPair(username, motherLanguage, german string) (*domain.Word, error)
	ListByUser(username string) ([]domain.Word, error)
	UpdateCategory(username string, id int64, category domain.Category) (*domain.Word, error)
	UpdateReview(username string, id int64, review bool) (*domain.Word, error)
	DeleteWord(username string, id int64) error
}
