package service

import (
	"errors"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"
	"wortschatz/internal/selection"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// AddWord stores a new word pair for the owner. The duplicate check is
// best-effort: a concurrent add of the same pair may slip through, which
// is acceptable for a single-user-interactive tool.
func (s *WordService) AddWord(owner, motherLanguage, german, category string) (*domain.Word, error) {
	if motherLanguage == "" || german == "" || category == "" {
		return nil, ErrMissingField
	}

	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	_, err = s.wordRepo.FindByPair(owner, motherLanguage, german)
	if err == nil {
		return nil, ErrDuplicateWord
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return s.wordRepo.SaveWord(owner, motherLanguage, german, cat)
}

// DeleteWord removes a word. A word owned by another user reports
// ErrWordNotFound, same as a missing one.
func (s *WordService) DeleteWord(owner string, id int64) error {
	err := s.wordRepo.DeleteWord(owner, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWordNotFound
	}
	return err
}

// SetReview sets the review flag of a word. Setting the current value
// again is a no-op success.
func (s *WordService) SetReview(owner string, id int64, review bool) (*domain.Word, error) {
	word, err := s.wordRepo.UpdateReview(owner, id, review)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWordNotFound
	}
	return word, err
}

// UpdateCategory changes the topic of a word
func (s *WordService) UpdateCategory(owner string, id int64, category string) (*domain.Word, error) {
	cat, err := domain.ParseCategory(category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	word, err := s.wordRepo.UpdateCategory(owner, id, cat)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrWordNotFound
	}
	return word, err
}

// ListWords returns all words owned by the user
func (s *WordService) ListWords(owner string) ([]domain.Word, error) {
	words, err := s.wordRepo.ListByUser(owner)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}

// SearchWords matches the query against both language fields of the
// owner's words. An empty query returns an empty result.
func (s *WordService) SearchWords(owner, query string) ([]domain.Word, error) {
	words, err := s.wordRepo.ListByUser(owner)
	if err != nil {
		return nil, err
	}
	return selection.Search(words, query), nil
}

// RandomWords returns n words drawn uniformly from the owner's words
// matching the given filters
func (s *WordService) RandomWords(owner, primary, secondary string, n int) ([]domain.Word, error) {
	p, err := domain.ParsePrimaryFilter(primary)
	if err != nil {
		return nil, ErrInvalidFilter
	}
	sec, err := domain.ParseSecondaryFilter(secondary)
	if err != nil {
		return nil, ErrInvalidFilter
	}

	words, err := s.wordRepo.ListByUser(owner)
	if err != nil {
		return nil, err
	}

	return selection.Sample(selection.Filter(words, p, sec), n)
}
