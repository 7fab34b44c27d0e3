package postgres

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"testing"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func wordRows(rows ...[]driver.Value) *sqlmock.Rows {
	out := sqlmock.NewRows([]string{"id", "username", "mother_language", "german", "category", "review", "created_at"})
	for _, r := range rows {
		out.AddRow(r...)
	}
	return out
}

func wordRow(id int64, username, mother, german, category string, review bool) []driver.Value {
	return []driver.Value{id, username, mother, german, category, review, time.Now()}
}

func TestWordRepo_SaveWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("INSERT INTO words").
		WithArgs("alice_99", "Hund", "dog", domain.CategoryTech).
		WillReturnRows(wordRows(wordRow(1, "alice_99", "Hund", "dog", "tech", false)))

	word, err := repo.SaveWord("alice_99", "Hund", "dog", domain.CategoryTech)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), word.ID)
	assert.Equal(t, "alice_99", word.Username)
	assert.False(t, word.Review)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_FindByPair(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
	}{
		{
			name:     "pair found",
			mockRows: wordRows(wordRow(1, "alice_99", "Hund", "dog", "tech", false)),
		},
		{
			name:          "pair missing",
			mockError:     sql.ErrNoRows,
			expectedError: repository.ErrNotFound,
		},
		{
			name:      "database error",
			mockError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			query := "SELECT (.+) FROM words WHERE username = \\$1 AND mother_language = \\$2 AND german = \\$3"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs("alice_99", "Hund", "dog").WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs("alice_99", "Hund", "dog").WillReturnRows(tt.mockRows)
			}

			word, err := repo.FindByPair("alice_99", "Hund", "dog")

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, word)
			case tt.mockError != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "Hund", word.MotherLanguage)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_ListByUser(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		expectedCount int
	}{
		{
			name: "multiple words",
			mockRows: wordRows(
				wordRow(1, "alice_99", "Hund", "dog", "daily", false),
				wordRow(2, "alice_99", "Rechner", "computer", "tech", true),
			),
			expectedCount: 2,
		},
		{
			name:          "no words",
			mockRows:      wordRows(),
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectQuery("SELECT (.+) FROM words WHERE username = \\$1 ORDER BY id").
				WithArgs("alice_99").
				WillReturnRows(tt.mockRows)

			words, err := repo.ListByUser("alice_99")

			assert.NoError(t, err)
			assert.Len(t, words, tt.expectedCount)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_UpdateCategory(t *testing.T) {
	t.Run("owned word updated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewWordRepo(db)

		mock.ExpectQuery("UPDATE words SET category = \\$1 WHERE id = \\$2 AND username = \\$3").
			WithArgs(domain.CategoryDaily, int64(1), "alice_99").
			WillReturnRows(wordRows(wordRow(1, "alice_99", "Hund", "dog", "daily", false)))

		word, err := repo.UpdateCategory("alice_99", 1, domain.CategoryDaily)

		assert.NoError(t, err)
		assert.Equal(t, domain.CategoryDaily, word.Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("word of another user is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewWordRepo(db)

		mock.ExpectQuery("UPDATE words SET category").
			WithArgs(domain.CategoryDaily, int64(1), "bob_42").
			WillReturnError(sql.ErrNoRows)

		_, err = repo.UpdateCategory("bob_42", 1, domain.CategoryDaily)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWordRepo_UpdateReview(t *testing.T) {
	t.Run("flag set", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewWordRepo(db)

		mock.ExpectQuery("UPDATE words SET review = \\$1 WHERE id = \\$2 AND username = \\$3").
			WithArgs(true, int64(1), "alice_99").
			WillReturnRows(wordRows(wordRow(1, "alice_99", "Hund", "dog", "tech", true)))

		word, err := repo.UpdateReview("alice_99", 1, true)

		assert.NoError(t, err)
		assert.True(t, word.Review)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing word", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewWordRepo(db)

		mock.ExpectQuery("UPDATE words SET review").
			WithArgs(true, int64(99), "alice_99").
			WillReturnError(sql.ErrNoRows)

		_, err = repo.UpdateReview("alice_99", 99, true)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWordRepo_DeleteWord(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		mockError     error
		expectedError error
	}{
		{
			name:         "owned word deleted",
			rowsAffected: 1,
		},
		{
			name:          "missing or foreign word",
			rowsAffected:  0,
			expectedError: repository.ErrNotFound,
		},
		{
			name:      "database error",
			mockError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			exec := mock.ExpectExec("DELETE FROM words WHERE id = \\$1 AND username = \\$2").
				WithArgs(int64(1), "alice_99")
			if tt.mockError != nil {
				exec.WillReturnError(tt.mockError)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			err = repo.DeleteWord("alice_99", 1)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.mockError != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
