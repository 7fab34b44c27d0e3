package postgres

import (
	"database/sql"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"
)

const wordColumns = "id, username, mother_language, german, category, review, created_at"

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord inserts a word pair and returns the stored record
func (r *WordRepo) SaveWord(username, motherLanguage, german string, category domain.Category) (*domain.Word, error) {
	query := `
		INSERT INTO words (username, mother_language, german, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + wordColumns
	row := r.db.QueryRow(query, username, motherLanguage, german, category)
	return scanWord(row)
}

// FindByPair looks up a word by its owner and exact language pair
func (r *WordRepo) FindByPair(username, motherLanguage, german string) (*domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE username = $1 AND mother_language = $2 AND german = $3
	`
	row := r.db.QueryRow(query, username, motherLanguage, german)
	return scanWord(row)
}

// ListByUser returns all words owned by the user, oldest first
func (r *WordRepo) ListByUser(username string) ([]domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words
		WHERE username = $1
		ORDER BY id
	`
	rows, err := r.db.Query(query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Username, &w.MotherLanguage, &w.German, &w.Category, &w.Review, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// UpdateCategory changes the topic of a word owned by the user
func (r *WordRepo) UpdateCategory(username string, id int64, category domain.Category) (*domain.Word, error) {
	query := `
		UPDATE words
		SET category = $1
		WHERE id = $2 AND username = $3
		RETURNING ` + wordColumns
	row := r.db.QueryRow(query, category, id, username)
	return scanWord(row)
}

// UpdateReview sets the review flag of a word owned by the user
func (r *WordRepo) UpdateReview(username string, id int64, review bool) (*domain.Word, error) {
	query := `
		UPDATE words
		SET review = $1
		WHERE id = $2 AND username = $3
		RETURNING ` + wordColumns
	row := r.db.QueryRow(query, review, id, username)
	return scanWord(row)
}

// DeleteWord removes a word owned by the user
func (r *WordRepo) DeleteWord(username string, id int64) error {
	query := `
		DELETE FROM words
		WHERE id = $1 AND username = $2
	`
	res, err := r.db.Exec(query, id, username)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanWord(row *sql.Row) (*domain.Word, error) {
	var w domain.Word
	err := row.Scan(&w.ID, &w.Username, &w.MotherLanguage, &w.German, &w.Category, &w.Review, &w.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}
