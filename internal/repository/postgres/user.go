package postgres

import (
	"database/sql"
	"errors"

	"wortschatz/internal/domain"
	"wortschatz/internal/repository"

	"github.com/lib/pq"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new user and returns the stored record.
// A taken username maps to repository.ErrDuplicate.
func (r *UserRepo) CreateUser(username, passwordHash string) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`
	err := r.db.QueryRow(query, username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}

	return &u, nil
}

// GetByUsername returns the user with the given username
func (r *UserRepo) GetByUsername(username string) (*domain.User, error) {
	var u domain.User
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	err := r.db.QueryRow(query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
