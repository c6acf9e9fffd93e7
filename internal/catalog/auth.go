package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserSummary is the only account shape this service exposes.
// The password hash never leaves the database layer.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Signup hashes the password with a salted one-way hash and stores the
// account. Email uniqueness is enforced by the signup table's UNIQUE
// constraint, so concurrent signups with the same email cannot both
// succeed; the loser surfaces as ErrEmailTaken.
func (s *Service) Signup(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		"INSERT INTO signup (email, password) VALUES ($1, $2)",
		email, string(hash),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

// Login checks the credentials against the stored hash. Unknown email
// and wrong password both return ErrInvalidCredentials so responses do
// not leak account existence.
func (s *Service) Login(ctx context.Context, email, password string) error {
	var hash string
	err := s.pool.QueryRow(ctx,
		"SELECT password FROM signup WHERE email = $1", email,
	).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// ListUsers returns identifier and email for every account.
func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, email FROM signup ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []UserSummary{}
	for rows.Next() {
		var u UserSummary
		if err := rows.Scan(&u.ID, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
