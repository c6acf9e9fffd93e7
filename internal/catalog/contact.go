package catalog

import (
	"context"
	"fmt"
)

// ContactSubmission is one contact-form entry. Submissions are insert
// only and listed newest-first.
type ContactSubmission struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateContact stores a contact-form submission.
// Field presence is validated at the transport boundary.
func (s *Service) CreateContact(ctx context.Context, sub ContactSubmission) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO contact (name, email, subject, message) VALUES ($1, $2, $3, $4)",
		sub.Name, sub.Email, sub.Subject, sub.Message,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// ListContacts returns all submissions in reverse creation order.
func (s *Service) ListContacts(ctx context.Context) ([]ContactSubmission, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, email, subject, message FROM contact ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	subs := []ContactSubmission{}
	for rows.Next() {
		var sub ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}
