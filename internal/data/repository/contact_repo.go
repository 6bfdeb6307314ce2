package repository

import (
	"context"
	"fmt"

	"riget-zoo/internal/data/entity"
	"riget-zoo/pkg/database"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	List(ctx context.Context) ([]*entity.Contact, error)
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		contact.CreatedAt,
	).Scan(&contact.ID)

	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", contact.Email),
		)
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*entity.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list contact messages", zap.Error(err))
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		var contact entity.Contact
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Subject,
			&contact.Message,
			&contact.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, &contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}

	return contacts, nil
}
