package repository

import (
	"context"

	"github.com/nobiai/deletewa/internal/models"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO contacts (id, name, phone, profile_picture, is_group)
		VALUES ($1, $2, $3, $4, $5)
	`, contact.ID, contact.Name, contact.Phone, contact.ProfilePicture, contact.IsGroup)
	return err
}

func (r *ContactRepository) List(ctx context.Context, limit int) ([]models.Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, profile_picture, is_group
		FROM contacts
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Phone,
			&contact.ProfilePicture,
			&contact.IsGroup,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}
