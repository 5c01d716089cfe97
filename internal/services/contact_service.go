package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/nobiai/deletewa/internal/models"
)

type contactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context, limit int) ([]models.Contact, error)
}

type ContactService struct {
	contactRepo contactStore
}

func NewContactService(contactRepo contactStore) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

type CreateContactInput struct {
	Name           string  `json:"name"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
	IsGroup        bool    `json:"is_group"`
}

func (s *ContactService) CreateContact(ctx context.Context, input CreateContactInput) (*models.Contact, error) {
	if input.Name == "" {
		return nil, ErrInvalidInput
	}

	contact := &models.Contact{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Phone:          input.Phone,
		ProfilePicture: input.ProfilePicture,
		IsGroup:        input.IsGroup,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.contactRepo.List(ctx, listResultCap)
}
