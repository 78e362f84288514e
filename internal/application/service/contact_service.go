package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/pagination"
)

// ContactService handles contact records of links
type ContactService struct {
	contactRepo repository.ContactRepository
	linkRepo    repository.LinkRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository, linkRepo repository.LinkRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		linkRepo:    linkRepo,
	}
}

// CreateContactInput represents the create contact input
type CreateContactInput struct {
	LinkID uuid.UUID
	ContactInput
}

// UpdateContactInput represents a full or partial contact update
type UpdateContactInput struct {
	ID       uuid.UUID
	LinkID   *uuid.UUID
	Email    *string
	Country  *string
	City     *string
	Street   *string
	NumHouse *string
}

// CreateContact attaches a new contact to an existing link.
func (s *ContactService) CreateContact(ctx context.Context, input *CreateContactInput) (*entity.Contact, error) {
	if err := s.checkLink(ctx, input.LinkID); err != nil {
		return nil, err
	}
	contact := &entity.Contact{
		LinkID:   input.LinkID,
		Email:    input.Email,
		Country:  input.Country,
		City:     input.City,
		Street:   input.Street,
		NumHouse: input.NumHouse,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetContact retrieves a contact by ID
func (s *ContactService) GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NewNotFoundError("Contact")
	}
	return contact, nil
}

// ListContacts lists contacts with pagination
func (s *ContactService) ListContacts(ctx context.Context, params *repository.ContactFilterParams) ([]entity.Contact, int64, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	return s.contactRepo.List(ctx, params)
}

// UpdateContact updates a contact
func (s *ContactService) UpdateContact(ctx context.Context, input *UpdateContactInput) (*entity.Contact, error) {
	contact, err := s.GetContact(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.LinkID != nil && *input.LinkID != contact.LinkID {
		if err := s.checkLink(ctx, *input.LinkID); err != nil {
			return nil, err
		}
		contact.LinkID = *input.LinkID
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Country != nil {
		contact.Country = *input.Country
	}
	if input.City != nil {
		contact.City = *input.City
	}
	if input.Street != nil {
		contact.Street = *input.Street
	}
	if input.NumHouse != nil {
		contact.NumHouse = *input.NumHouse
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteContact deletes a contact
func (s *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetContact(ctx, id); err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, id)
}

func (s *ContactService) checkLink(ctx context.Context, id uuid.UUID) error {
	found, err := s.linkRepo.Lookup()(ctx, id)
	if err != nil {
		return err
	}
	if found == nil {
		return apperror.NewFieldError("link", InvalidPKMessage(id))
	}
	return nil
}
