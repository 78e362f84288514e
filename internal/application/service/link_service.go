package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/domain/hierarchy"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/pagination"
	"github.com/sangkips/tradenet-api/pkg/utils"
)

// MsgLinkNameTaken is reported on "name" when another link already uses it.
const MsgLinkNameTaken = "Торговое звено с таким Название уже существует."

// InvalidPKMessage is the field error for an id that matches no row.
func InvalidPKMessage(id any) string {
	return fmt.Sprintf("Invalid pk \"%v\" - object does not exist.", id)
}

// LinkService handles trading network links
type LinkService struct {
	linkRepo    repository.LinkRepository
	productRepo repository.ProductRepository
}

// NewLinkService creates a new link service
func NewLinkService(linkRepo repository.LinkRepository, productRepo repository.ProductRepository) *LinkService {
	return &LinkService{
		linkRepo:    linkRepo,
		productRepo: productRepo,
	}
}

// ContactInput is one contact record submitted with a link.
type ContactInput struct {
	Email    string
	Country  string
	City     string
	Street   string
	NumHouse string
}

// CreateLinkInput represents the create link input
type CreateLinkInput struct {
	StatusLink enum.LinkStatus
	SupplierID *uuid.UUID
	Name       string
	ProductIDs []uuid.UUID
	Contacts   []ContactInput
}

// UpdateLinkInput carries a full or partial update. Fields left nil (or with
// their Set flag false) keep the stored value.
type UpdateLinkInput struct {
	ID          uuid.UUID
	StatusLink  *enum.LinkStatus
	SupplierSet bool
	SupplierID  *uuid.UUID
	Name        *string
	ProductsSet bool
	ProductIDs  []uuid.UUID
	// Contacts replaces every contact of the link when non-nil.
	Contacts []ContactInput
}

// ClearDebtOutput is the result of the admin clear-debt action.
type ClearDebtOutput struct {
	Updated int64  `json:"updated"`
	Detail  string `json:"detail"`
}

// CreateLink validates and stores a new link with its contacts and products.
func (s *LinkService) CreateLink(ctx context.Context, input *CreateLinkInput) (*entity.Link, error) {
	fields := apperror.FieldErrors{}

	if err := s.checkName(ctx, input.Name, uuid.Nil, fields); err != nil {
		return nil, err
	}
	if err := s.checkSupplier(ctx, input.SupplierID, fields); err != nil {
		return nil, err
	}
	products, err := s.resolveProducts(ctx, input.ProductIDs, fields)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError(fields)
	}

	link := &entity.Link{
		StatusLink: input.StatusLink,
		SupplierID: input.SupplierID,
		Name:       input.Name,
		Products:   products,
		Contacts:   buildContacts(input.Contacts),
	}

	res, err := hierarchy.Validate(ctx, link.Candidate(), s.linkRepo.Lookup())
	if err != nil {
		return nil, mapHierarchyError(err)
	}
	if !res.OK() {
		return nil, rejectLink(link.Name, res.Violations)
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, s.mapWriteError(ctx, link, err)
	}

	log.Info().Str("link_id", link.ID.String()).Str("status_link", link.StatusLink.String()).
		Int("level", link.Level).Msg("link created")

	return s.linkRepo.GetByID(ctx, link.ID)
}

// GetLink returns a link with its supplier, products and contacts.
func (s *LinkService) GetLink(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	link, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperror.NewNotFoundError("Link")
	}
	return link, nil
}

// ListLinks returns one page of links matching the filters.
func (s *LinkService) ListLinks(ctx context.Context, params *repository.LinkFilterParams) ([]entity.Link, int64, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	return s.linkRepo.List(ctx, params)
}

// UpdateLink applies a full or partial update. The merged state is validated
// as a whole, so a PATCH cannot sneak an invalid combination past the rules.
func (s *LinkService) UpdateLink(ctx context.Context, input *UpdateLinkInput) (*entity.Link, error) {
	link, err := s.GetLink(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fields := apperror.FieldErrors{}

	if input.StatusLink != nil {
		link.StatusLink = *input.StatusLink
	}
	if input.Name != nil && *input.Name != link.Name {
		if err := s.checkName(ctx, *input.Name, link.ID, fields); err != nil {
			return nil, err
		}
		link.Name = *input.Name
	}
	if input.SupplierSet {
		if err := s.checkSupplier(ctx, input.SupplierID, fields); err != nil {
			return nil, err
		}
		link.SupplierID = input.SupplierID
	}
	link.Supplier = nil

	opts := repository.LinkUpdateOptions{}
	if input.ProductsSet {
		products, err := s.resolveProducts(ctx, input.ProductIDs, fields)
		if err != nil {
			return nil, err
		}
		link.Products = products
		opts.ReplaceProducts = true
	}
	if input.Contacts != nil {
		link.Contacts = buildContacts(input.Contacts)
		opts.ReplaceContacts = true
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError(fields)
	}

	candidate := link.Candidate()
	if candidate.Height, err = s.linkRepo.SubtreeHeight(ctx, link.ID); err != nil {
		return nil, mapHierarchyError(err)
	}
	if opts.ReplaceProducts {
		if candidate.Dependents, err = s.dependents(ctx, link.ID); err != nil {
			return nil, err
		}
	}

	res, err := hierarchy.Validate(ctx, candidate, s.linkRepo.Lookup())
	if err != nil {
		return nil, mapHierarchyError(err)
	}
	if !res.OK() {
		return nil, rejectLink(link.Name, res.Violations)
	}

	if err := s.linkRepo.Update(ctx, link, opts); err != nil {
		return nil, s.mapWriteError(ctx, link, err)
	}

	log.Info().Str("link_id", link.ID.String()).Int("level", link.Level).Msg("link updated")

	return s.linkRepo.GetByID(ctx, link.ID)
}

// DeleteLink removes the link, its contacts and every link it supplies.
func (s *LinkService) DeleteLink(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetLink(ctx, id); err != nil {
		return err
	}
	removed, err := s.linkRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	log.Info().Str("link_id", id.String()).Int64("removed", removed).Msg("link deleted")
	return nil
}

// ClearDebt sets the debt of the given links to null. Unknown ids are skipped.
func (s *LinkService) ClearDebt(ctx context.Context, ids []uuid.UUID) (*ClearDebtOutput, error) {
	updated, err := s.linkRepo.ClearDebt(ctx, utils.UniqueUUIDs(ids))
	if err != nil {
		return nil, err
	}
	log.Info().Int64("updated", updated).Msg("link debt cleared")
	return &ClearDebtOutput{
		Updated: updated,
		Detail:  ClearDebtMessage(updated),
	}, nil
}

func (s *LinkService) checkName(ctx context.Context, name string, self uuid.UUID, fields apperror.FieldErrors) error {
	existing, err := s.linkRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		fields.Add("name", MsgLinkNameTaken)
	}
	return nil
}

func (s *LinkService) checkSupplier(ctx context.Context, id *uuid.UUID, fields apperror.FieldErrors) error {
	if id == nil {
		return nil
	}
	found, err := s.linkRepo.Lookup()(ctx, *id)
	if err != nil {
		return err
	}
	if found == nil {
		fields.Add("supplier", InvalidPKMessage(*id))
	}
	return nil
}

// resolveProducts loads the requested products. Duplicate ids collapse.
func (s *LinkService) resolveProducts(ctx context.Context, ids []uuid.UUID, fields apperror.FieldErrors) ([]entity.Product, error) {
	ids = utils.UniqueUUIDs(ids)
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) == len(ids) {
		return products, nil
	}
	found := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			fields.Add("products", InvalidPKMessage(id))
			break
		}
	}
	return products, nil
}

func (s *LinkService) dependents(ctx context.Context, id uuid.UUID) ([]hierarchy.Dependent, error) {
	links, err := s.linkRepo.Dependents(ctx, id)
	if err != nil {
		return nil, err
	}
	deps := make([]hierarchy.Dependent, 0, len(links))
	for i := range links {
		deps = append(deps, hierarchy.Dependent{
			Name:     links[i].Name,
			Products: links[i].Candidate().Products,
		})
	}
	return deps, nil
}

// mapWriteError turns failures raised inside the write transaction into API
// errors. The save hook re-validates against the transaction's view, so a
// concurrent change can still surface here.
func (s *LinkService) mapWriteError(ctx context.Context, link *entity.Link, err error) error {
	var verr *hierarchy.ValidationError
	if errors.As(err, &verr) {
		return rejectLink(link.Name, verr.Violations)
	}
	if errors.Is(err, hierarchy.ErrSupplierNotFound) && link.SupplierID != nil {
		return apperror.NewFieldError("supplier", InvalidPKMessage(*link.SupplierID))
	}
	if errors.Is(err, hierarchy.ErrCycle) {
		return apperror.NewNonFieldError(hierarchy.MsgCycle)
	}
	if existing, lookupErr := s.linkRepo.GetByName(ctx, link.Name); lookupErr == nil && existing != nil && existing.ID != link.ID {
		return apperror.NewFieldError("name", MsgLinkNameTaken)
	}
	return err
}

// mapHierarchyError handles lookup failures hit while validating committed data.
func mapHierarchyError(err error) error {
	if errors.Is(err, hierarchy.ErrCycle) {
		return apperror.NewNonFieldError(hierarchy.MsgCycle)
	}
	return err
}

func rejectLink(name string, violations []hierarchy.Violation) error {
	recordViolations(violations)
	kinds := make([]string, 0, len(violations))
	for _, v := range violations {
		kinds = append(kinds, string(v.Kind))
	}
	log.Debug().Str("name", name).Strs("violations", kinds).Msg("link rejected")
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Message)
	}
	return apperror.NewNonFieldError(msgs...)
}

func buildContacts(inputs []ContactInput) []entity.Contact {
	contacts := make([]entity.Contact, 0, len(inputs))
	for _, c := range inputs {
		contacts = append(contacts, entity.Contact{
			Email:    c.Email,
			Country:  c.Country,
			City:     c.City,
			Street:   c.Street,
			NumHouse: c.NumHouse,
		})
	}
	return contacts
}
