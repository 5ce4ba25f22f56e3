package address

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// Service manages the saved address book. The store, not the caller,
// owns the single-default invariant: a non-empty book always has
// exactly one default address.
type Service interface {
	List(ctx context.Context, owner identity.Owner) ([]models.Address, error)
	Get(ctx context.Context, owner identity.Owner, id uuid.UUID) (*models.Address, error)
	Add(ctx context.Context, owner identity.Owner, input AddressInput) (models.Address, error)
	Update(ctx context.Context, owner identity.Owner, id uuid.UUID, input UpdateInput) (models.Address, error)
	Delete(ctx context.Context, owner identity.Owner, id uuid.UUID) error
	SetDefault(ctx context.Context, owner identity.Owner, id uuid.UUID) (models.Address, error)
	Default(ctx context.Context, owner identity.Owner) (*models.Address, error)
}

type service struct {
	repo  *Repository
	newID func() uuid.UUID
}

// ServiceParams groups dependencies for the address service.
type ServiceParams struct {
	Repo *Repository
	// NewID overrides id generation, used by tests.
	NewID func() uuid.UUID
}

// NewService builds an address service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address repository is required")
	}
	newID := params.NewID
	if newID == nil {
		newID = uuid.New
	}
	return &service{repo: params.Repo, newID: newID}, nil
}

// AddressInput carries the fields for a new address.
type AddressInput struct {
	Label    string
	FullName string
	Phone    string
	Street   string
	City     string
	State    string
	ZipCode  string
	Country  string
}

func (in AddressInput) validate() error {
	missing := []string{}
	for field, value := range map[string]string{
		"full_name": in.FullName,
		"phone":     in.Phone,
		"street":    in.Street,
		"city":      in.City,
		"state":     in.State,
		"zip_code":  in.ZipCode,
		"country":   in.Country,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "address fields missing").
			WithDetails(map[string]any{"fields": missing})
	}
	return nil
}

// UpdateInput merges non-nil fields into an existing address. IsDefault
// may be sent by older clients; it is ignored here, SetDefault is the
// only way to move the default flag.
type UpdateInput struct {
	Label     *string
	FullName  *string
	Phone     *string
	Street    *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	IsDefault *bool
}

func (s *service) List(ctx context.Context, owner identity.Owner) ([]models.Address, error) {
	if !owner.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return state.Addresses, nil
}

func (s *service) Get(ctx context.Context, owner identity.Owner, id uuid.UUID) (*models.Address, error) {
	if !owner.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range state.Addresses {
		if state.Addresses[i].ID == id {
			addr := state.Addresses[i]
			return &addr, nil
		}
	}
	return nil, nil
}

// Add appends a new address. The first address in an empty book becomes
// the default automatically.
func (s *service) Add(ctx context.Context, owner identity.Owner, input AddressInput) (models.Address, error) {
	if !owner.Valid() {
		return models.Address{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	if err := input.validate(); err != nil {
		return models.Address{}, err
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.Address{}, err
	}

	addr := models.Address{
		ID:        s.newID(),
		Label:     strings.TrimSpace(input.Label),
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		Street:    strings.TrimSpace(input.Street),
		City:      strings.TrimSpace(input.City),
		State:     strings.TrimSpace(input.State),
		ZipCode:   strings.TrimSpace(input.ZipCode),
		Country:   strings.TrimSpace(input.Country),
		IsDefault: len(state.Addresses) == 0,
	}
	state.Addresses = append(state.Addresses, addr)

	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.Address{}, err
	}
	return addr, nil
}

func (s *service) Update(ctx context.Context, owner identity.Owner, id uuid.UUID, input UpdateInput) (models.Address, error) {
	if !owner.Valid() {
		return models.Address{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.Address{}, err
	}
	for i := range state.Addresses {
		if state.Addresses[i].ID != id {
			continue
		}
		applyUpdate(&state.Addresses[i], input)
		if err := s.repo.Save(ctx, owner, state); err != nil {
			return models.Address{}, err
		}
		return state.Addresses[i], nil
	}
	return models.Address{}, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
}

func applyUpdate(addr *models.Address, input UpdateInput) {
	if input.Label != nil {
		addr.Label = strings.TrimSpace(*input.Label)
	}
	if input.FullName != nil {
		addr.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		addr.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Street != nil {
		addr.Street = strings.TrimSpace(*input.Street)
	}
	if input.City != nil {
		addr.City = strings.TrimSpace(*input.City)
	}
	if input.State != nil {
		addr.State = strings.TrimSpace(*input.State)
	}
	if input.ZipCode != nil {
		addr.ZipCode = strings.TrimSpace(*input.ZipCode)
	}
	if input.Country != nil {
		addr.Country = strings.TrimSpace(*input.Country)
	}
	// input.IsDefault deliberately not applied.
}

// Delete removes the address. When the default is deleted and entries
// remain, the first remaining address is promoted so the book never has
// zero defaults while non-empty. The promotion choice is a policy, not
// a contract.
func (s *service) Delete(ctx context.Context, owner identity.Owner, id uuid.UUID) error {
	if !owner.Valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return err
	}

	kept := state.Addresses[:0]
	wasDefault := false
	found := false
	for _, addr := range state.Addresses {
		if addr.ID == id {
			found = true
			wasDefault = addr.IsDefault
			continue
		}
		kept = append(kept, addr)
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}
	state.Addresses = kept

	if wasDefault && len(state.Addresses) > 0 {
		state.Addresses[0].IsDefault = true
	}

	return s.repo.Save(ctx, owner, state)
}

// SetDefault makes the given address the single default.
func (s *service) SetDefault(ctx context.Context, owner identity.Owner, id uuid.UUID) (models.Address, error) {
	if !owner.Valid() {
		return models.Address{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.Address{}, err
	}

	var winner *models.Address
	for i := range state.Addresses {
		if state.Addresses[i].ID == id {
			winner = &state.Addresses[i]
		}
	}
	if winner == nil {
		return models.Address{}, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}

	for i := range state.Addresses {
		state.Addresses[i].IsDefault = state.Addresses[i].ID == id
	}

	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.Address{}, err
	}
	return *winner, nil
}

// Default returns the flagged address, falling back to the first entry
// if no flag survived, or nil for an empty book.
func (s *service) Default(ctx context.Context, owner identity.Owner) (*models.Address, error) {
	if !owner.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(state.Addresses) == 0 {
		return nil, nil
	}
	for i := range state.Addresses {
		if state.Addresses[i].IsDefault {
			addr := state.Addresses[i]
			return &addr, nil
		}
	}
	addr := state.Addresses[0]
	return &addr, nil
}
