package address

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, identity.Owner) {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: NewRepository(snapshot.NewMemoryStore())})
	require.NoError(t, err)
	return svc, identity.User(uuid.New())
}

func validInput(label string) AddressInput {
	return AddressInput{
		Label:    label,
		FullName: "Asha Raman",
		Phone:    "9876543210",
		Street:   "14 Lake View Road",
		City:     "Chennai",
		State:    "TN",
		ZipCode:  "600033",
		Country:  "IN",
	}
}

func defaultCount(addrs []models.Address) int {
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc, owner := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, owner, validInput("home"))
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.Add(ctx, owner, validInput("office"))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	addrs, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(addrs))
}

func TestAddRejectsMissingFields(t *testing.T) {
	svc, owner := newTestService(t)

	input := validInput("home")
	input.Phone = "  "
	input.City = ""

	_, err := svc.Add(context.Background(), owner, input)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	addrs, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, addrs, "rejected input must not be partially applied")
}

func TestSetDefaultHasExactlyOneWinner(t *testing.T) {
	svc, owner := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, owner, validInput("home"))
	require.NoError(t, err)
	office, err := svc.Add(ctx, owner, validInput("office"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, owner, validInput("parents"))
	require.NoError(t, err)

	got, err := svc.SetDefault(ctx, owner, office.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDefault)

	addrs, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, defaultCount(addrs))

	def, err := svc.Default(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, office.ID, def.ID)
}

func TestSetDefaultUnknownID(t *testing.T) {
	svc, owner := newTestService(t)

	_, err := svc.SetDefault(context.Background(), owner, uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDeleteDefaultPromotesFirstRemaining(t *testing.T) {
	svc, owner := newTestService(t)
	ctx := context.Background()

	home, err := svc.Add(ctx, owner, validInput("home"))
	require.NoError(t, err)
	office, err := svc.Add(ctx, owner, validInput("office"))
	require.NoError(t, err)
	_, err = svc.Add(ctx, owner, validInput("parents"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, home.ID))

	addrs, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	assert.Equal(t, 1, defaultCount(addrs))
	assert.Equal(t, office.ID, addrs[0].ID)
	assert.True(t, addrs[0].IsDefault)
}

func TestDeleteNonDefaultKeepsDefault(t *testing.T) {
	svc, owner := newTestService(t)
	ctx := context.Background()

	home, err := svc.Add(ctx, owner, validInput("home"))
	require.NoError(t, err)
	office, err := svc.Add(ctx, owner, validInput("office"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, office.ID))

	def, err := svc.Default(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, home.ID, def.ID)
}

func TestUpdateCannotUnsetDefault(t *testing.T) {
	svc, owner := newTestService(t)
	ctx := context.Background()

	home, err := svc.Add(ctx, owner, validInput("home"))
	require.NoError(t, err)

	unset := false
	newLabel := "main home"
	got, err := svc.Update(ctx, owner, home.ID, UpdateInput{Label: &newLabel, IsDefault: &unset})
	require.NoError(t, err)

	assert.Equal(t, "main home", got.Label)
	assert.True(t, got.IsDefault, "Update must not move the default flag")
}

func TestUpdateUnknownID(t *testing.T) {
	svc, owner := newTestService(t)

	label := "x"
	_, err := svc.Update(context.Background(), owner, uuid.New(), UpdateInput{Label: &label})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDefaultOnEmptyBookIsNil(t *testing.T) {
	svc, owner := newTestService(t)

	def, err := svc.Default(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestGetAbsentReturnsNil(t *testing.T) {
	svc, owner := newTestService(t)

	got, err := svc.Get(context.Background(), owner, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}
