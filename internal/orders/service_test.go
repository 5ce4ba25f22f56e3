package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

var fixedCreatedAt = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo: NewRepository(snapshot.NewMemoryStore()),
		Now:  func() time.Time { return fixedCreatedAt },
		Tracking: func() (string, int) {
			return "SWM000000042", 5
		},
	})
	require.NoError(t, err)
	return svc
}

func sampleParams() CreateParams {
	return CreateParams{
		Lines: []models.CartLine{
			{ProductID: uuid.New(), Name: "Full Cream Milk", UnitPrice: decimal.RequireFromString("33.50"), Quantity: 2},
		},
		ShippingAddress: models.Address{ID: uuid.New(), Label: "Home", FullName: "Asha Rao", Street: "12 Lake View Road", City: "Pune", State: "MH", ZipCode: "411001", Country: "IN"},
		PaymentMethod:   enums.PaymentMethodCOD,
		Breakdown: models.PriceBreakdown{
			Subtotal:     decimal.RequireFromString("67.00"),
			ShippingCost: decimal.RequireFromString("50"),
			Tax:          decimal.RequireFromString("6.70"),
			Discount:     decimal.Zero,
			Total:        decimal.RequireFromString("123.70"),
		},
	}
}

func TestCreateSetsPendingAndTracking(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")

	order, err := svc.Create(context.Background(), owner, sampleParams())
	require.NoError(t, err)

	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, "SWM000000042", order.TrackingNumber)
	assert.Equal(t, fixedCreatedAt, order.CreatedAt)
	assert.Equal(t, fixedCreatedAt.AddDate(0, 0, 5), order.EstimatedDelivery)
	assert.Nil(t, order.UserID)
}

func TestCreateWithEmptyCartSucceeds(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")

	params := sampleParams()
	params.Lines = nil
	params.Breakdown = models.PriceBreakdown{
		Subtotal:     decimal.Zero,
		ShippingCost: decimal.RequireFromString("50"),
		Tax:          decimal.Zero,
		Discount:     decimal.Zero,
		Total:        decimal.RequireFromString("50"),
	}

	order, err := svc.Create(context.Background(), owner, params)
	require.NoError(t, err)
	assert.Empty(t, order.Lines)
}

func TestListIsMostRecentFirst(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")

	first, err := svc.Create(context.Background(), owner, sampleParams())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), owner, sampleParams())
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}

func TestOrderLinesAreFrozen(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")

	params := sampleParams()
	order, err := svc.Create(context.Background(), owner, params)
	require.NoError(t, err)

	// Mutating the caller's slice after creation must not leak in.
	params.Lines[0].Quantity = 99

	got, err := svc.Get(context.Background(), owner, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Lines[0].Quantity)
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")
	ctx := context.Background()

	order, err := svc.Create(ctx, owner, sampleParams())
	require.NoError(t, err)

	for _, next := range []enums.OrderStatus{
		enums.OrderStatusProcessing,
		enums.OrderStatusShipped,
		enums.OrderStatusDelivered,
	} {
		updated, err := svc.UpdateStatus(ctx, owner, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestCancelShippedRejected(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")
	ctx := context.Background()

	order, err := svc.Create(ctx, owner, sampleParams())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, owner, order.ID, enums.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, owner, order.ID, enums.OrderStatusShipped)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, owner, order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	got, err := svc.Get(ctx, owner, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, enums.OrderStatusShipped, got.Status)
}

func TestCancelPendingSucceeds(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")
	ctx := context.Background()

	order, err := svc.Create(ctx, owner, sampleParams())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, cancelled.Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := newTestService(t)
	owner := identity.Guest("sess-1")

	_, err := svc.UpdateStatus(context.Background(), owner, uuid.New(), enums.OrderStatusProcessing)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestHistoriesAreOwnerScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	guest := identity.Guest("sess-1")
	userID := uuid.New()
	user := identity.User(userID)

	guestOrder, err := svc.Create(ctx, guest, sampleParams())
	require.NoError(t, err)
	userOrder, err := svc.Create(ctx, user, sampleParams())
	require.NoError(t, err)

	require.NotNil(t, userOrder.UserID)
	assert.Equal(t, userID, *userOrder.UserID)

	got, err := svc.Get(ctx, user, guestOrder.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	guestList, err := svc.List(ctx, guest)
	require.NoError(t, err)
	require.Len(t, guestList, 1)
	assert.Equal(t, guestOrder.ID, guestList[0].ID)
}

func TestListByStatusSpansOwners(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	guest := identity.Guest("sess-1")
	user := identity.User(uuid.New())

	guestOrder, err := svc.Create(ctx, guest, sampleParams())
	require.NoError(t, err)
	_, err = svc.Create(ctx, user, sampleParams())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, guest, guestOrder.ID, enums.OrderStatusProcessing)
	require.NoError(t, err)

	pending, err := svc.ListByStatus(ctx, enums.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	processing, err := svc.ListByStatus(ctx, enums.OrderStatusProcessing)
	require.NoError(t, err)
	require.Len(t, processing, 1)
	assert.Equal(t, guestOrder.ID, processing[0].ID)
}

func TestAdvanceFindsOrderAcrossOwners(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	guest := identity.Guest("sess-1")

	order, err := svc.Create(ctx, guest, sampleParams())
	require.NoError(t, err)

	updated, err := svc.Advance(ctx, order.ID, enums.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusProcessing, updated.Status)

	_, err = svc.Advance(ctx, order.ID, enums.OrderStatusDelivered)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}
