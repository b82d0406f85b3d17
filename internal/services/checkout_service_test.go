package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"warung/internal/models"
	"warung/internal/services"
)

// MockOrderSubmitter is a mock implementation of services.OrderSubmitter
type MockOrderSubmitter struct {
	mock.Mock
}

func (m *MockOrderSubmitter) Submit(ctx context.Context, order *models.OrderRequest) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

// blockingSubmitter holds the submission open until released, to exercise
// the in-flight guard.
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSubmitter) Submit(ctx context.Context, order *models.OrderRequest) (string, error) {
	close(s.started)
	<-s.release
	return order.OrderID, nil
}

func newCheckoutFixture(submitter services.OrderSubmitter) (*services.CheckoutService, *services.CartService) {
	mockCatalog := new(MockCatalogRepository)
	mockCatalog.On("GetByID", 1).Return(menuItem(1, "Margherita Pizza", "12.99", 20), nil)
	pricing := services.NewPricingService(services.DefaultPricingConfig())
	cart := services.NewCartService(mockCatalog, pricing)
	return services.NewCheckoutService(cart, submitter), cart
}

func submitRequest() models.SubmitRequest {
	return models.SubmitRequest{
		Address:       "12 Jalan Melati",
		PaymentMethod: models.PaymentCreditCard,
	}
}

func TestCheckoutService_EmptyCartBlocked(t *testing.T) {
	checkout, _ := newCheckoutFixture(new(MockOrderSubmitter))

	// Blocked regardless of a perfectly good address.
	_, err := checkout.Submit(context.Background(), "s1", submitRequest())
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestCheckoutService_BlankAddressBlocked(t *testing.T) {
	checkout, cart := newCheckoutFixture(new(MockOrderSubmitter))
	cart.AddItem("s1", 1)

	req := submitRequest()
	req.Address = "   "
	_, err := checkout.Submit(context.Background(), "s1", req)
	assert.ErrorIs(t, err, models.ErrMissingAddress)

	// The cart is untouched by the failed attempt.
	assert.Equal(t, 1, cart.TotalQuantity("s1"))
}

func TestCheckoutService_UnknownPaymentMethodRejected(t *testing.T) {
	checkout, cart := newCheckoutFixture(new(MockOrderSubmitter))
	cart.AddItem("s1", 1)

	req := submitRequest()
	req.PaymentMethod = "IOU"
	_, err := checkout.Submit(context.Background(), "s1", req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid checkout request")
}

func TestCheckoutService_SubmitSuccess(t *testing.T) {
	mockSubmitter := new(MockOrderSubmitter)
	checkout, cart := newCheckoutFixture(mockSubmitter)
	cart.AddItem("s1", 1)
	cart.AddItem("s1", 1)

	mockSubmitter.On("Submit", mock.Anything, mock.MatchedBy(func(order *models.OrderRequest) bool {
		return order.SessionID == "s1" &&
			len(order.Items) == 1 &&
			order.Items[0].Quantity == 2 &&
			order.PaymentMethod == models.PaymentCreditCard
	})).Return("order-123", nil).Once()

	confirmation, err := checkout.Submit(context.Background(), "s1", submitRequest())
	assert.NoError(t, err)
	assert.Equal(t, "order-123", confirmation.OrderID)
	assert.Equal(t, models.StateSubmitted, confirmation.State)
	assert.True(t, confirmation.Total.Equal(dec("28.0584")), "got %s", confirmation.Total)

	// Success clears the cart and resets the session.
	assert.Equal(t, 0, cart.TotalQuantity("s1"))
	assert.Equal(t, models.StateEmpty, checkout.State("s1"))
	mockSubmitter.AssertExpectations(t)
}

func TestCheckoutService_SubmitFailureKeepsCart(t *testing.T) {
	mockSubmitter := new(MockOrderSubmitter)
	checkout, cart := newCheckoutFixture(mockSubmitter)
	cart.AddItem("s1", 1)

	mockSubmitter.On("Submit", mock.Anything, mock.Anything).Return("", fmt.Errorf("broker unreachable")).Once()

	_, err := checkout.Submit(context.Background(), "s1", submitRequest())
	assert.ErrorIs(t, err, models.ErrSubmissionFailed)
	assert.Contains(t, err.Error(), "broker unreachable")

	// Failure returns the session to filling with the cart intact, so the
	// customer can retry without re-entering the order.
	assert.Equal(t, 1, cart.TotalQuantity("s1"))
	assert.Equal(t, models.StateFilling, checkout.State("s1"))
	mockSubmitter.AssertExpectations(t)
}

func TestCheckoutService_ConcurrentSubmitRejected(t *testing.T) {
	submitter := &blockingSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	checkout, cart := newCheckoutFixture(submitter)
	cart.AddItem("s1", 1)

	type result struct {
		confirmation *models.OrderConfirmation
		err          error
	}
	first := make(chan result, 1)
	go func() {
		c, err := checkout.Submit(context.Background(), "s1", submitRequest())
		first <- result{c, err}
	}()

	<-submitter.started
	assert.Equal(t, models.StateSubmitting, checkout.State("s1"))

	// A second attempt while the first is in flight is rejected outright.
	_, err := checkout.Submit(context.Background(), "s1", submitRequest())
	assert.ErrorIs(t, err, models.ErrSubmissionInProgress)

	// Cart mutations are still allowed during the flight.
	_, err = cart.AddItem("s1", 1)
	assert.NoError(t, err)

	// The first attempt's outcome still determines the final state.
	close(submitter.release)
	res := <-first
	assert.NoError(t, res.err)
	assert.NotNil(t, res.confirmation)
	assert.Equal(t, models.StateEmpty, checkout.State("s1"))
}

func TestCheckoutService_Timeout(t *testing.T) {
	mockSubmitter := new(MockOrderSubmitter)
	checkout, cart := newCheckoutFixture(mockSubmitter)
	cart.AddItem("s1", 1)

	mockSubmitter.On("Submit", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		<-ctx.Done()
	}).Return("", context.DeadlineExceeded).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := checkout.Submit(ctx, "s1", submitRequest())
	assert.ErrorIs(t, err, models.ErrSubmissionTimeout)

	// Timeout behaves like any other failure: cart preserved, back to filling.
	assert.Equal(t, 1, cart.TotalQuantity("s1"))
	assert.Equal(t, models.StateFilling, checkout.State("s1"))
}

func TestCheckoutService_StateAndGate(t *testing.T) {
	checkout, cart := newCheckoutFixture(new(MockOrderSubmitter))

	assert.Equal(t, models.StateEmpty, checkout.State("s1"))
	assert.False(t, checkout.ReadyToSubmit("s1", "12 Jalan Melati"))

	cart.AddItem("s1", 1)
	assert.Equal(t, models.StateFilling, checkout.State("s1"))
	assert.False(t, checkout.ReadyToSubmit("s1", "  "))
	assert.True(t, checkout.ReadyToSubmit("s1", "12 Jalan Melati"))

	cart.Clear("s1")
	assert.Equal(t, models.StateEmpty, checkout.State("s1"))
}
