package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"warung/internal/models"
)

// CheckoutService gates order submission. A session moves through
// empty -> filling -> submitting -> submitted; "ready to submit" is not a
// stored flag but a predicate evaluated on every attempt, so the gate can
// never go stale against the cart.
type CheckoutService struct {
	carts     *CartService
	submitter OrderSubmitter
	validate  *validator.Validate

	mu       sync.Mutex
	inFlight map[string]bool // sessions with a submission in flight
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(carts *CartService, submitter OrderSubmitter) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		submitter: submitter,
		validate:  validator.New(),
		inFlight:  make(map[string]bool),
	}
}

// State reports the session's checkout state. Submitting wins while an order
// is in flight; otherwise the state follows cart content.
func (s *CheckoutService) State(sessionID string) string {
	s.mu.Lock()
	submitting := s.inFlight[sessionID]
	s.mu.Unlock()

	if submitting {
		return models.StateSubmitting
	}
	if s.carts.TotalQuantity(sessionID) == 0 {
		return models.StateEmpty
	}
	return models.StateFilling
}

// ReadyToSubmit is the submission gate: a non-empty cart and a non-blank
// delivery address.
func (s *CheckoutService) ReadyToSubmit(sessionID, address string) bool {
	return s.carts.TotalQuantity(sessionID) > 0 && strings.TrimSpace(address) != ""
}

// Submit validates the gate, snapshots the cart into an immutable
// OrderRequest and hands it to the submission service. Cart mutations are
// not blocked while the submission is in flight, but a second Submit for the
// same session is rejected rather than raced. On success the cart is
// cleared; on any failure the cart is preserved so the customer can retry.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, req models.SubmitRequest) (*models.OrderConfirmation, error) {
	view := s.carts.View(sessionID)
	if view.TotalQuantity == 0 {
		return nil, models.ErrEmptyCart
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, models.ErrMissingAddress
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid checkout request: %w", err)
	}

	s.mu.Lock()
	if s.inFlight[sessionID] {
		s.mu.Unlock()
		return nil, models.ErrSubmissionInProgress
	}
	s.inFlight[sessionID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, sessionID)
		s.mu.Unlock()
	}()

	order := &models.OrderRequest{
		OrderID:       uuid.New().String(),
		SessionID:     sessionID,
		Items:         view.Lines,
		Address:       strings.TrimSpace(req.Address),
		Instructions:  req.Instructions,
		PaymentMethod: req.PaymentMethod,
		Pricing:       view.Pricing,
		CreatedAt:     time.Now(),
	}

	// The external call happens outside every lock so the cart stays usable
	// while the submission is in flight.
	confirmationID, err := s.submitter.Submit(ctx, order)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", models.ErrSubmissionTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrSubmissionFailed, err)
	}

	s.carts.Clear(sessionID)
	log.Printf("Order %s submitted for session %s (total %s)", confirmationID, sessionID, view.Pricing.DisplayTotal())

	return &models.OrderConfirmation{
		OrderID:         confirmationID,
		State:           models.StateSubmitted,
		Total:           view.Pricing.Total,
		EstimateMinutes: view.Pricing.EstimateMinutes,
		PlacedAt:        time.Now(),
	}, nil
}
