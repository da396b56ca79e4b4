package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/sl"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage"
)

// Authorizer decides whether a cancellation request may act on a
// booking. The observed contract authenticates with nothing but the
// contact email; keeping the check behind this interface lets a
// stronger scheme replace it without touching the processor.
type Authorizer interface {
	Authorize(b *models.Booking, credential string) error
}

// EmailAuthorizer is the observed email-match check.
type EmailAuthorizer struct{}

func (EmailAuthorizer) Authorize(b *models.Booking, credential string) error {
	if !strings.EqualFold(b.Contact.Email, credential) {
		return ErrEmailMismatch
	}
	return nil
}

type CancellationProcessor struct {
	log     *slog.Logger
	storage Storage
	seats   Inventory
	auth    Authorizer
	now     func() time.Time
}

func NewCancellationProcessor(log *slog.Logger, st Storage, seats Inventory, auth Authorizer) *CancellationProcessor {
	if auth == nil {
		auth = EmailAuthorizer{}
	}

	return &CancellationProcessor{
		log:     log,
		storage: st,
		seats:   seats,
		auth:    auth,
		now:     time.Now,
	}
}

// CancelByReference cancels a reserved or confirmed booking and
// returns its seats to the inventory. The storage update is guarded on
// the current status, so a concurrent second cancellation of the same
// reference loses and reports InvalidState.
func (p *CancellationProcessor) CancelByReference(ctx context.Context, reference, email string) (*models.CancellationSummary, error) {
	const op = "booking.CancelByReference"

	b, err := p.storage.BookingByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = p.auth.Authorize(b, email); err != nil {
		return nil, err
	}

	if !b.Status.Cancellable() {
		return nil, ErrInvalidState
	}

	at := p.now().UTC()

	if err = p.storage.CancelBooking(ctx, reference, at); err != nil {
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, ErrInvalidState
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = p.seats.Release(b.ScheduleID, b.SeatNumbers()); err != nil {
		// The booking is already cancelled; a release failure here
		// only means the in-memory table disagrees until the next
		// hydration. Log it loudly.
		p.log.Error("failed to release cancelled seats", sl.Err(err))
	}

	return &models.CancellationSummary{
		BookingReference: b.Reference,
		BookingStatus:    models.BookingCancelled,
		CancelledAt:      at,
		NumberOfSeats:    len(b.Passengers),
		TotalAmount:      b.TotalAmount,
	}, nil
}
