package booking

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx/types"

	"github.com/Ah-ugo/fombinatowers/internal/email"
	"github.com/Ah-ugo/fombinatowers/internal/logger"
	"github.com/Ah-ugo/fombinatowers/internal/metrics"
	"github.com/Ah-ugo/fombinatowers/internal/payment"
	"github.com/Ah-ugo/fombinatowers/internal/space"
	"github.com/Ah-ugo/fombinatowers/internal/transaction"
)

var (
	ErrSpaceUnavailable = errors.New("space is not available")
	// ErrReferenceConflict means the booking recovered from a reference is
	// already settled under a different reference. Derived references make
	// this unreachable in normal operation; it guards against corrupt data.
	ErrReferenceConflict = errors.New("reference does not match settled booking")
)

// depositPercent is the slice of the monthly price charged at booking time.
// Fixed at 10%, matching the leasing terms; integer division floors the
// result.
const depositPercent = 10

type Service interface {
	BookSpace(ctx context.Context, req BookSpaceRequest) (*BookSpaceResponse, error)
	VerifyAndSettle(ctx context.Context, reference string) (*Settlement, error)
	GetAllBookings(ctx context.Context) ([]Booking, error)
}

type service struct {
	repo      Repository
	spaceRepo space.Repository
	ledger    transaction.Repository
	gateway   payment.Gateway
	email     *email.Service
}

func NewService(
	repo Repository,
	spaceRepo space.Repository,
	ledger transaction.Repository,
	gateway payment.Gateway,
	emailService *email.Service,
) Service {
	return &service{
		repo:      repo,
		spaceRepo: spaceRepo,
		ledger:    ledger,
		gateway:   gateway,
		email:     emailService,
	}
}

func (s *service) BookSpace(ctx context.Context, req BookSpaceRequest) (*BookSpaceResponse, error) {
	sp, err := s.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	if !sp.Available {
		return nil, ErrSpaceUnavailable
	}

	// The deposit is frozen into the booking here; later edits to the
	// space's price do not touch it.
	deposit := sp.Price * depositPercent / 100

	created, err := s.repo.Create(ctx, &Booking{
		SpaceID:     sp.ID,
		Name:        req.UserName,
		Email:       req.UserEmail,
		Phone:       req.UserPhone,
		CompanyName: req.CompanyName,
		Amount:      deposit,
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordBookingCreated()

	reference := PaymentReference(created.ID)

	init, err := s.gateway.Initialize(ctx, req.UserEmail, deposit, reference, map[string]string{
		"booking_id":    created.ID,
		"space_name":    sp.Name,
		"customer_name": req.UserName,
	})
	if err != nil {
		// The booking stays pending/pending: no compensating action is
		// needed because nothing on the space was mutated. Cleanup of
		// never-paid bookings is an operational concern outside this flow.
		metrics.RecordPaymentInitialized("error")
		return nil, err
	}
	metrics.RecordPaymentInitialized("success")

	return &BookSpaceResponse{
		BookingID:  created.ID,
		PaymentURL: init.AuthorizationURL,
		Reference:  init.Reference,
	}, nil
}

func (s *service) VerifyAndSettle(ctx context.Context, reference string) (*Settlement, error) {
	result, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		metrics.RecordPaymentVerified("failed")
		return nil, err
	}

	bookingID, err := BookingIDFromReference(reference)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusConfirmed {
		if b.PaymentReference == nil || *b.PaymentReference != reference {
			return nil, ErrReferenceConflict
		}
		// Duplicate verification (webhook redelivery, callback refresh):
		// report the recorded outcome. The ledger append below is reference-
		// keyed and idempotent, so it also repairs a settlement interrupted
		// between the booking update and the ledger write.
		return s.settle(ctx, b, reference, b.Amount, result)
	}

	confirmed, err := s.repo.Confirm(ctx, bookingID, reference)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		// Lost the race to a concurrent verification; the winner has
		// already transitioned the booking.
		b, err = s.repo.GetByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if b.Status != StatusConfirmed || b.PaymentReference == nil || *b.PaymentReference != reference {
			return nil, ErrReferenceConflict
		}
		return s.settle(ctx, b, reference, b.Amount, result)
	}

	metrics.RecordPaymentVerified("success")
	return s.settle(ctx, b, reference, result.Amount, result)
}

// settle appends the ledger row and dispatches the confirmation email. The
// booking transition has already been durably applied by the time settle
// runs; a notification failure is logged and never rolls it back.
func (s *service) settle(ctx context.Context, b *Booking, reference string, amount int64, result *payment.VerifyResult) (*Settlement, error) {
	if err := s.ledger.Append(ctx, &transaction.Transaction{
		BookingID:   b.ID,
		Reference:   reference,
		Amount:      amount,
		GatewayData: types.JSONText(result.Raw),
	}); err != nil {
		return nil, err
	}
	metrics.RecordSettlement()

	sp, err := s.spaceRepo.GetByID(ctx, b.SpaceID)
	if err != nil {
		return nil, err
	}

	if err := s.email.SendBookingConfirmation(ctx, b.Email, b.Name, sp.Name, b.ID, amount); err != nil {
		logger.Errorf("Failed to queue confirmation email for booking %s: %v", b.ID, err)
	}

	return &Settlement{
		Reference: reference,
		SpaceName: sp.Name,
		Amount:    amount,
	}, nil
}

func (s *service) GetAllBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.ListAll(ctx)
}
