package booking

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ah-ugo/fombinatowers/internal/email"
	"github.com/Ah-ugo/fombinatowers/internal/logger"
	"github.com/Ah-ugo/fombinatowers/internal/payment"
	"github.com/Ah-ugo/fombinatowers/internal/space"
	"github.com/Ah-ugo/fombinatowers/internal/transaction"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

// Mock collaborators
type MockBookingRepo struct{ mock.Mock }
type MockSpaceRepo struct{ mock.Mock }
type MockLedger struct{ mock.Mock }
type MockGateway struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) Confirm(ctx context.Context, id, reference string) (bool, error) {
	args := m.Called(ctx, id, reference)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) ListAll(ctx context.Context) ([]Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockSpaceRepo) Create(ctx context.Context, s *space.Space) (*space.Space, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*space.Space), args.Error(1)
}

func (m *MockSpaceRepo) GetByID(ctx context.Context, id string) (*space.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*space.Space), args.Error(1)
}

func (m *MockSpaceRepo) Update(ctx context.Context, id string, s *space.Space) error {
	return m.Called(ctx, id, s).Error(0)
}

func (m *MockLedger) Append(ctx context.Context, t *transaction.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockLedger) ListAll(ctx context.Context) ([]transaction.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transaction.Transaction), args.Error(1)
}

func (m *MockGateway) Initialize(ctx context.Context, email string, amount int64, reference string, metadata map[string]string) (*payment.InitializeResult, error) {
	args := m.Called(ctx, email, amount, reference, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.InitializeResult), args.Error(1)
}

func (m *MockGateway) Verify(ctx context.Context, reference string) (*payment.VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.VerifyResult), args.Error(1)
}

const (
	testSpaceID   = "3f1d8a2e-9dc0-4f34-b245-5ffdce74fad2"
	testBookingID = "7d444840-9dc0-11d1-b245-5ffdce74fad2"
)

var testReference = PaymentReference(testBookingID)

func testSpace(available bool) *space.Space {
	return &space.Space{
		ID:        testSpaceID,
		Name:      "Executive Office Suite A",
		Type:      space.TypeOffice,
		Price:     8500000,
		Available: available,
	}
}

func pendingBooking() *Booking {
	return &Booking{
		ID:            testBookingID,
		SpaceID:       testSpaceID,
		Name:          "Amina Bello",
		Email:         "amina@example.com",
		Phone:         "+2348000000000",
		Status:        StatusPending,
		PaymentStatus: PaymentStatusPending,
		Amount:        850000,
	}
}

func confirmedBooking() *Booking {
	b := pendingBooking()
	b.Status = StatusConfirmed
	b.PaymentStatus = PaymentStatusCompleted
	ref := testReference
	b.PaymentReference = &ref
	return b
}

func verifyResult() *payment.VerifyResult {
	return &payment.VerifyResult{
		Amount:        850000,
		CustomerEmail: "amina@example.com",
		Reference:     testReference,
		Raw:           json.RawMessage(`{"status":"success","amount":85000000}`),
	}
}

func newTestService(br *MockBookingRepo, sr *MockSpaceRepo, lr *MockLedger, gw *MockGateway) Service {
	// Unreachable redis: queueing fails, which is exactly the fire-and-forget
	// path the settlement flow must tolerate.
	emailService := email.New("noreply@test.com", "Test", "localhost", "1025", "", "", "localhost:1")
	return NewService(br, sr, lr, gw, emailService)
}

func TestBookSpace_Success(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	sr.On("GetByID", mock.Anything, testSpaceID).Return(testSpace(true), nil)

	// Deposit must be floor(10% of 8,500,000) = 850,000, frozen into the
	// booking record.
	br.On("Create", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.Amount == 850000 && b.SpaceID == testSpaceID
	})).Return(pendingBooking(), nil)

	gw.On("Initialize", mock.Anything, "amina@example.com", int64(850000), testReference, mock.MatchedBy(func(md map[string]string) bool {
		return md["booking_id"] == testBookingID && md["space_name"] == "Executive Office Suite A"
	})).Return(&payment.InitializeResult{
		AuthorizationURL: "https://checkout.paystack.com/abc123",
		AccessCode:       "abc123",
		Reference:        testReference,
	}, nil)

	svc := newTestService(br, sr, lr, gw)

	resp, err := svc.BookSpace(context.Background(), BookSpaceRequest{
		SpaceID:   testSpaceID,
		UserName:  "Amina Bello",
		UserEmail: "amina@example.com",
		UserPhone: "+2348000000000",
	})

	require.NoError(t, err)
	assert.Equal(t, testBookingID, resp.BookingID)
	assert.Equal(t, "https://checkout.paystack.com/abc123", resp.PaymentURL)
	assert.Equal(t, testReference, resp.Reference)

	br.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestBookSpace_SpaceNotFound(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	sr.On("GetByID", mock.Anything, "missing").Return(nil, space.ErrSpaceNotFound)

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.BookSpace(context.Background(), BookSpaceRequest{SpaceID: "missing"})

	assert.ErrorIs(t, err, space.ErrSpaceNotFound)
	br.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookSpace_SpaceUnavailable(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	sr.On("GetByID", mock.Anything, testSpaceID).Return(testSpace(false), nil)

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.BookSpace(context.Background(), BookSpaceRequest{SpaceID: testSpaceID})

	assert.ErrorIs(t, err, ErrSpaceUnavailable)
	// Unavailable space never creates a booking record.
	br.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookSpace_GatewayFailureLeavesBookingPending(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	sr.On("GetByID", mock.Anything, testSpaceID).Return(testSpace(true), nil)
	br.On("Create", mock.Anything, mock.Anything).Return(pendingBooking(), nil)
	gw.On("Initialize", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &payment.GatewayError{Op: "initialize", Message: "timeout"})

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.BookSpace(context.Background(), BookSpaceRequest{
		SpaceID:   testSpaceID,
		UserName:  "Amina Bello",
		UserEmail: "amina@example.com",
		UserPhone: "+2348000000000",
	})

	var gwErr *payment.GatewayError
	require.ErrorAs(t, err, &gwErr)

	// The pending booking is left dangling: no status change, no ledger row.
	br.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	lr.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_Success(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, testReference).Return(verifyResult(), nil)
	br.On("GetByID", mock.Anything, testBookingID).Return(pendingBooking(), nil)
	br.On("Confirm", mock.Anything, testBookingID, testReference).Return(true, nil)
	lr.On("Append", mock.Anything, mock.MatchedBy(func(tx *transaction.Transaction) bool {
		return tx.Reference == testReference && tx.Amount == 850000 && tx.BookingID == testBookingID
	})).Return(nil)
	sr.On("GetByID", mock.Anything, testSpaceID).Return(testSpace(true), nil)

	svc := newTestService(br, sr, lr, gw)

	settlement, err := svc.VerifyAndSettle(context.Background(), testReference)

	require.NoError(t, err)
	assert.Equal(t, testReference, settlement.Reference)
	assert.Equal(t, "Executive Office Suite A", settlement.SpaceName)
	// 85,000,000 kobo reported by the gateway surfaces as 850,000 naira.
	assert.Equal(t, int64(850000), settlement.Amount)

	br.AssertExpectations(t)
	lr.AssertExpectations(t)
}

func TestVerifyAndSettle_VerificationFailureMutatesNothing(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, testReference).
		Return(nil, &payment.VerificationError{Reference: testReference, Status: "abandoned"})

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.VerifyAndSettle(context.Background(), testReference)

	var verr *payment.VerificationError
	require.ErrorAs(t, err, &verr)

	br.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	br.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	lr.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_MalformedReference(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, "FT-not-a-uuid").Return(verifyResult(), nil)

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.VerifyAndSettle(context.Background(), "FT-not-a-uuid")

	assert.ErrorIs(t, err, ErrInvalidReference)
	lr.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_BookingNotFound(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, testReference).Return(verifyResult(), nil)
	br.On("GetByID", mock.Anything, testBookingID).Return(nil, ErrBookingNotFound)

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.VerifyAndSettle(context.Background(), testReference)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	lr.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_DuplicateCallIsIdempotent(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, testReference).Return(verifyResult(), nil)
	br.On("GetByID", mock.Anything, testBookingID).Return(confirmedBooking(), nil)
	// The reference-keyed append is a no-op on replay, so calling it again
	// cannot produce a second ledger row.
	lr.On("Append", mock.Anything, mock.Anything).Return(nil)
	sr.On("GetByID", mock.Anything, testSpaceID).Return(testSpace(true), nil)

	svc := newTestService(br, sr, lr, gw)

	settlement, err := svc.VerifyAndSettle(context.Background(), testReference)

	require.NoError(t, err)
	assert.Equal(t, int64(850000), settlement.Amount)
	assert.Equal(t, "Executive Office Suite A", settlement.SpaceName)

	// Already-confirmed bookings are never re-transitioned.
	br.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_RacingLoserTakesIdempotentPath(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, testReference).Return(verifyResult(), nil)
	// First read sees pending; the conditional update loses the race; the
	// re-read sees the winner's transition.
	br.On("GetByID", mock.Anything, testBookingID).Return(pendingBooking(), nil).Once()
	br.On("Confirm", mock.Anything, testBookingID, testReference).Return(false, nil)
	br.On("GetByID", mock.Anything, testBookingID).Return(confirmedBooking(), nil).Once()
	lr.On("Append", mock.Anything, mock.Anything).Return(nil)
	sr.On("GetByID", mock.Anything, testSpaceID).Return(testSpace(true), nil)

	svc := newTestService(br, sr, lr, gw)

	settlement, err := svc.VerifyAndSettle(context.Background(), testReference)

	// The loser still gets a success response with the recorded outcome.
	require.NoError(t, err)
	assert.Equal(t, testReference, settlement.Reference)

	br.AssertExpectations(t)
}

func TestVerifyAndSettle_LedgerFailureSurfaces(t *testing.T) {
	br := new(MockBookingRepo)
	sr := new(MockSpaceRepo)
	lr := new(MockLedger)
	gw := new(MockGateway)

	gw.On("Verify", mock.Anything, testReference).Return(verifyResult(), nil)
	br.On("GetByID", mock.Anything, testBookingID).Return(pendingBooking(), nil)
	br.On("Confirm", mock.Anything, testBookingID, testReference).Return(true, nil)
	lr.On("Append", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	svc := newTestService(br, sr, lr, gw)

	_, err := svc.VerifyAndSettle(context.Background(), testReference)

	// The caller is told so it can replay; the reference-keyed append makes
	// the retry safe.
	require.Error(t, err)
}
