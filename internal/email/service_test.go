package email

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ah-ugo/fombinatowers/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@fombinatower.com",
		fromName: "Fombina Tower",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Send(ctx, "tenant@example.com", "Tenant", "Hello", "Test body", "test")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendBookingConfirmation(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	var queued Job
	mock.CustomMatch(func(expected, actual []interface{}) error {
		return json.Unmarshal(actual[2].([]byte), &queued)
	}).ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendBookingConfirmation(ctx, "tenant@example.com", "Amina Bello", "Executive Office Suite A", "booking-42", 850000)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "tenant@example.com", queued.To)
	assert.Equal(t, "booking_confirmation", queued.Type)
	assert.Contains(t, queued.Subject, "Executive Office Suite A")
	assert.Contains(t, queued.Body, "booking-42")
	assert.Contains(t, queued.Body, "NGN 850000")
}

func TestSendContactNotification(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendContactNotification(ctx, "admin@fombinatower.com", "Sani Musa", "sani@example.com", "+2348000000000", "Interested in the event hall")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(5)

	svc := newTestService(db)

	length := svc.QueueLength(ctx)
	assert.Equal(t, int64(5), length)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db)

	err := svc.Send(ctx, "tenant@example.com", "Tenant", "Hello", "Test body", "test")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
