package contact

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func TestRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(sqlmock.AnyArg(), "Amina Bello", "amina@example.com", "+2348000000000", "Interested in the event hall for December.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "status", "created_at"}).
			AddRow("m1", "Amina Bello", "amina@example.com", "+2348000000000", "Interested in the event hall for December.", "new", now))

	created, err := repo.Create(context.Background(), &Message{
		Name:    "Amina Bello",
		Email:   "amina@example.com",
		Phone:   "+2348000000000",
		Message: "Interested in the event hall for December.",
	})

	require.NoError(t, err)
	assert.Equal(t, "m1", created.ID)
	assert.Equal(t, StatusNew, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM messages ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "status", "created_at"}).
			AddRow("m2", "Tunde Okafor", "tunde@example.com", "+2348111111111", "Quote for a corporate floor, please.", "new", now).
			AddRow("m1", "Amina Bello", "amina@example.com", "+2348000000000", "Interested in the event hall for December.", "new", now))

	messages, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m2", messages[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
