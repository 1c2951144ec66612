package users

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

// The conflict-ignore clause is the whole first-write-wins contract, so
// the expectation pins it in the statement text.
const upsertPattern = `(?s)INSERT INTO users.*ON CONFLICT \(id\) DO NOTHING`

func TestUpsertInsertsOnFirstContact(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(upsertPattern).
		WithArgs(int64(1), "anna", "Анна", "Иванова").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), 1, "anna", "Анна", "Иванова"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpsertKeepsFirstWrite(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(upsertPattern).
		WithArgs(int64(1), "anna", "Анна", "Иванова").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Re-contact with different identity fields hits the conflict clause:
	// zero rows touched, no error surfaced.
	mock.ExpectExec(upsertPattern).
		WithArgs(int64(1), "renamed", "Другое", "Имя").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Upsert(context.Background(), 1, "anna", "Анна", "Иванова"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.Upsert(context.Background(), 1, "renamed", "Другое", "Имя"); err != nil {
		t.Fatalf("duplicate upsert must be a no-op, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordResultUpdatesRegisteredUser(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`(?s)UPDATE users.*SET test_result = \$1`).
		WithArgs("A", "A,B,A,C,A,B,A,A", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RecordResult(context.Background(), 5, "A", "A,B,A,C,A,B,A,A"); err != nil {
		t.Fatalf("record result: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordResultRejectsUnknownUser(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec(`(?s)UPDATE users.*SET test_result = \$1`).
		WithArgs("B", "B,B,B,B,B,B,B,B", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.RecordResult(context.Background(), 404, "B", "B,B,B,B,B,B,B,B"); err == nil {
		t.Fatal("expected error when no row matches the user id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
