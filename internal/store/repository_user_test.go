package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, config.DriverPostgres, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}

func testUser() models.User {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return models.User{
		UserID:       "0190f5a2-7c1e-7000-8000-000000000001",
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (user_id,username,email,password_hash,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != user {
		t.Errorf("expected %+v, got %+v", user, created)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser()
	rows := sqlmock.NewRows(userRowColumns).
		AddRow(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, username, email, password_hash, created_at, updated_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("alice@x.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != user {
		t.Errorf("expected %+v, got %+v", user, found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("id-1").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByID(context.Background(), "id-1")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected wrapped ErrScanningRow, got %v", err)
	}
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow("id-1") // intentionally wrong shape

	mock.ExpectQuery("SELECT user_id").
		WithArgs("id-1").
		WillReturnRows(rows)

	_, err := repo.FindUserByID(context.Background(), "id-1")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := testUser()
	user.Username = "alice2"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET username = $1, email = $2, password_hash = $3, updated_at = $4 WHERE user_id = $5")).
		WithArgs(user.Username, user.Email, user.PasswordHash, user.UpdatedAt, user.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT user_id").
		WithArgs(user.UserID).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt))

	updated, err := repo.UpdateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "alice2" {
		t.Errorf("expected username alice2, got %s", updated.Username)
	}
}

func TestUpdateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(mock sqlmock.Sqlmock)
		want    error
	}{
		{
			name: "duplicate email",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			want: ErrEmailAlreadyExists,
		},
		{
			name: "missing user",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: ErrNoUserWasFound,
		},
		{
			name: "driver failure",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").WillReturnError(errors.New("conn reset"))
			},
			want: ErrExecutingStatement,
		},
		{
			name: "rows affected unavailable",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewErrorResult(errors.New("driver lost result")))
			},
			want: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()
			tt.prepare(mock)

			_, err := repo.UpdateUser(context.Background(), testUser())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE user_id = $1")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteUser(context.Background(), "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteUser(context.Background(), "id-1"); !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound on second delete, got %v", err)
	}
}

func TestDeleteUser_RowsAffectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("driver lost result")))

	err := repo.DeleteUser(context.Background(), "id-1")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("driver failure must not be reported as a missing user")
	}
}
