package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"chirp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name         string
		userID       uint
		mockBehavior func()
		expectedCode string
	}{
		{
			name:   "Success",
			userID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "name", "email"}).
					AddRow(1, "Alice", "alice@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
		},
		{
			name:   "Not Found",
			userID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedCode: models.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, err := repo.GetByID(ctx, tt.userID)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, models.ErrorCode(err))
			} else if assert.NotNil(t, user) {
				assert.NoError(t, err)
				assert.Equal(t, "Alice", user.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(1, "Alice", "alice@example.com", "$2a$10$hash")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("alice@example.com", 1).
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "$2a$10$hash", user.Password)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent Is Not An Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
			WithArgs("nobody@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
			WithArgs("alice@example.com", 1).
			WillReturnError(errors.New("connection timeout"))

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users" ("name","email","password","created_at") VALUES ($1,$2,$3,$4) RETURNING "id"`)).
			WithArgs("Alice", "alice@example.com", "$2a$10$hash", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		user := &models.User{Name: "Alice", Email: "alice@example.com", Password: "$2a$10$hash"}
		err := repo.Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WithArgs("Bob", "alice@example.com", "$2a$10$hash", sqlmock.AnyArg()).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_email" (SQLSTATE 23505)`))
		mock.ExpectRollback()

		err := repo.Create(ctx, &models.User{Name: "Bob", Email: "alice@example.com", Password: "$2a$10$hash"})
		assert.Equal(t, models.CodeEmailTaken, models.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET`)).
		WithArgs("New Name", "alice@example.com", "$2a$10$hash", sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &models.User{ID: 1, Name: "New Name", Email: "alice@example.com", Password: "$2a$10$hash"}
	err := repo.Update(ctx, user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
