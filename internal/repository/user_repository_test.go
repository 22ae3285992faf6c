package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cyberguard/internal/model"
)

func TestUserRepository_UpsertRoleMergesOnDuplicateKey(t *testing.T) {
	db, mock, recorder := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO .users. .*ON DUPLICATE KEY UPDATE .email.=.*,.role.=.*,.updated_at.=").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.UpsertRole(context.Background(), &model.UserProfile{UID: "uid-1", Email: "a@b.c", Role: model.RoleAdmin})

	require.NoError(t, err)
	assert.NotContains(t, recorder.last, "`created_at`=")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUID(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewUserRepository(db)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM .users. WHERE uid = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "email", "role", "created_at", "updated_at"}).
			AddRow("uid-1", "a@b.c", "admin", created, created))
	mock.ExpectQuery("SELECT \\* FROM .users. WHERE uid = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"uid"}))

	profile, err := repo.FindByUID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin())
	assert.Equal(t, created, profile.CreatedAt)

	profile, err = repo.FindByUID(context.Background(), "uid-2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListOrdersByCreation(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM .users. ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows([]string{"uid", "role"}).AddRow("uid-1", "user").AddRow("uid-2", "admin"))

	profiles, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, model.RoleAdmin, profiles[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}
