package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementRecorder matches expectations as regular expressions and keeps the
// last statement GORM sent.
type statementRecorder struct {
	last string
}

func (r *statementRecorder) Match(expectedSQL, actualSQL string) error {
	r.last = actualSQL
	return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *statementRecorder) {
	t.Helper()
	recorder := &statementRecorder{}
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock, recorder
}
