package migration

import (
	"context"
	"database/sql"
	"testing"

	"portuguese101/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCreatesSchemaInOrder(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS noun_categories").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS nouns").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_nouns_noun_category").WillReturnResult(sqlmock.NewResult(0, 0))

	runner := NewRunner()
	require.NoError(t, runner.Run(context.Background(), sqlx.NewDb(raw, "postgres")))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "1.0.0", runner.Version())
}

func TestRunStopsOnFailure(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS noun_categories").WillReturnError(sql.ErrConnDone)

	err = NewRunner().Run(context.Background(), sqlx.NewDb(raw, "postgres"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
	assert.Contains(t, err.Error(), "noun_categories table")
	assert.NoError(t, mock.ExpectationsWereMet())
}
