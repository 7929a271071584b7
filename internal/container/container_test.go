package container

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portuguese101/internal/config"
	"portuguese101/internal/errors"
)

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))

	c, err := New(&config.Config{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, c.Logger)
}

func TestInitWithDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()
	mock.ExpectClose()

	c, err := New(&config.Config{}, nil)
	require.NoError(t, err)

	require.NoError(t, c.InitWithDatabase(context.Background(), sqlx.NewDb(db, "postgres")))
	assert.NotNil(t, c.Categories)
	assert.NotNil(t, c.Nouns)
	assert.NotNil(t, c.Importer)

	require.NoError(t, c.Shutdown())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitWithDatabaseFailedPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing().WillReturnError(assert.AnError)

	c, err := New(&config.Config{}, nil)
	require.NoError(t, err)

	err = c.InitWithDatabase(context.Background(), sqlx.NewDb(db, "postgres"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
	assert.Nil(t, c.DB)
	assert.Nil(t, c.Categories)

	assert.Error(t, c.InitWithDatabase(context.Background(), nil))
}

func TestShutdownWithoutDatabase(t *testing.T) {
	c, err := New(&config.Config{}, nil)
	require.NoError(t, err)
	assert.NoError(t, c.Shutdown())
}
