package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	apperrors "portuguese101/internal/errors"
	"portuguese101/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func TestListCategories(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM noun_categories")).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name", "created_at"}).
			AddRow("animals", "Animals", now).
			AddRow("food", "Food", now))

	categories, err := NewCategoryRepository(db).ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "animals", categories[0].ID)
	assert.Equal(t, "Food", categories[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategoriesDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM noun_categories")).WillReturnError(sql.ErrConnDone)

	_, err := NewCategoryRepository(db).ListCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDatabaseError, apperrors.GetCode(err))
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestGetCategoryNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE category_id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "category_name", "created_at"}))

	_, err := NewCategoryRepository(db).GetCategory(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.NotFoundErr)
}

func TestUpsertCategory(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO noun_categories")).
		WithArgs("food", "Food").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewCategoryRepository(db).UpsertCategory(context.Background(), &models.Category{ID: "food", Name: "Food"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNounsBindsCategory(t *testing.T) {
	db, mock := newMockDB(t)
	injection := "Food' OR '1'='1"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE noun_category = $1")).
		WithArgs(injection).
		WillReturnRows(sqlmock.NewRows([]string{"id", "english_noun", "portuguese_noun", "noun_category", "created_at"}))

	nouns, err := NewNounRepository(db).ListNounsByCategory(context.Background(), injection)
	require.NoError(t, err)
	assert.NotNil(t, nouns)
	assert.Empty(t, nouns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNouns(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM nouns")).
		WithArgs("food").
		WillReturnRows(sqlmock.NewRows([]string{"id", "english_noun", "portuguese_noun", "noun_category", "created_at"}).
			AddRow(1, "bread", "pão", "food", now).
			AddRow(2, "cheese", "queijo", "food", now))

	nouns, err := NewNounRepository(db).ListNounsByCategory(context.Background(), "food")
	require.NoError(t, err)
	require.Len(t, nouns, 2)
	assert.Equal(t, "pão", nouns[0].Portuguese)
	assert.Equal(t, "cheese", nouns[1].English)
}

func TestInsertNoun(t *testing.T) {
	tests := []struct {
		name     string
		result   driver.Result
		err      error
		inserted bool
		code     string
	}{
		{name: "inserted", result: sqlmock.NewResult(1, 1), inserted: true},
		{name: "duplicate", result: sqlmock.NewResult(0, 0), inserted: false},
		{name: "unknown category", err: &pq.Error{Code: foreignKeyViolation}, code: apperrors.CodeInvalidInput},
		{name: "other failure", err: sql.ErrConnDone, code: apperrors.CodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			exec := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO nouns")).WithArgs("bread", "pão", "food")
			if tt.err != nil {
				exec.WillReturnError(tt.err)
			} else {
				exec.WillReturnResult(tt.result)
			}

			inserted, err := NewNounRepository(db).InsertNoun(context.Background(), &models.Noun{
				English:    "bread",
				Portuguese: "pão",
				CategoryID: "food",
			})
			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, tt.code, apperrors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.inserted, inserted)
		})
	}
}
