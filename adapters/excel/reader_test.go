package excel

import (
	"path/filepath"
	"testing"

	"portuguese101/internal/errors"
	"portuguese101/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			r := row
			require.NoError(t, f.SetSheetRow(name, cell, &r))
		}
	}

	path := filepath.Join(t.TempDir(), "vocabulary.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadVocabulary(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		CategoriesSheet: {
			{"id", "name"},
			{"food", "Food"},
			{" animals ", "Animals"},
			{},
			{"weather"},
		},
		NounsSheet: {
			{"english", "portuguese", "category"},
			{"bread", "pão", "food"},
			{"dog", "cão", "animals"},
			{"cat", "", "animals"},
		},
	})

	data, err := NewVocabularyReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, []models.Category{{ID: "food", Name: "Food"}, {ID: "animals", Name: "Animals"}}, data.Vocabulary.Categories)
	require.Len(t, data.Vocabulary.Nouns, 2)
	assert.Equal(t, "pão", data.Vocabulary.Nouns[0].Portuguese)
	assert.Equal(t, "animals", data.Vocabulary.Nouns[1].CategoryID)

	require.Len(t, data.Skipped, 2)
	assert.Equal(t, "Categories row 5: expected id and name", data.Skipped[0].String())
	assert.Equal(t, RowError{Sheet: NounsSheet, Row: 4, Reason: "expected english, portuguese and category"}, data.Skipped[1])
}

func TestReadMissingSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		CategoriesSheet: {{"id", "name"}},
	})

	_, err := NewVocabularyReader(path).Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewVocabularyReader(filepath.Join(t.TempDir(), "nope.xlsx")).Read()
	assert.ErrorIs(t, err, errors.NotFoundErr)
}
