package excel

import (
	"fmt"
	"os"
	"strings"

	"portuguese101/internal/errors"
	"portuguese101/models"

	"github.com/xuri/excelize/v2"
)

// Sheet names of a vocabulary workbook. Each sheet starts with a header row.
const (
	CategoriesSheet = "Categories"
	NounsSheet      = "Nouns"
)

// RowError describes a row that was skipped.
type RowError struct {
	Sheet  string
	Row    int // 1-based, as shown by spreadsheet tools
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("%s row %d: %s", e.Sheet, e.Row, e.Reason)
}

// ImportData is the result of reading a workbook.
type ImportData struct {
	Vocabulary models.Vocabulary
	Skipped    []RowError
}

// VocabularyReader reads category and noun sheets from an .xlsx file
type VocabularyReader struct {
	filePath string
}

// NewVocabularyReader creates a reader for filePath
func NewVocabularyReader(filePath string) *VocabularyReader {
	return &VocabularyReader{filePath: filePath}
}

// Read opens the workbook and extracts its vocabulary
func (r *VocabularyReader) Read() (*ImportData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("workbook " + r.filePath)
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, errors.Wrap(err, "failed to open workbook"))
	}
	defer f.Close()

	return ReadVocabulary(f)
}

// ReadVocabulary extracts categories (id, name) and nouns (english,
// portuguese, category id). Blank rows are ignored; incomplete rows are
// reported in Skipped.
func ReadVocabulary(f *excelize.File) (*ImportData, error) {
	data := &ImportData{}

	categoryRows, err := readSheet(f, CategoriesSheet)
	if err != nil {
		return nil, err
	}
	for i, row := range categoryRows {
		cells, ok := cellsOf(row, 2)
		if blank(row) {
			continue
		}
		if !ok {
			data.Skipped = append(data.Skipped, RowError{Sheet: CategoriesSheet, Row: i + 2, Reason: "expected id and name"})
			continue
		}
		data.Vocabulary.Categories = append(data.Vocabulary.Categories, models.Category{ID: cells[0], Name: cells[1]})
	}

	nounRows, err := readSheet(f, NounsSheet)
	if err != nil {
		return nil, err
	}
	for i, row := range nounRows {
		cells, ok := cellsOf(row, 3)
		if blank(row) {
			continue
		}
		if !ok {
			data.Skipped = append(data.Skipped, RowError{Sheet: NounsSheet, Row: i + 2, Reason: "expected english, portuguese and category"})
			continue
		}
		data.Vocabulary.Nouns = append(data.Vocabulary.Nouns, models.Noun{
			English:    cells[0],
			Portuguese: cells[1],
			CategoryID: cells[2],
		})
	}

	return data, nil
}

// readSheet returns the rows after the header.
func readSheet(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, errors.Wrapf(err, "failed to read sheet %s", sheet))
	}
	if len(rows) == 0 {
		return nil, errors.InvalidInput("sheet " + sheet + " has no header row")
	}
	return rows[1:], nil
}

// cellsOf returns the first n trimmed cells and whether all are non-empty.
func cellsOf(row []string, n int) ([]string, bool) {
	cells := make([]string, n)
	ok := true
	for i := range cells {
		if i < len(row) {
			cells[i] = strings.TrimSpace(row[i])
		}
		if cells[i] == "" {
			ok = false
		}
	}
	return cells, ok
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
