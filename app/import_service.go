package app

import (
	"context"

	"go.uber.org/zap"

	"portuguese101/internal/errors"
	"portuguese101/models"
	"portuguese101/ports"
)

// ImportSummary counts what an import wrote.
type ImportSummary struct {
	Categories     int
	NounsInserted  int
	NounsDuplicate int
	NounsRejected  int
}

// ImportService loads a vocabulary into the repositories
type ImportService struct {
	categories ports.CategoryRepository
	nouns      ports.NounRepository
	logger     *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(categories ports.CategoryRepository, nouns ports.NounRepository, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		categories: categories,
		nouns:      nouns,
		logger:     logger,
	}
}

// Import upserts categories first, then inserts nouns. Nouns naming an
// unknown category are rejected and counted; any other failure aborts.
func (s *ImportService) Import(ctx context.Context, vocab models.Vocabulary) (ImportSummary, error) {
	var summary ImportSummary

	for i := range vocab.Categories {
		category := vocab.Categories[i]
		if err := s.categories.UpsertCategory(ctx, &category); err != nil {
			return summary, errors.Wrapf(err, "failed to import category %s", category.ID)
		}
		summary.Categories++
	}

	for i := range vocab.Nouns {
		noun := vocab.Nouns[i]
		inserted, err := s.nouns.InsertNoun(ctx, &noun)
		switch {
		case errors.GetCode(err) == errors.CodeInvalidInput:
			s.logger.Warn("noun rejected",
				zap.String("english", noun.English),
				zap.String("category", noun.CategoryID),
				zap.Error(err))
			summary.NounsRejected++
		case err != nil:
			return summary, errors.Wrapf(err, "failed to import noun %s", noun.English)
		case inserted:
			summary.NounsInserted++
		default:
			summary.NounsDuplicate++
		}
	}

	s.logger.Info("vocabulary imported",
		zap.Int("categories", summary.Categories),
		zap.Int("nouns_inserted", summary.NounsInserted),
		zap.Int("nouns_duplicate", summary.NounsDuplicate),
		zap.Int("nouns_rejected", summary.NounsRejected))

	return summary, nil
}
