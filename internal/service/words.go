package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"vocabtracker/internal/domain"
	"vocabtracker/internal/repository"
	"vocabtracker/internal/wordstore"

	"go.uber.org/zap"
)

const csvMIME = "text/csv"

// WordOptions configures a WordService
type WordOptions struct {
	// Key is the single key the whole list is stored under
	Key            string
	PageSize       int
	ExportFileName string
}

// WordService handles word list business logic on top of the store
type WordService struct {
	stateRepo repository.StateRepository
	opts      WordOptions
	logger    *zap.Logger
	store     *wordstore.Store
}

// NewWordService loads the persisted list once and wires write-through persistence.
// A missing or malformed stored value yields an empty list; only repository errors fail.
func NewWordService(stateRepo repository.StateRepository, opts WordOptions, logger *zap.Logger) (*WordService, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = domain.DefaultPageSize
	}

	s := &WordService{
		stateRepo: stateRepo,
		opts:      opts,
		logger:    logger,
	}

	raw, err := stateRepo.Load(opts.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %q: %w", opts.Key, err)
	}

	entries := s.decode(raw)
	s.store = wordstore.New(entries, s.persist)

	logger.Info("Word list loaded",
		zap.String("key", opts.Key),
		zap.Int("words", s.store.Len()),
	)

	return s, nil
}

func (s *WordService) decode(raw []byte) []domain.WordEntry {
	if len(raw) == 0 {
		return nil
	}

	var entries []domain.WordEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("Stored word list is malformed, starting empty",
			zap.String("key", s.opts.Key),
			zap.Error(err),
		)
		return nil
	}
	return entries
}

func (s *WordService) persist(entries []domain.WordEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode word list: %w", err)
	}
	return s.stateRepo.Save(s.opts.Key, data)
}

// AddWord commits a new entry. It returns domain.ErrValidationSkip when the
// foreign word or translation is blank. Persistence failures are logged only.
func (s *WordService) AddWord(in domain.WordInput) (domain.WordEntry, error) {
	entry, err := s.store.Add(in)
	if errors.Is(err, domain.ErrValidationSkip) {
		s.logger.Debug("Add skipped", zap.Error(err))
		return domain.WordEntry{}, err
	}
	if err != nil {
		s.logger.Error("Failed to persist after add",
			zap.Int64("word_id", entry.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("Word added",
		zap.Int64("word_id", entry.ID),
		zap.String("foreign", entry.Foreign),
		zap.String("english", entry.English),
	)
	return entry, nil
}

// DeleteWord removes an entry by ID and reports whether it was there.
// Deleting an unknown ID is a no-op.
func (s *WordService) DeleteWord(id int64) bool {
	_, existed := s.store.Get(id)

	if err := s.store.Delete(id); err != nil {
		s.logger.Error("Failed to persist after delete",
			zap.Int64("word_id", id),
			zap.Error(err),
		)
	}

	s.logger.Info("Word deleted", zap.Int64("word_id", id), zap.Bool("existed", existed))
	return existed
}

// Browse builds the page the session points at. Pages past the end are empty.
func (s *WordService) Browse(session domain.BrowseSession) domain.Page {
	view := s.store.Search(session.Term)

	return domain.Page{
		Term:       session.Term,
		Number:     session.Page,
		Size:       s.opts.PageSize,
		TotalPages: wordstore.PageCount(len(view), s.opts.PageSize),
		Matches:    len(view),
		Items:      wordstore.Paginate(view, session.Page, s.opts.PageSize),
	}
}

// TotalPages returns the page count for a search term
func (s *WordService) TotalPages(term string) int {
	return wordstore.PageCount(len(s.store.Search(term)), s.opts.PageSize)
}

// Count returns the number of stored words
func (s *WordService) Count() int {
	return s.store.Len()
}

// Export serializes the whole list (not the filtered view) as CSV
func (s *WordService) Export() (domain.Export, error) {
	data, err := wordstore.ExportCSV(s.store.Entries())
	if err != nil {
		return domain.Export{}, err
	}

	return domain.Export{
		FileName: s.opts.ExportFileName,
		MIME:     csvMIME,
		Data:     data,
	}, nil
}
