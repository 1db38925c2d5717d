package ingest

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"staffcrm/internal/domain/candidate"
	"staffcrm/internal/parser"
)

// ResumeParser is the parsing-service boundary.
type ResumeParser interface {
	Parse(ctx context.Context, filePath string) (*parser.ParsedResume, error)
	ReadSidecar(filePath string) (*parser.ParsedResume, error)
}

// CandidateStore is the persistence boundary the pipeline consumes.
type CandidateStore interface {
	FindDuplicates(ctx context.Context, firstName, lastName, email string) ([]candidate.DuplicateMatch, error)
	UpsertParsed(ctx context.Context, rec *candidate.Record, ownerID *int64) (int64, error)
	Search(ctx context.Context, query string, page, pageSize int) (*candidate.SearchPage, error)
}

// Options control a single pipeline invocation.
type Options struct {
	// CandidateID, when set, updates that candidate in place instead of
	// creating a new one.
	CandidateID *int64

	// CheckDuplicates turns on the duplicate gate. Re-save flows leave it off.
	CheckDuplicates bool

	// PageSize is the caller's hint for the rehydrated search page.
	PageSize int
}

// Result is what the caller gets back. Exactly one of two shapes is
// populated: a duplicate list (no write happened), or a candidate identity
// with a best-effort search page.
type Result struct {
	CandidateID int64                      `json:"candidate_id,omitempty"`
	Search      *candidate.SearchPage      `json:"search,omitempty"`
	Relocated   bool                       `json:"relocated"`
	Duplicates  []candidate.DuplicateMatch `json:"duplicates,omitempty"`
	FileName    string                     `json:"file_name,omitempty"`
	// InternalFileName lets the duplicate-resolution UI reference the file
	// still sitting in staging when it calls reprocess.
	InternalFileName string `json:"internal_file_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
}

// HasDuplicates reports whether the pipeline stopped at the duplicate gate.
func (r *Result) HasDuplicates() bool { return len(r.Duplicates) > 0 }

// Service runs the resume ingestion pipeline: parse, map, gate, persist,
// relocate, rehydrate. Steps run sequentially; each depends on the output
// of the previous one. The database write is the only durable-and-atomic
// step — everything after it degrades gracefully and never unwinds the
// committed record.
type Service struct {
	parser    ResumeParser
	store     CandidateStore
	stager    *Stager
	relocator *Relocator
	zips      candidate.ZipLookup
}

func NewService(p ResumeParser, store CandidateStore, stager *Stager, relocator *Relocator, zips candidate.ZipLookup) *Service {
	return &Service{
		parser:    p,
		store:     store,
		stager:    stager,
		relocator: relocator,
		zips:      zips,
	}
}

// Stager exposes the staging collaborator to the HTTP handler.
func (s *Service) Stager() *Stager { return s.stager }

// Ingest runs the full pipeline against a freshly staged upload. On a parse
// failure the staged file is left in place and no record is written. When
// the duplicate gate fires, the match list replaces persistence entirely.
func (s *Service) Ingest(ctx context.Context, staged *StagedUpload, opts Options) (*Result, error) {
	parsed, err := s.parser.Parse(ctx, staged.Path())
	if err != nil {
		return nil, err
	}
	return s.process(ctx, staged, parsed, opts)
}

// Reprocess re-runs map → persist → relocate → rehydrate from a file that
// is still sitting in the staging area, preferring the stored sidecar over
// a second parsing-service call. The duplicate gate is skipped: this is the
// resolution flow after duplicates were already surfaced.
func (s *Service) Reprocess(ctx context.Context, staged *StagedUpload, opts Options) (*Result, error) {
	opts.CheckDuplicates = false

	parsed, err := s.parser.ReadSidecar(staged.Path())
	if err != nil {
		parsed, err = s.parser.Parse(ctx, staged.Path())
		if err != nil {
			return nil, err
		}
	}
	return s.process(ctx, staged, parsed, opts)
}

func (s *Service) process(ctx context.Context, staged *StagedUpload, parsed *parser.ParsedResume, opts Options) (*Result, error) {
	rec := MapParsed(parsed)
	rec.Candidate.OriginalFileName = staged.OriginalFileName
	rec.Candidate.InternalFileName = staged.InternalFileName
	s.backfillLocation(ctx, rec)

	// Duplicate gate. Only the fresh-upload flow opts in; an explicit
	// target candidate means the caller already decided.
	if opts.CheckDuplicates && opts.CandidateID == nil {
		matches, err := s.store.FindDuplicates(ctx, rec.Candidate.FirstName, rec.Candidate.LastName, rec.Candidate.Email)
		if err != nil {
			return nil, fmt.Errorf("duplicate check: %w", err)
		}
		if len(matches) > 0 {
			return &Result{
				Duplicates:       matches,
				FileName:         staged.OriginalFileName,
				InternalFileName: staged.InternalFileName,
				Email:            rec.Candidate.Email,
				Phone:            candidate.FormatPhone(rec.Candidate.Phone),
			}, nil
		}
	}

	// The one durable write. After this point nothing may fail the request
	// or touch the committed row.
	id, err := s.store.UpsertParsed(ctx, rec, opts.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("persist candidate: %w", err)
	}

	result := &Result{CandidateID: id, Relocated: true}

	if err := s.relocator.Relocate(staged.OwnerID, strconv.FormatInt(id, 10), staged.InternalFileName, staged.OriginalFileName); err != nil {
		// The record is valid and searchable either way.
		log.Printf("ingest relocate_failed candidate_id=%d file=%q error=%v", id, staged.OriginalFileName, err)
		result.Relocated = false
	}

	page, err := s.store.Search(ctx, "", 1, opts.PageSize)
	if err != nil {
		log.Printf("ingest rehydrate_failed candidate_id=%d error=%v", id, err)
	} else {
		result.Search = page
	}

	return result, nil
}

func (s *Service) backfillLocation(ctx context.Context, rec *candidate.Record) {
	c := &rec.Candidate
	if s.zips == nil || c.Zip == "" || (c.City != "" && c.State != "") {
		return
	}
	if city, state, ok := s.zips.Lookup(ctx, c.Zip); ok {
		if c.City == "" {
			c.City = city
		}
		if c.State == "" {
			c.State = state
		}
	}
}
