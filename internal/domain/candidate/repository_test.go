package candidate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"staffcrm/internal/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Candidate{}, &Education{}, &Employment{}, &Skill{}))
	return db
}

func parsedRecord() *Record {
	return &Record{
		Candidate: Candidate{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@x.com",
			Phone:     "5551234567",
			Keywords:  "Go, PostgreSQL",
		},
		Education: []Education{
			{Degree: "BSc", College: "State U", Year: 2015},
		},
		Employment: []Employment{
			{Employer: "Acme", Title: "Engineer", StartDate: "2016-01", EndDate: ""},
		},
		Skills: []Skill{
			{Skill: "[TECHNICAL]"},
			{Skill: "Go", LastUsedYear: 2024, MonthsExperience: 60},
		},
	}
}

func TestUpsertParsed_CreatesCandidateWithDefaults(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.UpsertParsed(ctx, parsedRecord(), nil)
	require.NoError(t, err)
	require.NotZero(t, id)

	c, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, DefaultJobOptionCode, c.JobOptionCode)
	assert.Equal(t, DefaultTaxTermCode, c.TaxTermCode)

	skills, err := repo.GetSkills(ctx, id)
	require.NoError(t, err)
	require.Len(t, skills, 2)

	edu, err := repo.GetEducation(ctx, id)
	require.NoError(t, err)
	require.Len(t, edu, 1)
	assert.Equal(t, "State U", edu[0].College)
}

func TestUpsertParsed_UpdateReplacesCollections(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.UpsertParsed(ctx, parsedRecord(), nil)
	require.NoError(t, err)

	created, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	rec := parsedRecord()
	rec.Candidate.Phone = "5559876543"
	rec.Skills = []Skill{
		{Skill: "[TECHNICAL]"},
		{Skill: "Rust", LastUsedYear: 2026, MonthsExperience: 12},
		{Skill: "Kubernetes", LastUsedYear: 2026, MonthsExperience: 24},
	}
	rec.Education = nil

	got, err := repo.UpsertParsed(ctx, rec, &id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "5559876543", c.Phone)
	assert.Equal(t, created.CreatedAt.Unix(), c.CreatedAt.Unix())

	// Old collection rows are gone, not appended to.
	skills, err := repo.GetSkills(ctx, id)
	require.NoError(t, err)
	assert.Len(t, skills, 3)

	edu, err := repo.GetEducation(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, edu)
}

func TestUpsertParsed_UpdateUnknownCandidate(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	missing := int64(9999)
	_, err := repo.UpsertParsed(context.Background(), parsedRecord(), &missing)
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestFindDuplicates_NameAndEmailMatching(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.UpsertParsed(ctx, parsedRecord(), nil)
	require.NoError(t, err)

	other := parsedRecord()
	other.Candidate.FirstName = "John"
	other.Candidate.Email = "john@x.com"
	_, err = repo.UpsertParsed(ctx, other, nil)
	require.NoError(t, err)

	// Exact name match.
	matches, err := repo.FindDuplicates(ctx, "Jane", "Doe", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Jane Doe", matches[0].Name)
	assert.Equal(t, "(555) 123-4567", matches[0].Phone)

	// Email match with a different name.
	matches, err = repo.FindDuplicates(ctx, "Janet", "Doer", "john@x.com")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "John Doe", matches[0].Name)

	// Empty email must not match candidates by email at all.
	matches, err = repo.FindDuplicates(ctx, "Nobody", "Here", "")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearch_FreshestFirstAndPaginated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	names := []string{"Alpha", "Beta", "Gamma"}
	var lastID int64
	for i, n := range names {
		rec := parsedRecord()
		rec.Candidate.FirstName = n
		rec.Candidate.Email = n + "@x.com"
		id, err := repo.UpsertParsed(ctx, rec, nil)
		require.NoError(t, err)
		// Spread updated_at so ordering is deterministic.
		ts := time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, db.Model(&Candidate{}).Where("id = ?", id).Update("updated_at", ts).Error)
		lastID = id
	}

	page, err := repo.Search(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Candidates, 2)
	assert.Equal(t, lastID, page.Candidates[0].ID)

	page, err = repo.Search(ctx, "", 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Candidates, 1)
	assert.Equal(t, "Alpha", page.Candidates[0].FirstName)
}

func TestSearch_MatchesKeywordsCaseInsensitive(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.UpsertParsed(ctx, parsedRecord(), nil)
	require.NoError(t, err)

	page, err := repo.Search(ctx, "postgresql", 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Candidates, 1)
	assert.Equal(t, "Jane", page.Candidates[0].FirstName)

	page, err = repo.Search(ctx, "haskell", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Candidates)
	assert.Zero(t, page.Total)
}

func TestDelete_RemovesChildRows(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	id, err := repo.UpsertParsed(ctx, parsedRecord(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	skills, err := repo.GetSkills(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("5551234567"))
	assert.Equal(t, "(555) 123-4567", FormatPhone("555-123-4567"))
	assert.Equal(t, "+15551234567", FormatPhone("+15551234567"))
	assert.Equal(t, "", FormatPhone(""))
	assert.Equal(t, "12345", FormatPhone("12345"))
}
