package ingest

import (
	"strings"

	"staffcrm/internal/domain/candidate"
	"staffcrm/internal/parser"
)

// technicalSkillCategory tags the skill rows that are kept for persistence;
// every other taxonomy entry only contributes to the keyword string.
const technicalSkillCategory = "Technical"

// placeholderSkill is required by the persistence contract: the skills
// collection may never arrive empty, so this row is prepended before
// filtering whether or not any qualifying skills exist.
const placeholderSkill = "[TECHNICAL]"

const keywordSeparator = ", "

// MapParsed transforms a parse result into the persistence-ready record.
// It is pure and never fails: any missing field maps to an empty string,
// zero, or an empty collection.
func MapParsed(p *parser.ParsedResume) *candidate.Record {
	rec := &candidate.Record{
		Candidate: candidate.Candidate{
			FirstName:  p.FirstName,
			MiddleName: p.MiddleName,
			LastName:   p.LastName,

			Address1: p.Address.Street,
			City:     p.Address.City,
			State:    p.Address.State,
			Zip:      p.Address.Zip,

			Email:       p.PrimaryEmail(),
			LinkedInURL: p.LinkedInURL,

			Keywords:          buildKeywords(p.Skills),
			ExperienceSummary: buildExperienceSummary(p.ExecutiveSummary, p.ManagementSummary),
			Objective:         p.Objective,
			ResumeText:        p.ResumeText,

			JobOptionCode: candidate.DefaultJobOptionCode,
			TaxTermCode:   candidate.DefaultTaxTermCode,

			TotalMonthsExperience: p.MonthsExperience,
		},
		Education:  make([]candidate.Education, 0, len(p.Education)),
		Employment: make([]candidate.Employment, 0, len(p.Employment)),
		Skills:     mapSkills(p.Skills),
	}

	if len(p.Phones) > 0 {
		rec.Candidate.Phone = p.Phones[0]
	}
	if len(p.Phones) > 1 {
		rec.Candidate.SecondaryPhone = p.Phones[1]
	}

	for _, e := range p.Education {
		rec.Education = append(rec.Education, candidate.Education{
			Degree:  e.Degree,
			College: e.College,
			State:   e.State,
			Country: e.Country,
			Year:    e.Year,
		})
	}

	for _, e := range p.Employment {
		end := e.EndDate
		if e.IsCurrent {
			// A current position carries no end date, whatever the parser says.
			end = ""
		}
		rec.Employment = append(rec.Employment, candidate.Employment{
			Employer:    e.Employer,
			Title:       e.Title,
			Location:    e.Location,
			Description: e.Description,
			StartDate:   e.StartDate,
			EndDate:     end,
		})
	}

	return rec
}

// buildKeywords concatenates every taxonomy skill name, trims the leading
// separator and hard-truncates to the column cap. Truncation is by byte;
// the stored prefix is exactly what was concatenated.
func buildKeywords(skills []parser.SkillEntry) string {
	var b strings.Builder
	for _, s := range skills {
		if s.Name == "" {
			continue
		}
		b.WriteString(keywordSeparator)
		b.WriteString(s.Name)
	}
	kw := strings.TrimPrefix(b.String(), keywordSeparator)
	if len(kw) > candidate.MaxKeywordsLen {
		kw = kw[:candidate.MaxKeywordsLen]
	}
	return kw
}

// buildExperienceSummary joins the executive and management narratives with
// a line break, keeping the break when only one side is present.
func buildExperienceSummary(executive, management string) string {
	if executive == "" && management == "" {
		return ""
	}
	return executive + "\n" + management
}

// mapSkills keeps only the technical-category rows, after unconditionally
// prepending the placeholder row the upsert contract expects.
func mapSkills(skills []parser.SkillEntry) []candidate.Skill {
	entries := make([]parser.SkillEntry, 0, len(skills)+1)
	entries = append(entries, parser.SkillEntry{
		Name:     placeholderSkill,
		Category: technicalSkillCategory,
	})
	entries = append(entries, skills...)

	out := make([]candidate.Skill, 0, len(entries))
	for _, s := range entries {
		if !strings.EqualFold(s.Category, technicalSkillCategory) {
			continue
		}
		out = append(out, candidate.Skill{
			Skill:            s.Name,
			LastUsedYear:     s.LastUsedYear,
			MonthsExperience: s.MonthsExperience,
		})
	}
	return out
}
