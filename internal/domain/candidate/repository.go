package candidate

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, id int64) error

	GetEducation(ctx context.Context, candidateID int64) ([]Education, error)
	GetEmployment(ctx context.Context, candidateID int64) ([]Employment, error)
	GetSkills(ctx context.Context, candidateID int64) ([]Skill, error)

	// FindDuplicates is read-only: candidates matching on exact first/last
	// name, or on a non-empty email.
	FindDuplicates(ctx context.Context, firstName, lastName, email string) ([]DuplicateMatch, error)

	// UpsertParsed writes a parsed record and its three collections in one
	// transaction and returns the durable candidate id. A nil ownerID means
	// create; a non-nil one means update-in-place. Collection rows are
	// replaced wholesale; their read-back order is not guaranteed.
	UpsertParsed(ctx context.Context, rec *Record, ownerID *int64) (int64, error)

	// Search runs the standard paginated listing, most recently updated
	// first, so a fresh upsert always surfaces on the first page.
	Search(ctx context.Context, query string, page, pageSize int) (*SearchPage, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Candidate, error) {
	var c Candidate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrCandidateNotFound
	}
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Candidate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&Education{}, &Employment{}, &Skill{}} {
			if err := tx.Where("candidate_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&Candidate{}).Error
	})
}

func (r *repository) GetEducation(ctx context.Context, candidateID int64) ([]Education, error) {
	var rows []Education
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Find(&rows).Error
	return rows, err
}

func (r *repository) GetEmployment(ctx context.Context, candidateID int64) ([]Employment, error) {
	var rows []Employment
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Find(&rows).Error
	return rows, err
}

func (r *repository) GetSkills(ctx context.Context, candidateID int64) ([]Skill, error) {
	var rows []Skill
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Find(&rows).Error
	return rows, err
}

func (r *repository) FindDuplicates(ctx context.Context, firstName, lastName, email string) ([]DuplicateMatch, error) {
	var rows []Candidate

	q := r.db.WithContext(ctx).Model(&Candidate{})
	if email != "" {
		q = q.Where("(first_name = ? AND last_name = ?) OR email = ?", firstName, lastName, email)
	} else {
		q = q.Where("first_name = ? AND last_name = ?", firstName, lastName)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	matches := make([]DuplicateMatch, 0, len(rows))
	for _, c := range rows {
		matches = append(matches, DuplicateMatch{
			ID:    c.ID,
			Name:  strings.TrimSpace(c.FirstName + " " + c.LastName),
			Phone: FormatPhone(c.Phone),
		})
	}
	return matches, nil
}

func (r *repository) UpsertParsed(ctx context.Context, rec *Record, ownerID *int64) (int64, error) {
	var id int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ownerID == nil || *ownerID == 0 {
			c := rec.Candidate
			c.ID = 0
			if c.JobOptionCode == "" {
				c.JobOptionCode = DefaultJobOptionCode
			}
			if c.TaxTermCode == "" {
				c.TaxTermCode = DefaultTaxTermCode
			}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			id = c.ID
		} else {
			id = *ownerID
			var existing Candidate
			if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return ErrCandidateNotFound
				}
				return err
			}
			c := rec.Candidate
			c.ID = id
			c.CreatedAt = existing.CreatedAt
			if c.JobOptionCode == "" {
				c.JobOptionCode = existing.JobOptionCode
			}
			if c.TaxTermCode == "" {
				c.TaxTermCode = existing.TaxTermCode
			}
			if err := tx.Save(&c).Error; err != nil {
				return err
			}
		}

		// Replace the child collections wholesale under the resolved id.
		for _, child := range []interface{}{&Education{}, &Employment{}, &Skill{}} {
			if err := tx.Where("candidate_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		for i := range rec.Education {
			rec.Education[i].ID = 0
			rec.Education[i].CandidateID = id
		}
		if len(rec.Education) > 0 {
			if err := tx.Create(&rec.Education).Error; err != nil {
				return err
			}
		}
		for i := range rec.Employment {
			rec.Employment[i].ID = 0
			rec.Employment[i].CandidateID = id
		}
		if len(rec.Employment) > 0 {
			if err := tx.Create(&rec.Employment).Error; err != nil {
				return err
			}
		}
		for i := range rec.Skills {
			rec.Skills[i].ID = 0
			rec.Skills[i].CandidateID = id
		}
		if len(rec.Skills) > 0 {
			if err := tx.Create(&rec.Skills).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) Search(ctx context.Context, query string, page, pageSize int) (*SearchPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	q := r.db.WithContext(ctx).Model(&Candidate{})
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(keywords) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []Candidate
	err := q.Order("updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &SearchPage{
		Candidates: rows,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// FormatPhone renders a bare 10-digit number as (XXX) XXX-XXXX; anything
// else passes through untouched.
func FormatPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}
