package candidate

import (
	"context"
	"time"
)

// ZipLookup resolves a postal code to city/state. Satisfied by the
// read-through cache in the lookup module; a nil lookup disables backfill.
type ZipLookup interface {
	Lookup(ctx context.Context, zip string) (city, state string, ok bool)
}

// Service handles candidate business logic outside the ingestion pipeline.
type Service struct {
	repo Repository
	zips ZipLookup
}

func NewService(repo Repository, zips ZipLookup) *Service {
	return &Service{repo: repo, zips: zips}
}

func (s *Service) Create(ctx context.Context, req *CreateCandidateRequest) (*Candidate, error) {
	now := time.Now()
	c := &Candidate{
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Address1:       req.Address1,
		Address2:       req.Address2,
		City:           req.City,
		State:          req.State,
		Zip:            req.Zip,
		Phone:          req.Phone,
		SecondaryPhone: req.SecondaryPhone,
		Email:          req.Email,
		LinkedInURL:    req.LinkedInURL,
		Objective:      req.Objective,
		JobOptionCode:  req.JobOptionCode,
		TaxTermCode:    req.TaxTermCode,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.JobOptionCode == "" {
		c.JobOptionCode = DefaultJobOptionCode
	}
	if c.TaxTermCode == "" {
		c.TaxTermCode = DefaultTaxTermCode
	}

	s.backfillLocation(ctx, c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*CandidateDetail, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	education, err := s.repo.GetEducation(ctx, id)
	if err != nil {
		return nil, err
	}
	employment, err := s.repo.GetEmployment(ctx, id)
	if err != nil {
		return nil, err
	}
	skills, err := s.repo.GetSkills(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CandidateDetail{
		Candidate:  *c,
		Education:  education,
		Employment: employment,
		Skills:     skills,
	}, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateCandidateRequest) (*Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&c.FirstName, req.FirstName)
	applyString(&c.MiddleName, req.MiddleName)
	applyString(&c.LastName, req.LastName)
	applyString(&c.Address1, req.Address1)
	applyString(&c.Address2, req.Address2)
	applyString(&c.City, req.City)
	applyString(&c.State, req.State)
	applyString(&c.Zip, req.Zip)
	applyString(&c.Phone, req.Phone)
	applyString(&c.SecondaryPhone, req.SecondaryPhone)
	applyString(&c.Email, req.Email)
	applyString(&c.LinkedInURL, req.LinkedInURL)
	applyString(&c.Objective, req.Objective)
	applyString(&c.JobOptionCode, req.JobOptionCode)
	applyString(&c.TaxTermCode, req.TaxTermCode)

	if req.Zip != nil {
		s.backfillLocation(ctx, c)
	}

	c.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, query string, page, pageSize int) (*SearchPage, error) {
	return s.repo.Search(ctx, query, page, pageSize)
}

// backfillLocation fills city/state from the zip reference data when the
// record carries only a postal code.
func (s *Service) backfillLocation(ctx context.Context, c *Candidate) {
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
