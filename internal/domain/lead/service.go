package lead

import (
	"context"
	"time"
)

var validStatuses = map[Status]bool{
	StatusNew:       true,
	StatusContacted: true,
	StatusQualified: true,
	StatusConverted: true,
	StatusRejected:  true,
}

// Service handles lead business logic
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit creates a new lead. A still-open lead with the same contact email
// is returned as-is instead of creating a duplicate.
func (s *Service) Submit(ctx context.Context, req *SubmitLeadRequest) (*Lead, error) {
	existing, err := s.repo.GetByEmail(ctx, req.ContactEmail)
	if err == nil && existing != nil && !existing.IsConverted() {
		return existing, nil
	}

	now := time.Now()
	l := &Lead{
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		CompanyName:  req.CompanyName,
		Source:       req.Source,
		Status:       StatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if l.Source == "" {
		l.Source = "website"
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]Lead, int64, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus moves a lead through the workflow. Converted leads are final.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status, notes string) (*Lead, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.IsConverted() {
		return nil, ErrAlreadyConverted
	}

	l.Status = status
	if notes != "" {
		l.Notes = notes
	}
	l.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
