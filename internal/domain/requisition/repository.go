package requisition

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrRequisitionNotFound = errors.New("requisition not found")

type Repository interface {
	Create(ctx context.Context, req *Requisition) error
	GetByID(ctx context.Context, id int64) (*Requisition, error)
	Update(ctx context.Context, req *Requisition) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, companyID *int64, status *Status, limit, offset int) ([]Requisition, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Requisition) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Requisition, error) {
	var req Requisition
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrRequisitionNotFound
	}
	return &req, err
}

func (r *repository) Update(ctx context.Context, req *Requisition) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Requisition{}).Error
}

func (r *repository) List(ctx context.Context, companyID *int64, status *Status, limit, offset int) ([]Requisition, int64, error) {
	q := r.db.WithContext(ctx).Model(&Requisition{})
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Requisition
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}
