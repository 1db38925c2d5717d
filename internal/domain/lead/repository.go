package lead

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id int64) (*Lead, error)
	GetByEmail(ctx context.Context, email string) (*Lead, error)
	Update(ctx context.Context, l *Lead) error
	List(ctx context.Context, status *Status, limit, offset int) ([]Lead, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrLeadNotFound
	}
	return &l, err
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).
		Where("contact_email = ?", email).
		Order("created_at DESC").
		First(&l).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrLeadNotFound
	}
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&Lead{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Lead
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}
