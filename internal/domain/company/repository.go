package company

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string, limit, offset int) ([]Company, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrCompanyNotFound
	}
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Company{}).Error
}

func (r *repository) List(ctx context.Context, query string, limit, offset int) ([]Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&Company{})
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Company
	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}
