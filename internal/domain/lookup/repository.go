package lookup

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrCodeNotFound = errors.New("lookup code not found")

type Repository interface {
	ListByType(ctx context.Context, codeType string) ([]Code, error)
	Create(ctx context.Context, c *Code) error
	Update(ctx context.Context, c *Code) error
	Delete(ctx context.Context, id int64) error

	GetZip(ctx context.Context, zip string) (*ZipCode, error)
	AllZips(ctx context.Context) ([]ZipCode, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByType(ctx context.Context, codeType string) ([]Code, error) {
	var rows []Code
	err := r.db.WithContext(ctx).
		Where("type = ?", codeType).
		Order("sort_order ASC, code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, c *Code) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Code) error {
	res := r.db.WithContext(ctx).Model(&Code{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"code":       c.Code,
		"label":      c.Label,
		"sort_order": c.SortOrder,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCodeNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Code{}).Error
}

func (r *repository) GetZip(ctx context.Context, zip string) (*ZipCode, error) {
	var z ZipCode
	err := r.db.WithContext(ctx).Where("zip = ?", zip).First(&z).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *repository) AllZips(ctx context.Context) ([]ZipCode, error) {
	var rows []ZipCode
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}
