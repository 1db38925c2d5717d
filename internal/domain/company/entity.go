package company

import "time"

// Company is a client account candidates are placed with.
type Company struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name" validate:"required"`
	Industry string `gorm:"column:industry" json:"industry,omitempty"`
	Website  string `gorm:"column:website" json:"website,omitempty"`
	Phone    string `gorm:"column:phone" json:"phone,omitempty"`
	City     string `gorm:"column:city" json:"city,omitempty"`
	State    string `gorm:"column:state" json:"state,omitempty"`
	Notes    string `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
