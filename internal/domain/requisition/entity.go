package requisition

import "time"

type Status string

const (
	StatusOpen   Status = "open"
	StatusOnHold Status = "on_hold"
	StatusClosed Status = "closed"
)

// Requisition is an open position at a client company.
type Requisition struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	CompanyID int64  `gorm:"column:company_id;index" json:"company_id" validate:"required"`
	Title     string `gorm:"column:title" json:"title" validate:"required"`

	Description   string `gorm:"column:description" json:"description,omitempty"`
	Location      string `gorm:"column:location" json:"location,omitempty"`
	JobOptionCode string `gorm:"column:job_option_code" json:"job_option_code,omitempty"`
	Openings      int    `gorm:"column:openings" json:"openings"`

	Status Status `gorm:"column:status" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Requisition) TableName() string { return "requisitions" }
