package lead

import "time"

// Status represents lead status
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusConverted Status = "converted"
	StatusRejected  Status = "rejected"
)

// Lead is a prospective client contact: a company that may open
// requisitions with the agency.
type Lead struct {
	ID int64 `gorm:"column:id;primaryKey" json:"id"`

	ContactName  string `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail string `gorm:"column:contact_email;index" json:"contact_email"`
	ContactPhone string `gorm:"column:contact_phone" json:"contact_phone"`
	CompanyName  string `gorm:"column:company_name" json:"company_name"`

	Source string `gorm:"column:source" json:"source,omitempty"`
	Status Status `gorm:"column:status" json:"status"`
	Notes  string `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// IsConverted returns true if the lead became a client company.
func (l *Lead) IsConverted() bool {
	return l.Status == StatusConverted
}
