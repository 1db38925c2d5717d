package lookup

// Code types maintained through the admin endpoints.
const (
	TypeJobOption         = "job_option"
	TypeTaxTerm           = "tax_term"
	TypeRequisitionStatus = "requisition_status"
)

// Code is one admin-maintained lookup table entry.
type Code struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	Type      string `gorm:"column:type;index" json:"type" validate:"required"`
	Code      string `gorm:"column:code" json:"code" validate:"required"`
	Label     string `gorm:"column:label" json:"label" validate:"required"`
	SortOrder int    `gorm:"column:sort_order" json:"sort_order"`
}

func (Code) TableName() string { return "lookup_codes" }

// ZipCode is the zip→city/state reference row backing the read-through cache.
type ZipCode struct {
	Zip   string `gorm:"column:zip;primaryKey" json:"zip"`
	City  string `gorm:"column:city" json:"city"`
	State string `gorm:"column:state" json:"state"`
}

func (ZipCode) TableName() string { return "zip_codes" }
