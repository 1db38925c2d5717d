package lead

// SubmitLeadRequest represents a new lead submission
type SubmitLeadRequest struct {
	ContactName  string `json:"contact_name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone"`
	CompanyName  string `json:"company_name" validate:"required"`
	Source       string `json:"source"`
}

// UpdateLeadStatusRequest represents a status update
type UpdateLeadStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=new contacted qualified converted rejected"`
	Notes  string `json:"notes"`
}
