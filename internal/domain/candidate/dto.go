package candidate

// CreateCandidateRequest covers manual candidate entry (no resume upload).
type CreateCandidateRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" validate:"required"`

	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`

	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondary_phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	LinkedInURL    string `json:"linkedin_url"`

	Objective     string `json:"objective"`
	JobOptionCode string `json:"job_option_code"`
	TaxTermCode   string `json:"tax_term_code"`
}

type UpdateCandidateRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`

	Address1 *string `json:"address1,omitempty"`
	Address2 *string `json:"address2,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Zip      *string `json:"zip,omitempty"`

	Phone          *string `json:"phone,omitempty"`
	SecondaryPhone *string `json:"secondary_phone,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedInURL    *string `json:"linkedin_url,omitempty"`

	Objective     *string `json:"objective,omitempty"`
	JobOptionCode *string `json:"job_option_code,omitempty"`
	TaxTermCode   *string `json:"tax_term_code,omitempty"`
}

// CandidateDetail is the single-record read model: the scalar row plus the
// three child collections.
type CandidateDetail struct {
	Candidate  Candidate    `json:"candidate"`
	Education  []Education  `json:"education"`
	Employment []Employment `json:"employment"`
	Skills     []Skill      `json:"skills"`
}
