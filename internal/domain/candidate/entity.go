package candidate

import "time"

// Defaults applied to every candidate created from a parsed resume.
const (
	DefaultJobOptionCode = "F"  // full-time
	DefaultTaxTermCode   = "W2"
)

// MaxKeywordsLen is the hard cap on the concatenated keyword string.
const MaxKeywordsLen = 500

type Candidate struct {
	ID int64 `gorm:"column:id;primaryKey" json:"id"`

	FirstName  string `gorm:"column:first_name" json:"first_name"`
	MiddleName string `gorm:"column:middle_name" json:"middle_name,omitempty"`
	LastName   string `gorm:"column:last_name" json:"last_name"`

	Address1 string `gorm:"column:address1" json:"address1,omitempty"`
	Address2 string `gorm:"column:address2" json:"address2,omitempty"`
	City     string `gorm:"column:city" json:"city,omitempty"`
	State    string `gorm:"column:state" json:"state,omitempty"`
	Zip      string `gorm:"column:zip" json:"zip,omitempty"`

	Phone          string `gorm:"column:phone" json:"phone,omitempty"`
	SecondaryPhone string `gorm:"column:secondary_phone" json:"secondary_phone,omitempty"`
	Email          string `gorm:"column:email;index" json:"email,omitempty"`
	LinkedInURL    string `gorm:"column:linkedin_url" json:"linkedin_url,omitempty"`

	Keywords          string `gorm:"column:keywords;size:500" json:"keywords,omitempty"`
	ExperienceSummary string `gorm:"column:experience_summary" json:"experience_summary,omitempty"`
	Objective         string `gorm:"column:objective" json:"objective,omitempty"`
	ResumeText        string `gorm:"column:resume_text" json:"-"`

	OriginalFileName string `gorm:"column:original_file_name" json:"original_file_name,omitempty"`
	InternalFileName string `gorm:"column:internal_file_name" json:"-"`

	JobOptionCode string `gorm:"column:job_option_code" json:"job_option_code"`
	TaxTermCode   string `gorm:"column:tax_term_code" json:"tax_term_code"`

	TotalMonthsExperience int `gorm:"column:total_months_experience" json:"total_months_experience"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Candidate) TableName() string { return "candidates" }

type Education struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	CandidateID int64  `gorm:"column:candidate_id;index" json:"-"`
	Degree      string `gorm:"column:degree" json:"degree"`
	College     string `gorm:"column:college" json:"college"`
	State       string `gorm:"column:state" json:"state"`
	Country     string `gorm:"column:country" json:"country"`
	Year        int    `gorm:"column:year" json:"year"`
}

func (Education) TableName() string { return "candidate_education" }

type Employment struct {
	ID          int64  `gorm:"column:id;primaryKey" json:"id"`
	CandidateID int64  `gorm:"column:candidate_id;index" json:"-"`
	Employer    string `gorm:"column:employer" json:"employer"`
	Title       string `gorm:"column:title" json:"title"`
	Location    string `gorm:"column:location" json:"location"`
	Description string `gorm:"column:description" json:"description"`
	StartDate   string `gorm:"column:start_date" json:"start_date"`
	EndDate     string `gorm:"column:end_date" json:"end_date"`
}

func (Employment) TableName() string { return "candidate_employment" }

type Skill struct {
	ID               int64  `gorm:"column:id;primaryKey" json:"id"`
	CandidateID      int64  `gorm:"column:candidate_id;index" json:"-"`
	Skill            string `gorm:"column:skill" json:"skill"`
	LastUsedYear     int    `gorm:"column:last_used_year" json:"last_used_year"`
	MonthsExperience int    `gorm:"column:months_experience" json:"months_experience"`
}

func (Skill) TableName() string { return "candidate_skills" }

// Record is the persistence-ready shape produced by the resume field mapper:
// the scalar candidate row plus the three child collections. Each collection
// is well-formed even when empty.
type Record struct {
	Candidate  Candidate
	Education  []Education
	Employment []Employment
	Skills     []Skill
}

// DuplicateMatch is one row returned by the duplicate check.
type DuplicateMatch struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SearchPage is one page of the standard paginated candidate listing.
type SearchPage struct {
	Candidates []Candidate `json:"candidates"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
}
