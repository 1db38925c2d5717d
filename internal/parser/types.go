package parser

// ParsedResume is the structured result returned by the parsing service.
// Every field is optional; the mapper downstream tolerates any of them
// being absent.
type ParsedResume struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`

	Emails []string `json:"emails"`
	Phones []string `json:"phones"`

	Address Address `json:"address"`

	LinkedInURL string `json:"linkedin_url"`

	ExecutiveSummary  string `json:"executive_summary"`
	ManagementSummary string `json:"management_summary"`
	Objective         string `json:"objective"`

	// Full plain-text body of the resume.
	ResumeText string `json:"resume_text"`

	MonthsExperience int `json:"months_experience"`

	Education  []EducationEntry  `json:"education"`
	Employment []EmploymentEntry `json:"employment"`
	Skills     []SkillEntry      `json:"skills"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type EducationEntry struct {
	Degree  string `json:"degree"`
	College string `json:"college"`
	State   string `json:"state"`
	Country string `json:"country"`
	Year    int    `json:"year"`
}

type EmploymentEntry struct {
	Employer    string `json:"employer"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
}

type SkillEntry struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	LastUsedYear     int    `json:"last_used_year"`
	MonthsExperience int    `json:"months_experience"`
}

// PrimaryEmail returns the first parsed email, or "".
func (p *ParsedResume) PrimaryEmail() string {
	if len(p.Emails) > 0 {
		return p.Emails[0]
	}
	return ""
}

// PrimaryPhone returns the first parsed phone, or "".
func (p *ParsedResume) PrimaryPhone() string {
	if len(p.Phones) > 0 {
		return p.Phones[0]
	}
	return ""
}
