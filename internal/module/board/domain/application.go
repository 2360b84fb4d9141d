package domain

import "time"

// ApplicationStatus is the review state of a submitted application.
// Status changes go through the dedicated status endpoint only.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsValid reports whether s is a status the API accepts.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Applicant is the candidate profile nested inside an application. It is
// read-only from the dashboard's perspective.
type Applicant struct {
	Username              string `json:"username"`
	FullName              string `json:"full_name,omitempty"`
	Email                 string `json:"email"`
	PhoneNumber           string `json:"phone_number,omitempty"`
	Gender                string `json:"gender,omitempty"`
	MaritalStatus         string `json:"marital_status,omitempty"`
	Nationality           string `json:"nationality,omitempty"`
	CurrentLocation       string `json:"current_location,omitempty"`
	PreferredJobLocation  string `json:"preferred_job_location,omitempty"`
	Languages             string `json:"languages,omitempty"`
	DrivingLicense        string `json:"driving_license,omitempty"`
	VisaStatus            string `json:"visa_status,omitempty"`
	PassportExpiryDate    string `json:"passport_expiry_date,omitempty"`
	HighestQualification  string `json:"highest_qualification,omitempty"`
	YearsOfExperience     string `json:"years_of_experience,omitempty"`
	ExpectedSalary        string `json:"expected_salary,omitempty"`
	Currency              string `json:"currency,omitempty"`
	PreferredDesignation  string `json:"preferred_designation,omitempty"`
	AvailabilityToJoin    string `json:"availability_to_join,omitempty"`
	LinkedinURL           string `json:"linkedin_url,omitempty"`
	Certificate           string `json:"certificate,omitempty"`
	ProfilePicture        string `json:"profile_picture,omitempty"`
	EducationDetails      string `json:"education_details,omitempty"`
	PastEmploymentDetails string `json:"past_employment_details,omitempty"`
	IsVerified            bool   `json:"is_verified"`
}

// DisplayName prefers the full name and falls back to the username.
func (a Applicant) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Username
}

// Application is a candidate's submission for a job. Applicant and Job
// are server-owned sub-objects; only Status is mutable from here.
type Application struct {
	ID          int64             `json:"id"`
	Applicant   Applicant         `json:"applicant"`
	Job         Job               `json:"job"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	Resume      string            `json:"resume,omitempty"`
	CoverLetter string            `json:"cover_letter,omitempty"`
}

// EntityID implements the screen Entity contract.
func (a Application) EntityID() int64 { return a.ID }
