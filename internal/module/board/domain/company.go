package domain

import (
	"strings"

	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// Industry is the fixed set of sectors the company form offers.
type Industry string

const (
	IndustryInformationTechnology Industry = "Information Technology"
	IndustryHealthcare            Industry = "Healthcare"
	IndustryConstruction          Industry = "Construction"
	IndustryFinance               Industry = "Finance"
	IndustryRetail                Industry = "Retail"
	IndustryHospitality           Industry = "Hospitality"
	IndustryEducation             Industry = "Education"
	IndustryRealEstate            Industry = "Real Estate"
	IndustryOthers                Industry = "Others"
)

// Industries lists every valid option in form order.
func Industries() []Industry {
	return []Industry{
		IndustryInformationTechnology,
		IndustryHealthcare,
		IndustryConstruction,
		IndustryFinance,
		IndustryRetail,
		IndustryHospitality,
		IndustryEducation,
		IndustryRealEstate,
		IndustryOthers,
	}
}

// IsValid reports whether i is one of the fixed options.
func (i Industry) IsValid() bool {
	for _, candidate := range Industries() {
		if i == candidate {
			return true
		}
	}
	return false
}

// Company is an employer as returned by the API. Jobs is populated on
// some list endpoints so the dashboard can show a posting count.
type Company struct {
	ID                       int64    `json:"id"`
	Name                     string   `json:"name"`
	Description              string   `json:"description,omitempty"`
	Industry                 Industry `json:"industry"`
	Location                 string   `json:"location"`
	Logo                     string   `json:"company_logo,omitempty"`
	CommunicationPreferences bool     `json:"communication_preferences"`
	Jobs                     []Job    `json:"jobs,omitempty"`
}

// EntityID implements the screen Entity contract.
func (c Company) EntityID() int64 { return c.ID }

// Attachment is a file the presentation layer hands over for upload,
// e.g. a company logo or a resume.
type Attachment struct {
	Filename string
	Content  []byte
}

// CompanyDraft is the tagged submit payload for creating or updating a
// company. When Logo is set the gateway must switch to multipart
// encoding.
type CompanyDraft struct {
	Name                     string
	Description              string
	Industry                 Industry
	Location                 string
	CommunicationPreferences bool
	Logo                     *Attachment
}

// Validate applies the required-field checks before any network call.
func (d CompanyDraft) Validate() error {
	var errs apierr.ValidationErrors
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, apierr.ValidationError{Field: "name", Message: "company name is required"})
	}
	if strings.TrimSpace(d.Location) == "" {
		errs = append(errs, apierr.ValidationError{Field: "location", Message: "location is required"})
	}
	if d.Industry == "" {
		errs = append(errs, apierr.ValidationError{Field: "industry", Message: "industry is required"})
	} else if !d.Industry.IsValid() {
		errs = append(errs, apierr.ValidationError{Field: "industry", Message: "unknown industry"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
