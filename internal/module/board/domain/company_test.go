package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

func TestCompanyDraft_Validate_Success(t *testing.T) {
	// Setup
	draft := domain.CompanyDraft{
		Name:     "Everest Tech",
		Industry: domain.IndustryInformationTechnology,
		Location: "Kathmandu",
	}

	// Execute
	err := draft.Validate()

	// Assert
	require.NoError(t, err)
}

func TestCompanyDraft_Validate_UnknownIndustry(t *testing.T) {
	// Setup
	draft := domain.CompanyDraft{
		Name:     "Everest Tech",
		Industry: domain.Industry("Aerospace"),
		Location: "Kathmandu",
	}

	// Execute
	err := draft.Validate()

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))
}

func TestCompanyDraft_Validate_BlankFields(t *testing.T) {
	// Setup
	draft := domain.CompanyDraft{Name: "  ", Location: ""}

	// Execute
	err := draft.Validate()

	// Assert
	var errs apierr.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestCategoryDraft_Validate(t *testing.T) {
	// Setup & Execute & Assert
	assert.NoError(t, domain.CategoryDraft{Name: "Engineering"}.Validate())
	assert.Error(t, domain.CategoryDraft{Name: "   "}.Validate())
	assert.Error(t, domain.CategoryDraft{}.Validate())
}

func TestApplicant_DisplayName(t *testing.T) {
	// Setup
	withName := domain.Applicant{Username: "jd42", FullName: "Jordan Doe"}
	withoutName := domain.Applicant{Username: "jd42"}

	// Execute & Assert
	assert.Equal(t, "Jordan Doe", withName.DisplayName())
	assert.Equal(t, "jd42", withoutName.DisplayName())
}
