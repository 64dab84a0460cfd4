package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/fight-predictor/internal/models"
	"github.com/yourusername/fight-predictor/internal/parse"
)

// ValidationResult separates problems that reject a record from ones that only degrade it
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the record can be stored
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// DataValidator validates roster records
type DataValidator struct {
	validate *validator.Validate
	logger   *logrus.Entry
}

// NewDataValidator creates a new data validator
func NewDataValidator(logger *logrus.Logger) *DataValidator {
	return &DataValidator{
		validate: validator.New(),
		logger:   logger.WithField("component", "validator"),
	}
}

// ValidateFighter checks struct constraints and flags statistics scoring cannot read.
// Unreadable statistics are warnings: they score as zero rather than rejecting the fighter.
func (v *DataValidator) ValidateFighter(f *models.Fighter) ValidationResult {
	var result ValidationResult

	if err := v.validate.Struct(f); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range validationErrs {
				result.Errors = append(result.Errors, fmt.Sprintf("%s failed on '%s'", strings.ToLower(e.Field()), e.Tag()))
			}
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	checks := []struct {
		field string
		value string
	}{
		{"height", f.Height},
		{"weight", f.Weight},
		{"reach", f.Reach},
		{"sig_strikes_landed_per_min", f.SigStrikesLandedPerMin},
		{"striking_accuracy", f.StrikingAccuracy},
		{"takedown_avg", f.TakedownAvg},
		{"submission_avg", f.SubmissionAvg},
	}
	for _, c := range checks {
		if parse.Present(c.value) && !parse.Readable(c.value) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s is not numeric: %q", c.field, c.value))
		}
	}

	if _, ok := parse.Date(f.DOB); parse.Present(f.DOB) && !ok {
		result.Warnings = append(result.Warnings, fmt.Sprintf("dob is not a date: %q", f.DOB))
	}

	if len(result.Warnings) > 0 {
		v.logger.WithFields(logrus.Fields{
			"fighter":  f.Name,
			"warnings": result.Warnings,
		}).Debug("Fighter has unreadable statistics")
	}
	return result
}
