package domain

import "strings"

// TimeEntryInput is a validated time-entry form submission. StartDate and
// EndDate carry the raw submitted values; normalization to UTC happens in
// the service layer.
type TimeEntryInput struct {
	ItemName     string
	StartDate    string
	EndDate      string
	PauseMinutes string // optional, defaults to 0
	ProjectID    string
	EmployeeID   string
}

// Validate checks that all required fields are present.
// No external call may be made when validation fails.
func (in TimeEntryInput) Validate() error {
	var errs []FieldError
	for _, f := range []struct{ name, value string }{
		{"itemName", in.ItemName},
		{"startDate", in.StartDate},
		{"endDate", in.EndDate},
		{"projectId", in.ProjectID},
		{"mitarbeiterId", in.EmployeeID},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.name, Message: "required"})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ExpenseInput is a validated expense form submission.
type ExpenseInput struct {
	ItemName    string
	Description string // optional, encoded as empty text when absent
	Amount      string // raw textual form, passed through unparsed
	ProjectID   string
	EmployeeID  string
}

// Validate checks that all required fields are present.
func (in ExpenseInput) Validate() error {
	var errs []FieldError
	for _, f := range []struct{ name, value string }{
		{"itemName", in.ItemName},
		{"betrag", in.Amount},
		{"projectId", in.ProjectID},
		{"mitarbeiterId", in.EmployeeID},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, FieldError{Field: f.name, Message: "required"})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
