package domain

import "fmt"

// ImportRowError attributes a failed CSV row to its company name.
type ImportRowError struct {
	CompanyName string `json:"company_name"`
	Error       string `json:"error"`
}

// ImportResult accumulates the outcome of one import run. It is built during
// a single pass over the CSV and discarded after being returned.
type ImportResult struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Errors  []ImportRowError `json:"errors"`
}

// NewImportResult returns an empty result with a non-nil error list so the
// JSON response always carries an array.
func NewImportResult() *ImportResult {
	return &ImportResult{Errors: []ImportRowError{}}
}

// RecordCreated counts a freshly inserted row.
func (r *ImportResult) RecordCreated() {
	r.Created++
}

// RecordUpdated counts an in-place update of an existing row.
func (r *ImportResult) RecordUpdated() {
	r.Updated++
}

// RecordError attributes a row failure without aborting the batch.
func (r *ImportResult) RecordError(companyName string, err error) {
	r.Errors = append(r.Errors, ImportRowError{CompanyName: companyName, Error: err.Error()})
}

// Processed is the total number of rows that reached a terminal state.
func (r *ImportResult) Processed() int {
	return r.Created + r.Updated + len(r.Errors)
}

// Summary renders the human-readable outcome line returned to the caller.
func (r *ImportResult) Summary() string {
	return fmt.Sprintf("Processed %d tools. Created: %d, Updated: %d, Errors: %d",
		r.Processed(), r.Created, r.Updated, len(r.Errors))
}
