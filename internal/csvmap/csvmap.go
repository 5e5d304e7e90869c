// Package csvmap turns header-indexed CSV rows into normalized tool records.
// The transform is pure: parsing, list splitting and FAQ pairing never touch
// the database, which keeps the importer's row loop trivially testable.
package csvmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"toolhub/domain"
)

// TemplateHeader is the column order of the import template. The importer
// itself maps columns by name, so reordered files still import.
var TemplateHeader = []string{
	"company_name", "short_description", "full_description", "primary_task",
	"applicable_tasks", "pros", "cons", "pricing", "logo_url",
	"featured_image_url", "visit_website_url", "detail_url",
	"q1", "a1", "q2", "a2", "q3", "a3",
}

var faqQuestionPattern = regexp.MustCompile(`^q(\d+)$`)

// Row is one data row keyed by header column name.
type Row map[string]string

// Reader streams header-indexed rows out of a CSV document. The first record
// supplies the column names; every later record is mapped by name, not by
// position.
type Reader struct {
	csv    *csv.Reader
	header []string
}

// NewReader consumes the header record and prepares row streaming.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	return &Reader{csv: cr, header: header}, nil
}

// Header returns the trimmed column names in file order.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next data row, or io.EOF when the document is exhausted.
// Short records leave trailing columns empty; extra cells are dropped.
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	if err != nil {
		return nil, err
	}

	row := make(Row, len(r.header))
	for i, name := range r.header {
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

// ToToolRecord applies the normalized-record transform to one row. now stamps
// UpdatedAt for created and updated rows alike.
func ToToolRecord(row Row, now time.Time) domain.ToolRecord {
	return domain.ToolRecord{
		CompanyName:      row["company_name"],
		LogoURL:          row["logo_url"],
		ShortDescription: row["short_description"],
		FullDescription:  row["full_description"],
		PrimaryTask:      row["primary_task"],
		ApplicableTasks:  splitList(row["applicable_tasks"]),
		Pros:             splitList(row["pros"]),
		Cons:             splitList(row["cons"]),
		Pricing:          row["pricing"],
		FeaturedImageURL: row["featured_image_url"],
		VisitWebsiteURL:  row["visit_website_url"],
		DetailURL:        row["detail_url"],
		Faqs:             pairFaqs(row),
		UpdatedAt:        now,
	}
}

// splitList comma-splits a list field, trimming each element. An empty source
// yields an empty slice, never nil.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// pairFaqs scans columns named q<digits> and admits each q/a pair only when
// both sides are non-empty. Unpaired columns are dropped silently. A row with
// no complete pair yields nil, so the record omits faqs entirely.
func pairFaqs(row Row) map[string]string {
	var faqs map[string]string

	for key, question := range row {
		m := faqQuestionPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}

		answerKey := "a" + m[1]
		answer, ok := row[answerKey]
		if !ok || strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
			continue
		}

		if faqs == nil {
			faqs = make(map[string]string)
		}
		faqs[key] = question
		faqs[answerKey] = answer
	}

	return faqs
}

// Template renders the downloadable import template: the canonical header and
// one sample row. List fields are comma-joined inside a single quoted field.
func Template() ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(TemplateHeader); err != nil {
		return nil, fmt.Errorf("writing template header: %w", err)
	}

	sample := []string{
		"Example AI",
		"Short description of the tool",
		"Longer description of what the tool does",
		"writing",
		"writing, research, coding",
		"fast, accurate",
		"paid plans only",
		"Freemium",
		"https://example.com/logo.png",
		"https://example.com/featured.png",
		"https://example.com",
		"https://example.com/details",
		"What does it do?", "It writes.",
		"", "",
		"", "",
	}
	if err := w.Write(sample); err != nil {
		return nil, fmt.Errorf("writing template sample row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
