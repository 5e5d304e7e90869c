package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tool represents one AI tool listed in the directory.
type Tool struct {
	ID               uuid.UUID         `json:"id" db:"id"`
	CompanyName      string            `json:"company_name" db:"company_name"`
	LogoURL          string            `json:"logo_url" db:"logo_url"`
	ShortDescription string            `json:"short_description" db:"short_description"`
	FullDescription  string            `json:"full_description" db:"full_description"`
	PrimaryTask      string            `json:"primary_task" db:"primary_task"`
	ApplicableTasks  []string          `json:"applicable_tasks" db:"applicable_tasks"`
	Pros             []string          `json:"pros" db:"pros"`
	Cons             []string          `json:"cons" db:"cons"`
	Pricing          string            `json:"pricing" db:"pricing"`
	FeaturedImageURL string            `json:"featured_image_url" db:"featured_image_url"`
	VisitWebsiteURL  string            `json:"visit_website_url" db:"visit_website_url"`
	DetailURL        string            `json:"detail_url" db:"detail_url"`
	Faqs             map[string]string `json:"faqs,omitempty" db:"faqs"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// ToolRecord is the normalized shape produced by the CSV importer. Faqs stays
// nil when the source row carried no complete q/a pair so the storage layer
// can distinguish "no FAQ data" from an explicitly empty FAQ object.
type ToolRecord struct {
	CompanyName      string            `json:"company_name"`
	LogoURL          string            `json:"logo_url"`
	ShortDescription string            `json:"short_description"`
	FullDescription  string            `json:"full_description"`
	PrimaryTask      string            `json:"primary_task"`
	ApplicableTasks  []string          `json:"applicable_tasks"`
	Pros             []string          `json:"pros"`
	Cons             []string          `json:"cons"`
	Pricing          string            `json:"pricing"`
	FeaturedImageURL string            `json:"featured_image_url"`
	VisitWebsiteURL  string            `json:"visit_website_url"`
	DetailURL        string            `json:"detail_url"`
	Faqs             map[string]string `json:"faqs,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// CategoryCount is one entry of the category vocabulary with how many tools
// carry that category.
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
