package rest

import (
	"toolhub/domain"
)

// SuggestionsResponse is the payload for the type-ahead endpoint. Visible
// tells the client whether to render the dropdown at all.
type SuggestionsResponse struct {
	Suggestions []domain.SearchSuggestion `json:"suggestions"`
	Visible     bool                      `json:"visible"`
}

// ImportSuccessResponse reports a completed import run, including partial
// failures: row errors live inside Results, success stays true.
type ImportSuccessResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Results *domain.ImportResult `json:"results"`
}

// ImportFailureResponse reports a request-level import failure (unreadable
// upload, bad header) where no rows were processed.
type ImportFailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ToolListResponse carries one page of tools plus the cursor for the next one.
type ToolListResponse struct {
	Data       []*domain.Tool `json:"data"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// SearchToolsRequest is the body of POST /v1/tools/search.
type SearchToolsRequest struct {
	Query  string `json:"query"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// SearchToolsResponse carries one page of search results.
type SearchToolsResponse struct {
	Results []*domain.Tool `json:"results"`
	HasMore bool           `json:"has_more"`
}

// CategoriesResponse lists the category vocabulary with per-category counts.
type CategoriesResponse struct {
	Categories []domain.CategoryCount `json:"categories"`
}

// PricingResponse lists the distinct pricing strings in the catalog.
type PricingResponse struct {
	Pricing []string `json:"pricing"`
}

// RegisterFavoriteRequest is the body of POST /v1/tools/favorites.
type RegisterFavoriteRequest struct {
	ToolID string `json:"tool_id"`
}

// SubmitReviewRequest is the body of POST /v1/tools/reviews.
type SubmitReviewRequest struct {
	ToolID  string `json:"tool_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewListResponse carries a tool's reviews plus the aggregate rating.
type ReviewListResponse struct {
	Reviews []*domain.Review      `json:"reviews"`
	Summary *domain.ReviewSummary `json:"summary"`
}

// ToolPayload is the admin create/update body. It mirrors the CSV import
// record shape so both write paths share the same normalization.
type ToolPayload struct {
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
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse is a minimal acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

func (p *ToolPayload) toRecord() domain.ToolRecord {
	record := domain.ToolRecord{
		CompanyName:      p.CompanyName,
		LogoURL:          p.LogoURL,
		ShortDescription: p.ShortDescription,
		FullDescription:  p.FullDescription,
		PrimaryTask:      p.PrimaryTask,
		ApplicableTasks:  p.ApplicableTasks,
		Pros:             p.Pros,
		Cons:             p.Cons,
		Pricing:          p.Pricing,
		FeaturedImageURL: p.FeaturedImageURL,
		VisitWebsiteURL:  p.VisitWebsiteURL,
		DetailURL:        p.DetailURL,
		Faqs:             p.Faqs,
	}
	if record.ApplicableTasks == nil {
		record.ApplicableTasks = []string{}
	}
	if record.Pros == nil {
		record.Pros = []string{}
	}
	if record.Cons == nil {
		record.Cons = []string{}
	}
	return record
}
