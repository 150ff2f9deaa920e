package models

import "time"

// LeadCreateRequest represents a manual lead creation from the dashboard
type LeadCreateRequest struct {
	Name                  string   `json:"name" validate:"required"`
	Email                 string   `json:"email" validate:"required,email"`
	Company               string   `json:"company"`
	Phone                 string   `json:"phone"`
	Stage                 string   `json:"stage" validate:"omitempty,oneof=contacted_1 contacted_2 called on_hold interested onboarding_sent converted not_interested no_response not_qualified"`
	Source                string   `json:"source" validate:"omitempty,oneof=website linkedin referral email instagram meta_ads google_ads other"`
	Owner                 string   `json:"owner"`
	ConversionProbability *int     `json:"conversion_probability" validate:"omitempty,min=0,max=100"`
	Revenue               *float64 `json:"revenue"`
	Notes                 string   `json:"notes"`
}

// LeadUpdateRequest represents a partial lead update. Nil fields were not
// supplied and pass through unchanged; the archived field is an explicit
// override of the stage-derived value when present.
type LeadUpdateRequest struct {
	Name                  *string    `json:"name" validate:"omitempty,min=1"`
	Email                 *string    `json:"email" validate:"omitempty,email"`
	Company               *string    `json:"company"`
	Phone                 *string    `json:"phone"`
	Stage                 *string    `json:"stage" validate:"omitempty,oneof=contacted_1 contacted_2 called on_hold interested onboarding_sent converted not_interested no_response not_qualified"`
	Source                *string    `json:"source" validate:"omitempty,oneof=website linkedin referral email instagram meta_ads google_ads other"`
	Owner                 *string    `json:"owner"`
	ConversionProbability *int       `json:"conversion_probability" validate:"omitempty,min=0,max=100"`
	Revenue               *float64   `json:"revenue"`
	Notes                 *string    `json:"notes"`
	Archived              *bool      `json:"archived"`
	LastContacted         *time.Time `json:"last_contacted"`
}

// LeadListRequest represents list/search parameters for leads
type LeadListRequest struct {
	Q        string `query:"q"`
	Stage    string `query:"stage" validate:"omitempty,oneof=contacted_1 contacted_2 called on_hold interested onboarding_sent converted not_interested no_response not_qualified"`
	Source   string `query:"source" validate:"omitempty,oneof=website linkedin referral email instagram meta_ads google_ads other"`
	Archived *bool  `query:"archived"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID                    int        `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Company               string     `json:"company,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Stage                 string     `json:"stage"`
	Source                string     `json:"source"`
	Owner                 string     `json:"owner,omitempty"`
	ConversionProbability int        `json:"conversion_probability"`
	Revenue               *float64   `json:"revenue,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	Archived              bool       `json:"archived"`
	LastContacted         *time.Time `json:"last_contacted,omitempty"`
	ConvertedAt           *time.Time `json:"converted_at,omitempty"`
	MetaLeadID            string     `json:"meta_lead_id,omitempty"`
	InstagramID           string     `json:"instagram_id,omitempty"`
	FacebookID            string     `json:"facebook_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Data       []LeadResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// StatsResponse represents pipeline aggregates for the dashboard
type StatsResponse struct {
	Total          int            `json:"total"`
	Active         int            `json:"active"`
	Archived       int            `json:"archived"`
	Converted      int            `json:"converted"`
	ConversionRate float64        `json:"conversion_rate"`
	TotalRevenue   float64        `json:"total_revenue"`
	ByStage        map[string]int `json:"by_stage"`
	BySource       map[string]int `json:"by_source"`
}

// ActivityCreateRequest represents a manual note on a lead
type ActivityCreateRequest struct {
	Body string `json:"body" validate:"required"`
}

// ActivityResponse represents one activity log entry
type ActivityResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"lead_id"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
