package models

// SendEmailRequest represents an outbound email to a lead via the connected
// mailbox. ThreadID is set when replying within an existing thread.
type SendEmailRequest struct {
	LeadID    int    `json:"lead_id" validate:"required,min=1"`
	Subject   string `json:"subject" validate:"required"`
	Body      string `json:"body" validate:"required"`
	ThreadID  string `json:"thread_id"`
	InReplyTo string `json:"in_reply_to"`
}

// DraftRequest asks the AI drafter for a reply suggestion
type DraftRequest struct {
	LeadID   int    `json:"lead_id" validate:"required,min=1"`
	ThreadID string `json:"thread_id"`
	Hint     string `json:"hint"`
}

// DraftResponse carries the generated draft text
type DraftResponse struct {
	Draft string `json:"draft"`
}

// SweepResponse reports what a response-detection sweep did
type SweepResponse struct {
	Considered  int   `json:"considered"`
	Advanced    int   `json:"advanced"`
	Failed      int   `json:"failed"`
	AdvancedIDs []int `json:"advanced_ids"`
}

// FollowupResponse reports what the scheduled follow-up batch did
type FollowupResponse struct {
	Considered  int   `json:"considered"`
	Advanced    int   `json:"advanced"`
	FollowedUp  int   `json:"followed_up"`
	Failed      int   `json:"failed"`
	AdvancedIDs []int `json:"advanced_ids"`
}
