package social

// WebhookEvent is the envelope Meta delivers to the webhook endpoint for
// both Lead Ads (entry[].changes[]) and Messenger/Instagram DMs
// (entry[].messaging[]).
type WebhookEvent struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one page/account entry in a webhook delivery.
type Entry struct {
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	Changes   []Change    `json:"changes,omitempty"`
	Messaging []Messaging `json:"messaging,omitempty"`
}

// Change carries a Lead Ads change notification.
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue identifies the generated lead.
type ChangeValue struct {
	LeadgenID   string `json:"leadgen_id"`
	PageID      string `json:"page_id"`
	FormID      string `json:"form_id"`
	CreatedTime int64  `json:"created_time"`
}

// Messaging is one DM event.
type Messaging struct {
	Sender    Principal `json:"sender"`
	Recipient Principal `json:"recipient"`
	Timestamp int64     `json:"timestamp"`
	Message   *Message  `json:"message,omitempty"`
}

// Principal is a platform-scoped user or page id.
type Principal struct {
	ID string `json:"id"`
}

// Message is the DM text payload.
type Message struct {
	MID    string `json:"mid"`
	Text   string `json:"text"`
	IsEcho bool   `json:"is_echo,omitempty"`
}

// LeadDetails is the flat field list returned by the lead detail fetch.
type LeadDetails struct {
	ID       string
	FullName string
	Email    string
	Phone    string
	Company  string
}

// Profile is the minimal DM contact profile.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
