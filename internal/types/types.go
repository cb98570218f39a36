package types

// ChatMessage is a single caller-supplied conversation turn. Order in the
// request body is conversation order.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserProfile is optional descriptive data embedded verbatim into the system
// prompt for personalization. Every field is optional and unvalidated.
type UserProfile struct {
	Name            string   `json:"name,omitempty"`
	Role            string   `json:"role,omitempty"`
	Skills          string   `json:"skills,omitempty"`
	Location        string   `json:"location,omitempty"`
	Interests       string   `json:"interests,omitempty"`
	ExperienceYears *float64 `json:"experienceYears,omitempty"`
}

// ChatRequest is the POST /api/chat body. Optional numeric fields are
// pointers so that "absent" and "zero" stay distinguishable for validation.
type ChatRequest struct {
	Messages        []ChatMessage `json:"messages"`
	Intent          string        `json:"intent,omitempty"`
	Profile         *UserProfile  `json:"profile,omitempty"`
	MaxOutputTokens *int          `json:"maxOutputTokens,omitempty"`
	Temperature     *float64      `json:"temperature,omitempty"`
}

// ChatResponse is the success envelope.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the failure envelope. Error is a stable machine-readable
// discriminant; Code carries the provider's own code when one exists and may
// be a string or a number.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Code    any          `json:"code,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one violated field in a validation report.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse is the GET /api/chat probe body.
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Model  string `json:"model"`
	HasKey bool   `json:"hasKey"`
}
