package chat

import (
	"fmt"

	"ogportal-backend/internal/types"
)

const (
	minOutputTokens     = 64
	maxOutputTokens     = 2048
	defaultOutputTokens = 512
	defaultTemperature  = 0.3
)

// ValidateRequest checks a decoded chat request against the schema and
// returns every violation, not just the first. An empty result means the
// request is valid.
func ValidateRequest(req *types.ChatRequest) []types.FieldError {
	var errs []types.FieldError

	if len(req.Messages) == 0 {
		errs = append(errs, types.FieldError{Field: "messages", Message: "at least one message is required"})
	}
	for i, m := range req.Messages {
		if m.Content == "" {
			errs = append(errs, types.FieldError{
				Field:   fmt.Sprintf("messages[%d].content", i),
				Message: "content must not be empty",
			})
		}
	}

	if req.Intent != "" && !ValidIntent(req.Intent) {
		errs = append(errs, types.FieldError{
			Field:   "intent",
			Message: fmt.Sprintf("must be one of %q, %q, %q", IntentNews, IntentJobs, IntentConsult),
		})
	}

	if req.MaxOutputTokens != nil {
		if n := *req.MaxOutputTokens; n < minOutputTokens || n > maxOutputTokens {
			errs = append(errs, types.FieldError{
				Field:   "maxOutputTokens",
				Message: fmt.Sprintf("must be between %d and %d", minOutputTokens, maxOutputTokens),
			})
		}
	}

	if req.Temperature != nil {
		if t := *req.Temperature; t < 0 || t > 1 {
			errs = append(errs, types.FieldError{Field: "temperature", Message: "must be between 0 and 1"})
		}
	}

	return errs
}

// ApplyDefaults fills optional fields of a valid request: message roles
// default to "user", intent to "news", and the generation parameters to
// their documented defaults.
func ApplyDefaults(req *types.ChatRequest) {
	for i := range req.Messages {
		if req.Messages[i].Role == "" {
			req.Messages[i].Role = "user"
		}
	}
	if req.Intent == "" {
		req.Intent = IntentNews
	}
	if req.MaxOutputTokens == nil {
		n := defaultOutputTokens
		req.MaxOutputTokens = &n
	}
	if req.Temperature == nil {
		t := defaultTemperature
		req.Temperature = &t
	}
}
