package chat

import (
	"encoding/json"
	"strings"

	"ogportal-backend/internal/types"
)

// Provider-side conversation roles. Gemini has no system role; the system
// instruction travels as the first user turn.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

const (
	defaultHistoryWindow = 6
	defaultMaxChars      = 4000
)

// Turn is one provider-ready conversation entry. Never caller-visible.
type Turn struct {
	Role string
	Text string
}

// Conversation is the assembled provider payload: the synthetic system turn,
// the model acknowledgement, the windowed history, and the current message
// to send.
type Conversation struct {
	History []Turn
	Current string
}

// GenOptions carries the sampling parameters for one generation.
type GenOptions struct {
	MaxOutputTokens int
	Temperature     float64
}

// Options extracts the generation parameters from a defaulted request.
func Options(req *types.ChatRequest) GenOptions {
	opts := GenOptions{MaxOutputTokens: defaultOutputTokens, Temperature: defaultTemperature}
	if req.MaxOutputTokens != nil {
		opts.MaxOutputTokens = *req.MaxOutputTokens
	}
	if req.Temperature != nil {
		opts.Temperature = *req.Temperature
	}
	return opts
}

// Assembler builds provider conversations from validated chat requests.
// HistoryWindow and MaxChars bound token cost; both truncations are lossy
// and silent.
type Assembler struct {
	persona       PersonaSpec
	historyWindow int
	maxChars      int
}

func NewAssembler(persona PersonaSpec, historyWindow, maxChars int) *Assembler {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	return &Assembler{persona: persona, historyWindow: historyWindow, maxChars: maxChars}
}

// Greeting is the canned reply for the empty-input fast path.
func (a *Assembler) Greeting() string {
	return a.persona.Greeting
}

// Build assembles the provider conversation for a validated, defaulted
// request. ok is false when the final user message is empty or
// whitespace-only; the caller should reply with Greeting and skip the
// provider entirely.
func (a *Assembler) Build(req *types.ChatRequest) (Conversation, bool) {
	last := req.Messages[len(req.Messages)-1]
	if strings.TrimSpace(last.Content) == "" {
		return Conversation{}, false
	}

	history := make([]Turn, 0, a.historyWindow+2)
	history = append(history,
		Turn{Role: RoleUser, Text: a.systemInstruction(req)},
		Turn{Role: RoleModel, Text: a.persona.Ack},
	)

	prior := req.Messages[:len(req.Messages)-1]
	if len(prior) > a.historyWindow {
		prior = prior[len(prior)-a.historyWindow:]
	}
	for _, m := range prior {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		role := RoleUser
		if m.Role == "assistant" {
			role = RoleModel
		}
		history = append(history, Turn{Role: role, Text: a.clamp(m.Content)})
	}

	return Conversation{History: history, Current: a.clamp(last.Content)}, true
}

// systemInstruction concatenates the persona preamble, the serialized
// profile (or its placeholder), the mode block for the request intent, and
// the closing instruction.
func (a *Assembler) systemInstruction(req *types.ChatRequest) string {
	profile := a.persona.NoProfile
	if req.Profile != nil {
		if b, err := json.Marshal(req.Profile); err == nil {
			profile = string(b)
		}
	}
	var b strings.Builder
	b.WriteString(a.persona.System)
	b.WriteString("\n\nProfil pengguna:\n")
	b.WriteString(profile)
	if mode := a.persona.Modes[req.Intent]; mode != "" {
		b.WriteString("\n\n")
		b.WriteString(mode)
	}
	b.WriteString("\n\n")
	b.WriteString(a.persona.Closing)
	return b.String()
}

// clamp truncates s to the configured character limit, keeping the prefix.
func (a *Assembler) clamp(s string) string {
	r := []rune(s)
	if len(r) <= a.maxChars {
		return s
	}
	return string(r[:a.maxChars])
}
