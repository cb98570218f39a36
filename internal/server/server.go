package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"ogportal-backend/internal/chat"
	"ogportal-backend/internal/config"
	"ogportal-backend/internal/payment"
	"ogportal-backend/internal/types"
)

// Stable error discriminants returned to clients.
const (
	errBadRequest        = "BAD_REQUEST"
	errKeyMissing        = "GEMINI_API_KEY_MISSING"
	errEmptyResponse     = "EMPTY_RESPONSE"
	errAIError           = "AI_ERROR"
	errPaymentKeyMissing = "PAYMENT_KEY_MISSING"
	errPaymentError      = "PAYMENT_ERROR"
)

// Generator is the provider gateway the chat handler calls. gemini.Client
// implements it; tests stub it.
type Generator interface {
	Generate(ctx context.Context, conv chat.Conversation, opts chat.GenOptions) (string, error)
}

type Server struct {
	router    *chi.Mux
	cfg       config.Config
	assembler *chat.Assembler
	ai        Generator
	payments  *payment.Client
}

func NewServer(cfg config.Config, persona chat.PersonaSpec, ai Generator, payments *payment.Client) *Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	s := &Server{
		router:    r,
		cfg:       cfg,
		assembler: chat.NewAssembler(persona, cfg.HistoryWindow, cfg.MaxPromptChars),
		ai:        ai,
		payments:  payments,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/chat", s.handleChatHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Post("/api/payment/transaction", s.handleCreateTransaction)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, code int, resp types.ErrorResponse) {
	s.writeJSON(w, code, resp)
}
