package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"ogportal-backend/internal/chat"
	"ogportal-backend/internal/gemini"
	"ogportal-backend/internal/types"
)

// GET /api/chat
// Reports the configured model and whether a provider credential is set.
func (s *Server) handleChatHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.HealthResponse{
		OK:     true,
		Model:  s.cfg.Model,
		HasKey: s.cfg.GeminiAPIKey != "",
	})
}

// POST /api/chat
// Validates the request, assembles the provider conversation and forwards it
// to Gemini. Every failure category maps to exactly one response shape.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   errBadRequest,
			Message: "invalid JSON body",
			Details: decodeDetails(err),
		})
		return
	}

	if details := chat.ValidateRequest(&req); len(details) > 0 {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   errBadRequest,
			Message: "request validation failed",
			Details: details,
		})
		return
	}
	chat.ApplyDefaults(&req)

	conv, ok := s.assembler.Build(&req)
	if !ok {
		// Empty or whitespace-only input: canned greeting, no provider call.
		s.writeJSON(w, http.StatusOK, types.ChatResponse{Answer: s.assembler.Greeting()})
		return
	}

	if s.cfg.GeminiAPIKey == "" {
		s.writeError(w, http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   errKeyMissing,
			Message: "the AI provider credential is not configured",
		})
		return
	}

	answer, err := s.ai.Generate(r.Context(), conv, chat.Options(&req))
	if err != nil {
		var provErr *gemini.Error
		if errors.As(err, &provErr) {
			log.Printf("[chat] provider error: code=%v status=%s message=%s err=%v",
				provErr.Code, provErr.Status, provErr.Message, provErr.Err)
			s.writeError(w, http.StatusBadGateway, types.ErrorResponse{
				Error:   errAIError,
				Code:    provErr.Code,
				Message: provErr.Message,
			})
			return
		}
		log.Printf("[chat] provider error: %v", err)
		s.writeError(w, http.StatusBadGateway, types.ErrorResponse{
			Error:   errAIError,
			Message: "upstream provider request failed",
		})
		return
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		s.writeError(w, http.StatusBadGateway, types.ErrorResponse{
			Error:   errEmptyResponse,
			Message: "the provider returned no usable text",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, types.ChatResponse{Answer: answer})
}

// decodeDetails maps a JSON type mismatch onto the offending field so the
// client gets the same field-level report as schema validation.
func decodeDetails(err error) []types.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []types.FieldError{{
			Field:   typeErr.Field,
			Message: "expected " + typeErr.Type.String(),
		}}
	}
	return nil
}
