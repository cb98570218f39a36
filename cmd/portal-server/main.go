package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"ogportal-backend/internal/chat"
	"ogportal-backend/internal/config"
	"ogportal-backend/internal/gemini"
	"ogportal-backend/internal/payment"
	"ogportal-backend/internal/server"
)

func main() {
	cfg := config.Load()

	persona, err := chat.LoadPersona(cfg.PromptsFile)
	if err != nil {
		log.Fatalf("failed to load persona template: %v", err)
	}

	ai := gemini.NewClient(cfg.GeminiAPIKey, cfg.Model, time.Duration(cfg.TimeoutSeconds)*time.Second)
	payments := payment.NewClient(cfg.MidtransBaseURL, cfg.MidtransServerKey)

	s := server.NewServer(cfg, persona, ai, payments)
	addr := ":" + cfg.Port
	fmt.Printf("portal server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
