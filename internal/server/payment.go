package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"ogportal-backend/internal/payment"
	"ogportal-backend/internal/types"
)

// POST /api/payment/transaction
// Forwards a transaction-creation request to the payment gateway and returns
// the Snap token plus redirect URL.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MidtransServerKey == "" {
		s.writeError(w, http.StatusServiceUnavailable, types.ErrorResponse{
			Error:   errPaymentKeyMissing,
			Message: "the payment gateway credential is not configured",
		})
		return
	}

	var req payment.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   errBadRequest,
			Message: "invalid JSON body",
			Details: decodeDetails(err),
		})
		return
	}
	if req.TransactionDetails.GrossAmount <= 0 {
		s.writeError(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   errBadRequest,
			Message: "request validation failed",
			Details: []types.FieldError{{
				Field:   "transaction_details.gross_amount",
				Message: "must be greater than zero",
			}},
		})
		return
	}
	if req.TransactionDetails.OrderID == "" {
		req.TransactionDetails.OrderID = uuid.NewString()
	}

	resp, err := s.payments.CreateTransaction(r.Context(), &req)
	if err != nil {
		var gwErr *payment.Error
		if errors.As(err, &gwErr) {
			log.Printf("[payment] gateway error: status=%d messages=%v err=%v",
				gwErr.StatusCode, gwErr.Messages, gwErr.Err)
			s.writeError(w, http.StatusBadGateway, types.ErrorResponse{
				Error:   errPaymentError,
				Code:    nonZero(gwErr.StatusCode),
				Message: firstOr(gwErr.Messages, "payment gateway request failed"),
			})
			return
		}
		log.Printf("[payment] error: %v", err)
		s.writeError(w, http.StatusBadGateway, types.ErrorResponse{
			Error:   errPaymentError,
			Message: "payment gateway request failed",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func nonZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func firstOr(msgs []string, def string) string {
	if len(msgs) > 0 {
		return msgs[0]
	}
	return def
}
