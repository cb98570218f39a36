package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateTransactionSendsAuthAndBody(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody TransactionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"token":"abc","redirect_url":"https://app.sandbox.midtrans.com/snap/v2/vtweb/abc"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "SB-server-key")
	resp, err := c.CreateTransaction(context.Background(), &TransactionRequest{
		TransactionDetails: TransactionDetails{OrderID: "order-7", GrossAmount: 25000},
		ItemDetails:        []ItemDetail{{ID: "i1", Price: 25000, Quantity: 1, Name: "Kursus K3"}},
		CustomerDetails:    &CustomerDetails{FirstName: "Budi", Email: "budi@example.com"},
		EnabledPayments:    []string{"gopay", "bank_transfer"},
		CreditCard:         &CreditCard{Secure: true},
	})
	require.NoError(t, err)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("SB-server-key:"))
	require.Equal(t, wantAuth, gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "order-7", gotBody.TransactionDetails.OrderID)
	require.Equal(t, []string{"gopay", "bank_transfer"}, gotBody.EnabledPayments)
	require.True(t, gotBody.CreditCard.Secure)

	require.Equal(t, "abc", resp.Token)
	require.Equal(t, "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc", resp.RedirectURL)
}

func TestCreateTransactionKeepsExtraResponseFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"abc","redirect_url":"u","transaction_id":"tx-9","status_code":"201"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	resp, err := c.CreateTransaction(context.Background(), &TransactionRequest{
		TransactionDetails: TransactionDetails{OrderID: "o", GrossAmount: 1},
	})
	require.NoError(t, err)
	require.Equal(t, "tx-9", resp.Extra["transaction_id"])
	require.Equal(t, "201", resp.Extra["status_code"])

	// Extras survive re-serialization towards the caller.
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	require.Contains(t, string(out), `"transaction_id":"tx-9"`)
	require.Contains(t, string(out), `"token":"abc"`)
}

func TestCreateTransactionGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_messages":["transaction_details.gross_amount is required","order_id has been taken"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k")
	_, err := c.CreateTransaction(context.Background(), &TransactionRequest{})
	require.Error(t, err)

	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, http.StatusBadRequest, gwErr.StatusCode)
	require.Len(t, gwErr.Messages, 2)
	require.Equal(t, "order_id has been taken", gwErr.Messages[1])
}

func TestCreateTransactionTransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "k")
	_, err := c.CreateTransaction(context.Background(), &TransactionRequest{
		TransactionDetails: TransactionDetails{OrderID: "o", GrossAmount: 1},
	})
	require.Error(t, err)

	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	require.Zero(t, gwErr.StatusCode)
	require.Error(t, gwErr.Err)
}
