package payment

import "encoding/json"

// TransactionDetails identifies the order and its gross amount. The gateway
// expects gross_amount to equal the sum of item line totals; that
// consistency is the caller's responsibility and is not checked here.
type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

// ItemDetail is a single order line.
type ItemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// CustomerDetails is optional buyer information forwarded to the gateway.
type CustomerDetails struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreditCard toggles 3D Secure for card payments.
type CreditCard struct {
	Secure bool `json:"secure"`
}

// Callbacks are the redirect URLs the gateway sends the buyer back to.
type Callbacks struct {
	Finish string `json:"finish,omitempty"`
	Error  string `json:"error,omitempty"`
}

// TransactionRequest is the Snap transaction-creation body.
type TransactionRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	ItemDetails        []ItemDetail       `json:"item_details,omitempty"`
	CustomerDetails    *CustomerDetails   `json:"customer_details,omitempty"`
	EnabledPayments    []string           `json:"enabled_payments,omitempty"`
	CreditCard         *CreditCard        `json:"credit_card,omitempty"`
	Callbacks          *Callbacks         `json:"callbacks,omitempty"`
}

// TransactionResponse is the Snap reply: an opaque token plus the hosted
// payment page URL. Any other fields the gateway returns are kept in Extra
// and round-tripped to the caller untouched.
type TransactionResponse struct {
	Token       string
	RedirectURL string
	Extra       map[string]any
}

func (r *TransactionResponse) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if v, ok := raw["token"]; ok {
		if err := json.Unmarshal(v, &r.Token); err != nil {
			return err
		}
		delete(raw, "token")
	}
	if v, ok := raw["redirect_url"]; ok {
		if err := json.Unmarshal(v, &r.RedirectURL); err != nil {
			return err
		}
		delete(raw, "redirect_url")
	}
	if len(raw) > 0 {
		r.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var x any
			if err := json.Unmarshal(v, &x); err != nil {
				return err
			}
			r.Extra[k] = x
		}
	}
	return nil
}

func (r TransactionResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+2)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["token"] = r.Token
	out["redirect_url"] = r.RedirectURL
	return json.Marshal(out)
}
