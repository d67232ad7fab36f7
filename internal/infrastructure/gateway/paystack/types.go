package paystack

import "encoding/json"

// initializeRequest is the wire format for transaction initialization.
// Amount is in the minor currency unit (kobo for NGN).
type initializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// authorizedChargeRequest is the wire format for charging a stored authorization
type authorizedChargeRequest struct {
	Email             string `json:"email"`
	Amount            int64  `json:"amount"`
	AuthorizationCode string `json:"authorization_code"`
	Reference         string `json:"reference,omitempty"`
	Currency          string `json:"currency,omitempty"`
}

// apiResponse is the envelope Paystack wraps every response in
type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// initializeData is the payload of a successful initialization
type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// verifyData is the payload of a transaction verification
type verifyData struct {
	Status        string            `json:"status"`
	Reference     string            `json:"reference"`
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Authorization authorizationData `json:"authorization"`
}

// authorizationData is the reusable card token Paystack returns on verification
type authorizationData struct {
	AuthorizationCode string `json:"authorization_code"`
	Bin               string `json:"bin"`
	Last4             string `json:"last4"`
	ExpMonth          string `json:"exp_month"`
	ExpYear           string `json:"exp_year"`
	CardType          string `json:"card_type"`
	Bank              string `json:"bank"`
	CountryCode       string `json:"country_code"`
	Brand             string `json:"brand"`
	Reusable          bool   `json:"reusable"`
}
