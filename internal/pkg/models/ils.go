package models

// PaymentPolicy is the ILS's online-payment configuration for one patron's
// home organization
type PaymentPolicy struct {
	ExactBalanceRequired bool `json:"exact_balance_required"`
	CreditUnsupported    bool `json:"credit_unsupported"`
	SelectFines          bool `json:"select_fines"`
}

// FineSummary is the currently payable total reported by the ILS
type FineSummary struct {
	Payable bool  `json:"payable"`
	Amount  int64 `json:"amount"`
}

// Fine is one open fine row as listed by the ILS
type Fine struct {
	FineID         string `json:"fine_id"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	OrganizationID string `json:"organization_id,omitempty"`
	Payable        bool   `json:"payable"`
}
