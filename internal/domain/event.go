package domain

import "time"

// OutcomeEvent is what the validation side channel publishes per request.
// It carries no password or signature material in any form.
type OutcomeEvent struct {
	Path         string    `json:"path"`
	PartnerKey   string    `json:"partnerkey,omitempty"`
	PartnerRefNo string    `json:"partnerrefno"`
	Outcome      string    `json:"outcome"`
	Message      string    `json:"message,omitempty"`
	TotalAmount  string    `json:"totalamount"`
	At           time.Time `json:"at"`
}
