package domain

import (
	"log/slog"

	"partner-trx-api/pkg/hashing"
)

// TransactionRequest is the strict validation input. Field order matters:
// the required-field gate reports the first blank field in declaration
// order (partnerkey, partnerrefno, partnerpassword, timestamp, sig).
type TransactionRequest struct {
	PartnerKey      string       `json:"partnerkey" validate:"notblank"`
	PartnerRefNo    string       `json:"partnerrefno" validate:"notblank"`
	PartnerPassword string       `json:"partnerpassword" validate:"notblank"`
	TotalAmount     int64        `json:"totalamount"`
	Items           []ItemDetail `json:"items,omitempty"`
	Timestamp       string       `json:"timestamp" validate:"notblank"`
	Sig             string       `json:"sig" validate:"notblank"`
}

type ItemDetail struct {
	PartnerItemRef string `json:"partneritemref"`
	Name           string `json:"name"`
	Qty            int64  `json:"qty"`
	UnitPrice      int64  `json:"unitprice"`
}

func (r TransactionRequest) LogValue() slog.Value {
	sig := r.Sig
	if len(sig) > 12 {
		sig = sig[:12] + "..."
	}
	return slog.GroupValue(
		slog.String("partnerkey", r.PartnerKey),
		slog.String("partnerrefno", r.PartnerRefNo),
		slog.String("partnerpassword", hashing.ShortMask(r.PartnerPassword)),
		slog.Int64("totalamount", r.TotalAmount),
		slog.Int("items", len(r.Items)),
		slog.String("timestamp", r.Timestamp),
		slog.String("sig", sig),
	)
}

// TransactionResponse mirrors the partner-facing result contract. The
// strict path never applies a discount: on success totalDiscount is zero
// and finalAmount equals the gross amount.
type TransactionResponse struct {
	Result        int    `json:"result"`
	TotalAmount   *int64 `json:"totalAmount,omitempty"`
	TotalDiscount *int64 `json:"totalDiscount,omitempty"`
	FinalAmount   *int64 `json:"finalAmount,omitempty"`
	ResultMessage string `json:"resultMessage,omitempty"`
}
