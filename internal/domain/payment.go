package domain

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"partner-trx-api/pkg/hashing"
)

// PaymentRequest is the relaxed validation input. One instance per call;
// the password is replaced in place by its masked form before the request
// reaches any log sink.
type PaymentRequest struct {
	PartnerRefNo string          `json:"partnerrefno"`
	TotalAmount  decimal.Decimal `json:"totalamount"`
	Timestamp    time.Time       `json:"timestamp"`
	Password     string          `json:"password,omitempty"` // optional field
}

// LogValue masks the password no matter what state the request is in, so
// plaintext can never leak through a logger even before the in-place
// replacement happened.
func (r PaymentRequest) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("partnerrefno", r.PartnerRefNo),
		slog.String("totalamount", r.TotalAmount.String()),
		slog.Time("timestamp", r.Timestamp),
	}
	if r.Password != "" {
		attrs = append(attrs, slog.String("password", hashing.ShortMask(r.Password)))
	}
	return slog.GroupValue(attrs...)
}

// PaymentResponse is the relaxed validation outcome, constructed fresh per
// call. Amount fields are pointers so rejection payloads omit them.
type PaymentResponse struct {
	Result                 int              `json:"result"`
	Message                string           `json:"message,omitempty"`
	TotalAmount            *decimal.Decimal `json:"totalamount,omitempty"`
	TotalDiscount          *decimal.Decimal `json:"totaldiscount,omitempty"`
	FinalAmount            *decimal.Decimal `json:"finalamount,omitempty"`
	AppliedDiscountPercent *decimal.Decimal `json:"appliedDiscountPercent,omitempty"`
	ServerTime             string           `json:"serverTime,omitempty"`
	RequestTime            string           `json:"requestTime,omitempty"`
	DiffMinutes            float64          `json:"diffMinutes"`
}
