package tests

import (
	"encoding/base64"
	"time"

	"github.com/shopspring/decimal"

	"partner-trx-api/internal/domain"
	"partner-trx-api/internal/signature"
)

var (
	// ServerTime is the frozen clock value the service tests pin to.
	ServerTime = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	PartnerPasswordB64 = base64.StdEncoding.EncodeToString([]byte("FAKEPASSWORD1234"))

	TrxInstance = domain.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "REF-0001",
		PartnerPassword: PartnerPasswordB64,
		TotalAmount:     150,
		Items: []domain.ItemDetail{
			{PartnerItemRef: "i-00001", Name: "Pen", Qty: 3, UnitPrice: 30},
			{PartnerItemRef: "i-00002", Name: "Notebook", Qty: 2, UnitPrice: 30},
		},
	}

	PaymentInstance = domain.PaymentRequest{
		PartnerRefNo: "REF-0001",
		TotalAmount:  decimal.NewFromInt(905),
		Timestamp:    ServerTime,
		Password:     "PlainSecret99",
	}
)

// SignedTrxInstance returns the transaction fixture stamped with ts and a
// signature that matches every field.
func SignedTrxInstance(ts time.Time) domain.TransactionRequest {
	req := TrxInstance
	req.Timestamp = ts.UTC().Format(time.RFC3339)
	req.Sig = signature.Compute(ts, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword)
	return req
}
