package signature

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"partner-trx-api/internal/domain"
)

var passwordB64 = base64.StdEncoding.EncodeToString([]byte("FAKEPASSWORD1234"))

func TestCompute_Deterministic(t *testing.T) {
	ts := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	first := Compute(ts, "FAKEGOOGLE", "REF-0001", 150, passwordB64)
	second := Compute(ts, "FAKEGOOGLE", "REF-0001", 150, passwordB64)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestCompute_EveryFieldChangesTheSignature(t *testing.T) {
	ts := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	reference := Compute(ts, "FAKEGOOGLE", "REF-0001", 150, passwordB64)

	testCases := []struct {
		name     string
		computed string
	}{
		{name: "different timestamp", computed: Compute(ts.Add(time.Second), "FAKEGOOGLE", "REF-0001", 150, passwordB64)},
		{name: "different partner key", computed: Compute(ts, "FAKEPEOPLE", "REF-0001", 150, passwordB64)},
		{name: "different reference", computed: Compute(ts, "FAKEGOOGLE", "REF-0002", 150, passwordB64)},
		{name: "different amount", computed: Compute(ts, "FAKEGOOGLE", "REF-0001", 151, passwordB64)},
		{name: "different password", computed: Compute(ts, "FAKEGOOGLE", "REF-0001", 150, "b3RoZXI=")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.NotEqual(t, reference, testCase.computed)
		})
	}
}

func TestCompute_TruncatesSubSeconds(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	withNanos := base.Add(300 * time.Millisecond)

	assert.Equal(t,
		Compute(base, "FAKEGOOGLE", "REF-0001", 150, passwordB64),
		Compute(withNanos, "FAKEGOOGLE", "REF-0001", 150, passwordB64),
	)
}

func TestCompute_NormalizesToUTC(t *testing.T) {
	utc := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	plusTwo := utc.In(time.FixedZone("UTC+2", 2*60*60))

	assert.Equal(t,
		Compute(utc, "FAKEGOOGLE", "REF-0001", 150, passwordB64),
		Compute(plusTwo, "FAKEGOOGLE", "REF-0001", 150, passwordB64),
	)
}

func TestVerify(t *testing.T) {
	ts := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	req := domain.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "REF-0001",
		PartnerPassword: passwordB64,
		TotalAmount:     150,
		Timestamp:       ts.Format(time.RFC3339),
	}
	req.Sig = Compute(ts, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword)

	assert.True(t, Verify(req))

	tampered := req
	tampered.TotalAmount = 9999
	assert.False(t, Verify(tampered))
}

func TestVerify_FailsClosedOnBadTimestamp(t *testing.T) {
	req := domain.TransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "REF-0001",
		PartnerPassword: passwordB64,
		TotalAmount:     150,
		Timestamp:       "not-a-timestamp",
		Sig:             "anything",
	}

	assert.False(t, Verify(req))
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "RFC3339", value: "2025-06-15T10:30:00Z"},
		{name: "RFC3339 with offset", value: "2025-06-15T12:30:00+02:00"},
		{name: "no offset", value: "2025-06-15T10:30:00"},
		{name: "space separated", value: "2025-06-15 10:30:00"},
		{name: "garbage", value: "15/06/2025", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ParseTimestamp(testCase.value)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
