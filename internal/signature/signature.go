package signature

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"partner-trx-api/internal/domain"
	"partner-trx-api/pkg/hashing"
)

// sigTimestampLayout is UTC, second precision, no separators.
const sigTimestampLayout = "20060102150405"

// timestampLayouts are the accepted wire formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var errUnparsableTimestamp = errors.New("unparsable timestamp")

// ParseTimestamp parses a partner-supplied timestamp string. Layouts
// without an offset are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errUnparsableTimestamp
}

// Compute builds the expected request signature:
// base64(UTF-8(hex(sha256(timestamp + partnerkey + partnerrefno +
// totalamount + partnerpassword)))). The concatenation order is fixed,
// the timestamp is formatted in UTC with sub-second precision truncated.
func Compute(ts time.Time, partnerKey, partnerRefNo string, totalAmount int64, passwordB64 string) string {
	concatenated := ts.UTC().Format(sigTimestampLayout) +
		partnerKey +
		partnerRefNo +
		strconv.FormatInt(totalAmount, 10) +
		passwordB64

	hexDigest := hex.EncodeToString(hashing.Sum([]byte(concatenated)))
	return base64.StdEncoding.EncodeToString([]byte(hexDigest))
}

// Verify recomputes the expected signature from the request fields and
// compares it against the supplied one in constant time. A timestamp that
// fails to parse at this stage fails closed as a mismatch.
func Verify(req domain.TransactionRequest) bool {
	ts, err := ParseTimestamp(req.Timestamp)
	if err != nil {
		return false
	}

	expected := Compute(ts, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Sig)) == 1
}
