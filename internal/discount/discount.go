package discount

import "github.com/shopspring/decimal"

// Result is the discount breakdown for one amount.
type Result struct {
	Percent  decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

var (
	band200  = decimal.NewFromInt(200)
	band500  = decimal.NewFromInt(500)
	band800  = decimal.NewFromInt(800)
	band900  = decimal.NewFromInt(900)
	band1200 = decimal.NewFromInt(1200)
	five     = decimal.NewFromInt(5)
	ten      = decimal.NewFromInt(10)
	hundred  = decimal.NewFromInt(100)
)

// Calculate computes the tiered discount for a non-negative amount.
//
// Band convention: [0,200) 0%, [200,500] 5%, (500,800] 7%, (800,1200] 10%,
// >1200 15%. Bonus rules are additive on top of the band: +8% when the
// truncated integer part is prime and the amount exceeds 500, +10% when the
// amount exceeds 900 and ends in 5 (amount mod 10 == 5). The combined
// percent is capped at 20. All arithmetic is exact decimal.
func Calculate(total decimal.Decimal) Result {
	var base int64
	switch {
	case total.LessThan(band200):
		base = 0
	case total.LessThanOrEqual(band500):
		base = 5
	case total.LessThanOrEqual(band800):
		base = 7
	case total.LessThanOrEqual(band1200):
		base = 10
	default:
		base = 15
	}

	var extra int64
	if total.GreaterThan(band500) && isPrime(total.IntPart()) {
		extra += 8
	}
	if total.GreaterThan(band900) && total.Mod(ten).Equal(five) {
		extra += 10
	}

	pct := base + extra
	if pct > 20 {
		pct = 20
	}

	percent := decimal.NewFromInt(pct)
	amount := total.Mul(percent).Div(hundred)

	return Result{
		Percent:  percent,
		Discount: amount,
		Final:    total.Sub(amount),
	}
}

// isPrime runs trial division over odd candidates up to floor(sqrt(n)).
func isPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
