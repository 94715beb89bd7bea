package discount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_BandBoundaries(t *testing.T) {
	testCases := []struct {
		name            string
		amount          string
		expectedPercent int64
	}{
		{name: "below first band", amount: "199.99", expectedPercent: 0},
		{name: "band start 200", amount: "200", expectedPercent: 5},
		{name: "band end 500", amount: "500", expectedPercent: 5},
		{name: "501 falls in 7% band", amount: "501", expectedPercent: 7},
		{name: "fractional 500.50 falls in 7% band", amount: "500.50", expectedPercent: 7},
		{name: "band end 800", amount: "800", expectedPercent: 7},
		{name: "801 falls in 10% band", amount: "801", expectedPercent: 10},
		{name: "band end 1200", amount: "1200", expectedPercent: 10},
		{name: "1201 falls in top band", amount: "1201", expectedPercent: 15},
		{name: "zero amount", amount: "0", expectedPercent: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			res := Calculate(decimal.RequireFromString(testCase.amount))
			assert.True(t, res.Percent.Equal(decimal.NewFromInt(testCase.expectedPercent)),
				"expected %d%%, got %s", testCase.expectedPercent, res.Percent)
		})
	}
}

func TestCalculate_PrimeBonus(t *testing.T) {
	// 503 is prime and above 500: 7% band + 8% bonus
	res := Calculate(decimal.NewFromInt(503))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(15)), "got %s", res.Percent)

	// 502 is even, no bonus
	res = Calculate(decimal.NewFromInt(502))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(7)), "got %s", res.Percent)
}

func TestCalculate_PrimeBonusRequiresAmountAbove500(t *testing.T) {
	// 499 is prime but not above 500, stays in the 5% band
	res := Calculate(decimal.NewFromInt(499))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(5)), "got %s", res.Percent)
}

func TestCalculate_Mod10Bonus(t *testing.T) {
	// 905 ends in 5 and exceeds 900: 10% band + 10% bonus, capped at 20
	res := Calculate(decimal.NewFromInt(905))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(20)), "got %s", res.Percent)
	assert.True(t, res.Discount.Equal(decimal.NewFromInt(181)), "got %s", res.Discount)
	assert.True(t, res.Final.Equal(decimal.NewFromInt(724)), "got %s", res.Final)

	// 895 ends in 5 but does not exceed 900
	res = Calculate(decimal.NewFromInt(895))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(10)), "got %s", res.Percent)

	// fractional amounts do not end in 5
	res = Calculate(decimal.RequireFromString("905.5"))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(10)), "got %s", res.Percent)
}

func TestCalculate_CapAt20(t *testing.T) {
	// 1205 is above 1200 and ends in 5: 15% + 10% would be 25, capped to 20
	res := Calculate(decimal.NewFromInt(1205))
	assert.True(t, res.Percent.Equal(decimal.NewFromInt(20)), "got %s", res.Percent)
}

func TestCalculate_ExactDecimalArithmetic(t *testing.T) {
	// 333.33 at 5%: discount 16.6665, final 316.6635, no float drift
	res := Calculate(decimal.RequireFromString("333.33"))
	assert.True(t, res.Discount.Equal(decimal.RequireFromString("16.6665")), "got %s", res.Discount)
	assert.True(t, res.Final.Equal(decimal.RequireFromString("316.6635")), "got %s", res.Final)
	assert.True(t, res.Discount.Add(res.Final).Equal(decimal.RequireFromString("333.33")))
}

func TestIsPrime(t *testing.T) {
	testCases := []struct {
		n        int64
		expected bool
	}{
		{n: -7, expected: false},
		{n: 0, expected: false},
		{n: 1, expected: false},
		{n: 2, expected: true},
		{n: 3, expected: true},
		{n: 4, expected: false},
		{n: 9, expected: false},
		{n: 503, expected: true},
		{n: 507, expected: false},
		{n: 7919, expected: true},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, isPrime(testCase.n), "n=%d", testCase.n)
	}
}
