package units

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlainUnits(t *testing.T) {
	q, err := Normalize(Gram, "1000", "", "")
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromInt(1000)))

	q, err = Normalize(Liter, "2.5", "", "")
	require.NoError(t, err)
	assert.Equal(t, "2.5", q.String())
}

func TestNormalizeLbsOz(t *testing.T) {
	q, err := Normalize(PoundOunce, "", "5", "3")
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromInt(83)), "5 lbs 3 oz = 83 oz, got %s", q)

	// 空フィールドは 0 扱い
	q, err = Normalize(PoundOunce, "", "2", "")
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromInt(32)))
}

func TestNormalizeErrors(t *testing.T) {
	_, err := Normalize(Gram, "abc", "", "")
	assert.Error(t, err)

	_, err = Normalize(PoundOunce, "", "x", "0")
	assert.Error(t, err)

	_, err = Normalize("stone", "1", "", "")
	assert.Error(t, err)
}

func TestSplitLbsOzRoundTrip(t *testing.T) {
	for _, total := range []int64{0, 1, 15, 16, 17, 83, 160, 1000} {
		amount := decimal.NewFromInt(total)
		lbs, oz := SplitLbsOz(amount)

		back, err := Normalize(PoundOunce, "", lbs.String(), oz.String())
		require.NoError(t, err)
		assert.True(t, back.Equal(amount), "round trip for %d oz: got %s", total, back)
		assert.True(t, oz.LessThan(decimal.NewFromInt(16)))
	}
}

func TestToBase(t *testing.T) {
	unit, amount := ToBase(Kilogram, decimal.NewFromInt(2))
	assert.Equal(t, Gram, unit)
	assert.True(t, amount.Equal(decimal.NewFromInt(2000)))

	unit, amount = ToBase(Liter, decimal.NewFromFloat(1.5))
	assert.Equal(t, Milliliter, unit)
	assert.True(t, amount.Equal(decimal.NewFromInt(1500)))

	unit, amount = ToBase(Pound, decimal.NewFromInt(2))
	assert.Equal(t, Ounce, unit)
	assert.True(t, amount.Equal(decimal.NewFromInt(32)))

	unit, amount = ToBase(PoundOunce, decimal.NewFromInt(83))
	assert.Equal(t, Ounce, unit)
	assert.True(t, amount.Equal(decimal.NewFromInt(83)))

	unit, amount = ToBase(Gram, decimal.NewFromInt(7))
	assert.Equal(t, Gram, unit)
	assert.True(t, amount.Equal(decimal.NewFromInt(7)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1000.0", Format(decimal.NewFromInt(1000)))
	assert.Equal(t, "2.5", Format(decimal.NewFromFloat(2.5)))
}
