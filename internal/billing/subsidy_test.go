package billing_test

import (
	"testing"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/billing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserPayment(t *testing.T) {
	calc := billing.NewCalculator()

	t.Run("no subsidy means full price", func(t *testing.T) {
		got := calc.UserPayment(decimal.NewFromInt(1000), decimal.Zero)
		assert.True(t, got.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("half subsidy", func(t *testing.T) {
		got := calc.UserPayment(decimal.NewFromInt(1000), decimal.RequireFromString("0.5"))
		assert.True(t, got.Equal(decimal.NewFromInt(500)))
	})

	t.Run("full subsidy means zero", func(t *testing.T) {
		got := calc.UserPayment(decimal.NewFromInt(1000), decimal.NewFromInt(1))
		assert.True(t, got.Equal(decimal.Zero))
	})

	t.Run("rounds to whole yen", func(t *testing.T) {
		// 333 * 0.3 = 99.9 subsidy, user pays 233.1 -> 233
		got := calc.UserPayment(decimal.NewFromInt(333), decimal.RequireFromString("0.3"))
		assert.True(t, got.Equal(decimal.NewFromInt(233)), "got %s", got)
	})

	t.Run("rate above one is clamped", func(t *testing.T) {
		got := calc.UserPayment(decimal.NewFromInt(1000), decimal.NewFromInt(2))
		assert.True(t, got.Equal(decimal.Zero))
	})

	t.Run("negative rate is treated as zero", func(t *testing.T) {
		got := calc.UserPayment(decimal.NewFromInt(1000), decimal.NewFromInt(-1))
		assert.True(t, got.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("negative total is zero", func(t *testing.T) {
		got := calc.UserPayment(decimal.NewFromInt(-100), decimal.Zero)
		assert.True(t, got.Equal(decimal.Zero))
	})
}
