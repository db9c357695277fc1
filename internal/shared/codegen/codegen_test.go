package codegen_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/codegen"

	"github.com/stretchr/testify/assert"
)

func TestIssue(t *testing.T) {
	t.Run("returns first free candidate", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		code, err := codegen.Issue(rng, func(string) (bool, error) {
			return false, nil
		}, codegen.DefaultAlphabet, codegen.DefaultLength, codegen.DefaultMaxAttempts)

		assert.NoError(t, err)
		assert.Len(t, code, codegen.DefaultLength)
		for _, ch := range code {
			assert.Contains(t, codegen.DefaultAlphabet, string(ch))
		}
	})

	t.Run("skips taken candidates", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		var seen []string
		code, err := codegen.Issue(rng, func(candidate string) (bool, error) {
			seen = append(seen, candidate)
			return len(seen) < 3, nil
		}, codegen.DefaultAlphabet, codegen.DefaultLength, codegen.DefaultMaxAttempts)

		assert.NoError(t, err)
		assert.Len(t, seen, 3)
		assert.Equal(t, seen[2], code)
	})

	t.Run("deterministic for a pinned source", func(t *testing.T) {
		first, err := codegen.Issue(rand.New(rand.NewSource(42)), func(string) (bool, error) {
			return false, nil
		}, codegen.DefaultAlphabet, codegen.DefaultLength, codegen.DefaultMaxAttempts)
		assert.NoError(t, err)

		second, err := codegen.Issue(rand.New(rand.NewSource(42)), func(string) (bool, error) {
			return false, nil
		}, codegen.DefaultAlphabet, codegen.DefaultLength, codegen.DefaultMaxAttempts)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("exhaustion after max attempts", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		attempts := 0
		_, err := codegen.Issue(rng, func(string) (bool, error) {
			attempts++
			return true, nil
		}, codegen.DefaultAlphabet, codegen.DefaultLength, 5)

		assert.ErrorIs(t, err, codegen.ErrCodeSpaceExhausted)
		assert.Equal(t, 5, attempts)
	})

	t.Run("exists error propagates", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		boom := errors.New("db down")

		_, err := codegen.Issue(rng, func(string) (bool, error) {
			return false, boom
		}, codegen.DefaultAlphabet, codegen.DefaultLength, codegen.DefaultMaxAttempts)

		assert.ErrorIs(t, err, boom)
	})
}
