// Package codegen issues short random identifiers under a caller-supplied
// uniqueness check. The check is a best-effort pre-filter; the storage-level
// unique constraint stays the authoritative guard, and callers retry with a
// fresh draw when an insert still collides.
package codegen

import (
	"math/rand"
	"net/http"
	"strings"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
)

const (
	DefaultAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultLength      = 3
	DefaultMaxAttempts = 100
)

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(code string) (bool, error)

var ErrCodeSpaceExhausted = apperror.New(
	apperror.CodeSpaceExhausted,
	"Could not generate a unique code, the code space may be exhausted",
	http.StatusInternalServerError,
)

// Issue draws codes of the given length from alphabet until exists reports a
// free one, up to maxAttempts draws. The rand source is injected so tests can
// pin the sequence.
func Issue(rng *rand.Rand, exists ExistsFunc, alphabet string, length, maxAttempts int) (string, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if length <= 0 {
		length = DefaultLength
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := draw(rng, alphabet, length)

		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

func draw(rng *rand.Rand, alphabet string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}
