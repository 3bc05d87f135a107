package usecase_test

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimafrica/quote-api/internal/usecase"
)

var quoteNumberFormat = regexp.MustCompile(`^BIM-\d{8}-[A-Z0-9]{6}-\d{4}$`)

func TestNewQuoteNumberFormat(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)

	qn := usecase.NewQuoteNumber(now, usecase.DefaultFragmentMinter)

	assert.Regexp(t, quoteNumberFormat, qn)
	assert.True(t, strings.HasPrefix(qn, "BIM-20250309-"))

	parts := strings.Split(qn, "-")
	require.Len(t, parts, 4)
	random4, err := strconv.Atoi(parts[3])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, random4, 1000)
	assert.LessOrEqual(t, random4, 9999)
}

func TestNewQuoteNumberFallback(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	failing := func() (string, error) {
		return "", errors.New("fragment source unavailable")
	}

	qn := usecase.NewQuoteNumber(now, failing)

	assert.Regexp(t, `^BIM-\d{13}-\d{4}$`, qn)
	assert.Contains(t, qn, strconv.FormatInt(now.UnixMilli(), 10))
}

func TestDefaultFragmentMinter(t *testing.T) {
	frag, err := usecase.DefaultFragmentMinter()

	require.NoError(t, err)
	assert.Regexp(t, `^[A-F0-9]{6}$`, frag)
}

func TestNewQuoteNumbersDiffer(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[usecase.NewQuoteNumber(now, usecase.DefaultFragmentMinter)] = true
	}
	// Collisions are probabilistically possible but should not show up in
	// a handful of draws.
	assert.Greater(t, len(seen), 45)
}
