package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const quoteNumberPrefix = "BIM"

// FragmentMinter mints a fresh store-side unique identifier and returns
// its trailing characters as an uppercase fragment.
type FragmentMinter func() (string, error)

// DefaultFragmentMinter takes the last six hex characters of a freshly
// generated UUID.
func DefaultFragmentMinter() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	raw := strings.ReplaceAll(id.String(), "-", "")
	return strings.ToUpper(raw[len(raw)-6:]), nil
}

// NewQuoteNumber builds a human-readable quote number of the form
// BIM-<YYYYMMDD>-<FRAG6>-<RAND4>. If the fragment source fails it falls
// back to BIM-<unix-millis>-<RAND4>. It never returns an error; true
// uniqueness is enforced by the store's unique index on insert.
func NewQuoteNumber(now time.Time, mint FragmentMinter) string {
	random4 := 1000 + rand.Intn(9000)

	fragment, err := mint()
	if err != nil || len(fragment) != 6 {
		return fmt.Sprintf("%s-%d-%d", quoteNumberPrefix, now.UnixMilli(), random4)
	}

	return fmt.Sprintf("%s-%s-%s-%d", quoteNumberPrefix, now.UTC().Format("20060102"), fragment, random4)
}
