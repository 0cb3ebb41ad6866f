package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

var caser = cases.Fold()

// Name folds a player or user name for case-insensitive lookups and
// uniqueness checks. Stored names keep their original casing.
func Name(s string) string {
	return caser.String(strings.Join(strings.Fields(s), " "))
}
