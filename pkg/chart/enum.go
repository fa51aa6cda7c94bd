package chart

import (
	"slices"
	"strings"
)

// setEnum gates assignment of an enumerated string option. The candidate
// is lower-cased and checked with a true membership test over the allowed
// set. On success the target is updated; on failure it is left untouched
// and a single diagnostic names the option, the rejected value and the
// allowed domain.
func (b *Base) setEnum(option, candidate string, allowed []string, target *string) bool {
	value := strings.ToLower(strings.TrimSpace(candidate))

	if !slices.Contains(allowed, value) {
		b.log.Warn("option value rejected",
			"option", option,
			"value", candidate,
			"allowed", quoteJoin(allowed))

		return false
	}

	*target = value

	return true
}

// quoteJoin renders the allowed domain as 'a', 'b', 'c' for diagnostics.
func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}

	return strings.Join(quoted, ", ")
}
