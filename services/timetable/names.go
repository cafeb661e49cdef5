package timetable

import (
	"errors"
	"strings"
	"unicode"
)

// ErrAmbiguousMember is returned when fuzzy matching finds more than one
// stored schedule key for a display name.
var ErrAmbiguousMember = errors.New("display name matches more than one stored schedule")

// SanitizeKey makes a member name safe for use as a storage map key: the
// backing store rejects literal dots inside nested document keys, so dots
// become spaces and repeated whitespace collapses.
func SanitizeKey(name string) string {
	s := strings.ReplaceAll(name, ".", " ")
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName reduces a name for fuzzy comparison: lowercase, all
// non-alphanumeric runes stripped. Pasted member lists and stored keys
// drift in punctuation and casing; this is the documented join strategy,
// and it is lossy on purpose.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchScheduleKey finds the stored schedule key for a display name by
// normalized comparison. A missing match returns ("", false, nil) — the
// member simply has no schedule yet. Two distinct keys normalizing to the
// same value is reported as ErrAmbiguousMember rather than picking one.
func MatchScheduleKey(displayName string, keys []string) (string, bool, error) {
	want := NormalizeName(displayName)
	if want == "" {
		return "", false, nil
	}

	var found string
	var ok bool
	for _, k := range keys {
		if NormalizeName(k) != want {
			continue
		}
		if ok && k != found {
			return "", false, ErrAmbiguousMember
		}
		found, ok = k, true
	}
	return found, ok, nil
}
