package git

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidRefName is wrapped by every ValidateRefName failure.
var ErrInvalidRefName = errors.New("invalid branch name")

// ValidateRefName checks a user-provided branch name against git's
// ref-format rules:
// - Cannot start with '.', '/' or '-'
// - Cannot end with '.lock', '.' or '/'
// - Cannot contain '..', '//' or '@{'
// - Cannot contain '~', '^', ':', '?', '*', '[', '\', spaces, control chars
// - Cannot be '@'
// '#' is allowed; the ticket convention relies on it.
func ValidateRefName(name string) error {
	invalid := func(reason string) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidRefName, name, reason)
	}

	if name == "" {
		return invalid("cannot be empty")
	}
	if name == "@" {
		return invalid("cannot be '@'")
	}

	for _, prefix := range []string{".", "/", "-"} {
		if strings.HasPrefix(name, prefix) {
			return invalid(fmt.Sprintf("cannot start with '%s'", prefix))
		}
	}
	for _, suffix := range []string{".lock", ".", "/"} {
		if strings.HasSuffix(name, suffix) {
			return invalid(fmt.Sprintf("cannot end with '%s'", suffix))
		}
	}
	for _, seq := range []string{"..", "//", "@{", "/."} {
		if strings.Contains(name, seq) {
			return invalid(fmt.Sprintf("cannot contain '%s'", seq))
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return invalid("cannot contain control characters")
		}
		if strings.ContainsRune("~^:?*[\\ ", r) {
			return invalid(fmt.Sprintf("cannot contain '%c'", r))
		}
	}

	return nil
}
