package mailcheck

import (
	"errors"

	"github.com/reoring/mailcheck/i18n"
	"github.com/reoring/mailcheck/internal/syntax"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmpty            = "empty"
	CodeMissingAt        = "missing_at"
	CodeMultipleAt       = "multiple_at"
	CodeLeadingDot       = "leading_dot"
	CodeTrailingDot      = "trailing_dot"
	CodeConsecutiveDots  = "consecutive_dots"
	CodeLocalTooLong     = "local_too_long"
	CodeDomainTooLong    = "domain_too_long"
	CodeInvalidDomain    = "invalid_domain"
	CodeInvalidCharacter = "invalid_character"
	CodeGeneric          = "not_valid"
)

// Issue is a single validation failure. Validation is fail-fast: the first
// violation of the left-to-right, local-part-then-domain scan is the one
// reported, so an error always carries exactly one Issue.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string // Localized human message; see the i18n package.
}

// Error returns the human message, falling back to the code.
func (i Issue) Error() string {
	if i.Message != "" {
		return i.Message
	}
	return i.Code
}

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var is Issue
	if errors.As(err, &is) {
		return is, true
	}
	return Issue{}, false
}

// CodeOf returns the issue code carried by err. It returns "" for nil and
// CodeGeneric for errors that are not an Issue.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	if is, ok := AsIssue(err); ok {
		return is.Code
	}
	return CodeGeneric
}

func issueFromKind(k syntax.Kind) Issue {
	code := string(k)
	return Issue{Code: code, Message: i18n.T(code, nil)}
}
