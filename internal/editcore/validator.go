package editcore

import (
	"regexp"

	"github.com/unkn0wn-root/editline/internal/errdef"
)

// Predefined validator patterns. PatternAny is the default and accepts
// every string, including the empty one.
const (
	PatternAny   = ".*"
	PatternInt   = "[+-]?[0-9]*"
	PatternUInt  = "[0-9]*"
	PatternFloat = `[+-]?[0-9]*\.?[0-9]*`
)

// Validator matches candidate texts against a regular expression with
// full-match semantics: the entire candidate must match, not a substring.
// The zero value accepts everything.
type Validator struct {
	pattern string
	re      *regexp.Regexp
}

func NewValidator() Validator {
	var v Validator
	_ = v.SetPattern(PatternAny)
	return v
}

// SetPattern recompiles the validator. A malformed pattern reports
// errdef.CodePattern and leaves both the compiled matcher and the stored
// pattern string exactly as they were.
func (v *Validator) SetPattern(pattern string) error {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return errdef.Wrap(errdef.CodePattern, err, "compile input pattern %q", pattern)
	}
	v.pattern = pattern
	v.re = re
	return nil
}

func (v Validator) Pattern() string {
	return v.pattern
}

// Matches reports whether candidate matches the pattern in full.
func (v Validator) Matches(candidate string) bool {
	if v.re == nil {
		return true
	}
	return v.re.MatchString(candidate)
}
