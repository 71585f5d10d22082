package config

import (
	"strings"

	"github.com/unkn0wn-root/editline/internal/editcore"
)

type InputAlignment string

const (
	InputAlignmentLeft   InputAlignment = "left"
	InputAlignmentCenter InputAlignment = "center"
	InputAlignmentRight  InputAlignment = "right"
)

type InputSettings struct {
	CharLimit    int            `json:"char_limit"    toml:"char_limit"`
	Pattern      string         `json:"pattern"       toml:"pattern"`
	PasswordRune string         `json:"password_rune" toml:"password_rune"`
	Alignment    InputAlignment `json:"alignment"     toml:"alignment"`
	LimitWidth   bool           `json:"limit_width"   toml:"limit_width"`
}

const (
	InputCharLimitDefault = 0
	InputCharLimitMax     = 65536
)

func DefaultInputSettings() InputSettings {
	return InputSettings{
		CharLimit:    InputCharLimitDefault,
		Pattern:      editcore.PatternAny,
		PasswordRune: "",
		Alignment:    InputAlignmentLeft,
		LimitWidth:   false,
	}
}

// NormaliseInputSettings fills missing fields with defaults and clamps the
// ones that have sane ranges. Invalid patterns are kept as-is here; they are
// surfaced when the widget compiles them.
func NormaliseInputSettings(in InputSettings) InputSettings {
	out := DefaultInputSettings()
	if in.CharLimit > 0 {
		out.CharLimit = min(in.CharLimit, InputCharLimitMax)
	}
	if strings.TrimSpace(in.Pattern) != "" {
		out.Pattern = in.Pattern
	}
	if runes := []rune(in.PasswordRune); len(runes) > 0 {
		out.PasswordRune = string(runes[0])
	}
	out.Alignment = normaliseAlignment(in.Alignment, out.Alignment)
	out.LimitWidth = in.LimitWidth
	return out
}

func normaliseAlignment(in, def InputAlignment) InputAlignment {
	switch strings.ToLower(strings.TrimSpace(string(in))) {
	case string(InputAlignmentLeft):
		return InputAlignmentLeft
	case string(InputAlignmentCenter):
		return InputAlignmentCenter
	case string(InputAlignmentRight):
		return InputAlignmentRight
	default:
		return def
	}
}
