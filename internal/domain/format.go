package domain

import (
	"strings"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

// TopRule is the horizontal rule line required above and below the name
// line of an opening banner. It must match byte for byte.
const TopRule = "# |-----------------------------------------------------------------------------|"

// NameLine renders the middle line of an opening banner.
func NameLine(name string) string {
	return "# " + name
}

// BottomRule renders the closing banner line placed after a function body.
func BottomRule(name string) string {
	return "# |-------------------------End of " + name + " ------------------------------|"
}

// FormatValidator decides whether the fixed-position lines around a
// function's boundaries match the required banner pattern.
type FormatValidator struct {
	det Detector
}

// NewFormatValidator constructs a FormatValidator.
func NewFormatValidator(det Detector) FormatValidator {
	return FormatValidator{det: det}
}

// IsValidFormat reports whether the function starting at startLine
// carries a correct opening banner: TopRule, "# name", TopRule on the
// three lines directly above a def line for that name. With fewer than
// three lines above there is no room for a banner, so the format fails.
//
// The closing banner is deliberately not part of the verdict; see
// HasClosingBanner. Enforcing it would start flagging files that pass
// today.
func (v FormatValidator) IsValidFormat(doc m.Document, startLine int, name string) bool {
	if startLine < 3 {
		return false
	}

	if strings.TrimSpace(doc.Line(startLine-3)) != TopRule {
		return false
	}

	if strings.TrimSpace(doc.Line(startLine-2)) != NameLine(name) {
		return false
	}

	if strings.TrimSpace(doc.Line(startLine-1)) != TopRule {
		return false
	}

	return strings.HasPrefix(strings.TrimSpace(doc.Line(startLine)), "def "+name)
}

// HasClosingBanner reports whether the line directly after endLine is
// the closing banner for name. It is kept out of IsValidFormat so the
// opening-banner verdict stays the only source of violations.
func (v FormatValidator) HasClosingBanner(doc m.Document, endLine int, name string) bool {
	return strings.TrimSpace(doc.Line(endLine+1)) == BottomRule(name)
}
