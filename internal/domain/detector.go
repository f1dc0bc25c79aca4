// Package domain contains the core banner checking and fixing logic.
package domain

import "regexp"

// Detector encapsulates the structural detection patterns so the
// scanning logic can focus on banner rules while delegating "what is a
// function line" to one component. The current implementation is
// regex-based line matching, not a parser; a real Python parser could
// replace it without touching the scanner or fixer contracts.
type Detector interface {
	// IsDefinition reports whether a trimmed line starts a function
	// definition.
	IsDefinition(trimmed string) bool

	// IsDecorator reports whether a trimmed line is a decorator.
	IsDecorator(trimmed string) bool

	// FunctionName extracts the function name from a trimmed definition
	// line. ok is false when the line is not a definition.
	FunctionName(trimmed string) (name string, ok bool)
}

var defPattern = regexp.MustCompile(`^def\s+(\w+)`)

// RegexDetector matches function definitions and decorators with line
// prefix heuristics. Multi-line signatures and def tokens embedded in
// strings are out of scope.
type RegexDetector struct{}

// NewRegexDetector constructs a RegexDetector.
func NewRegexDetector() RegexDetector {
	return RegexDetector{}
}

// IsDefinition reports whether the trimmed line begins a def statement.
func (RegexDetector) IsDefinition(trimmed string) bool {
	return defPattern.MatchString(trimmed)
}

// IsDecorator reports whether the trimmed line begins with "@".
func (RegexDetector) IsDecorator(trimmed string) bool {
	return len(trimmed) > 0 && trimmed[0] == '@'
}

// FunctionName captures the identifier following the def keyword.
func (RegexDetector) FunctionName(trimmed string) (string, bool) {
	m := defPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}

	return m[1], true
}
