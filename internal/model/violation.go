package model

// Severity indicates the severity level of a violation.
type Severity string

// SeverityWarning is the only severity this tool emits; missing
// banners never block anything.
const SeverityWarning Severity = "warning"

// CodeFunctionFormat identifies the banner format rule in rendered
// output and stored reports.
const CodeFunctionFormat = "functionFormat"

// Violation reports one function definition that lacks a correctly
// formatted banner. StartLine is the 0-based index of the def line;
// EndColumn is the length of that line so renderers can underline it.
type Violation struct {
	StartLine int
	EndColumn int
	Name      string
	Message   string
	Severity  Severity
	Code      string
}

// Insertion describes a pure text insertion at a 0-based line/column
// position. Fixes are always insertions, never deletions or
// replacements, so applying them can not lose user text.
type Insertion struct {
	Line   int
	Column int
	Text   string
}
