package model

// FunctionBlock is a derived view of one function in a document: its
// effective start line (the def line, not any decorator above it), the
// last line of its indented body, and the function name. Blocks are
// recomputed on every scan; they are never persisted.
type FunctionBlock struct {
	StartLine int
	EndLine   int
	Name      string
}
