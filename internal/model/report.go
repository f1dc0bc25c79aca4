package model

// FileReport holds the scan results for a single source file.
type FileReport struct {
	Origin     Path
	Functions  int
	Violations []Violation
}

// FixResult records how many banner insertions were applied to a file.
type FixResult struct {
	Origin    Path
	Functions int
	Inserted  int
}
