package model

// Summary holds the results of an operation for display.
type Summary struct {
	Input   string
	Output  string
	Target  string // where the result went: a file, a buffer, or empty for stdout
	Hunks   int
	Lines   int
	Message string
}
