// Package model defines the data structures for line range extraction and split analysis.
package model

import "fmt"

// Path represents a file system path.
type Path string

// Mode selects whether extracted lines stay in the source file.
type Mode string

const (
	// ModeCopy keeps the extracted lines in the source file.
	ModeCopy Mode = "copy"
	// ModeMove removes the extracted lines from the source file.
	ModeMove Mode = "move"
)

// ParseMode converts user input into a Mode. An empty string yields ModeCopy.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeCopy:
		return ModeCopy, nil
	case ModeMove:
		return ModeMove, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be %q or %q", s, ModeMove, ModeCopy)
	}
}

// Range is an inclusive, 1-indexed line range.
type Range struct {
	Start int
	End   int
}

// Len returns the number of lines covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ExtractionRequest describes a single copy or move of a line range.
type ExtractionRequest struct {
	Source    Path
	Target    Path
	StartLine int
	EndLine   int
	Mode      Mode
}
