package model

// Definition is a detected function or class definition.
type Definition struct {
	Name    string
	Line    int
	Preview string // trimmed line, at most 50 characters plus "..."
}

// SectionMarker is a decorative comment banner.
type SectionMarker struct {
	Line int
	Text string
}

// FileAnalysis is the result of scanning a file for logical sections.
type FileAnalysis struct {
	File Path
	// Language names the pattern set chosen from the file extension.
	Language   string
	TotalLines int
	Functions  []Definition
	Classes    []Definition
	// Imports spans the first through the last import line, or is nil.
	Imports  *Range
	Sections []SectionMarker
}

// Suggestion is one proposed output file of a split.
type Suggestion struct {
	StartLine   int
	EndLine     int
	LineCount   int
	Description string
}

// PlanItem is the on-disk form of an extraction request.
type PlanItem struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Mode   string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Request converts the item into an ExtractionRequest.
func (p PlanItem) Request() (ExtractionRequest, error) {
	mode, err := ParseMode(p.Mode)
	if err != nil {
		return ExtractionRequest{}, err
	}

	return ExtractionRequest{
		Source:    Path(p.Source),
		Target:    Path(p.Target),
		StartLine: p.Start,
		EndLine:   p.End,
		Mode:      mode,
	}, nil
}
