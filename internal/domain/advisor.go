package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mouse-blink/linesplit/internal/adapter"
	m "github.com/mouse-blink/linesplit/internal/model"
)

// DefaultTargetSize is the number of lines per suggested file when none is given.
const DefaultTargetSize = 200

const (
	previewLimit = 50
	markerLimit  = 50
)

// Advisor scans files for logical sections and proposes split ranges.
type Advisor interface {
	Analyze(path m.Path) (m.FileAnalysis, error)
	// Suggest returns ranges covering [1, TotalLines], or nothing when the
	// file already fits in targetSize lines.
	Suggest(analysis m.FileAnalysis, targetSize int) []m.Suggestion
	// Plan turns suggestions into copy-mode plan items targeting
	// <stem>_part<N><ext>.
	Plan(analysis m.FileAnalysis, suggestions []m.Suggestion) []m.PlanItem
}

type advisor struct {
	fs adapter.FileSystemAdapter
}

// NewAdvisor creates a new Advisor reading through fs.
func NewAdvisor(fs adapter.FileSystemAdapter) Advisor {
	return &advisor{fs: fs}
}

func (a *advisor) Analyze(path m.Path) (m.FileAnalysis, error) {
	content, err := a.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.FileAnalysis{}, m.WrapError(m.KindNotFound, path, fmt.Sprintf("file not found: %s", path), err)
		}

		return m.FileAnalysis{}, m.WrapError(m.KindIO, path, fmt.Sprintf("error reading %s", path), err)
	}

	patterns := patternsFor(path)
	lines := splitLines(content)

	analysis := m.FileAnalysis{
		File:       path,
		Language:   patterns.name,
		TotalLines: len(lines),
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(string(raw), "\r\n")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isSectionMarker(trimmed) {
			analysis.Sections = append(analysis.Sections, m.SectionMarker{
				Line: lineNo,
				Text: truncateRunes(trimmed, markerLimit),
			})
		}

		isImport := patterns.imports.MatchString(line)
		if isComment(trimmed) && !isImport {
			continue
		}

		if isImport {
			if analysis.Imports == nil {
				analysis.Imports = &m.Range{Start: lineNo}
			}

			analysis.Imports.End = lineNo
		}

		if name, ok := matchName(patterns.function, patterns.functionSlots, line); ok {
			analysis.Functions = append(analysis.Functions, m.Definition{
				Name:    name,
				Line:    lineNo,
				Preview: preview(trimmed),
			})
		}

		if name, ok := matchName(patterns.class, patterns.classSlots, line); ok {
			analysis.Classes = append(analysis.Classes, m.Definition{
				Name:    name,
				Line:    lineNo,
				Preview: preview(trimmed),
			})
		}
	}

	return analysis, nil
}

type logicalBreak struct {
	line  int
	label string
}

func (a *advisor) Suggest(analysis m.FileAnalysis, targetSize int) []m.Suggestion {
	if targetSize < 1 {
		targetSize = DefaultTargetSize
	}

	total := analysis.TotalLines
	if total <= targetSize {
		return nil
	}

	breaks := logicalBreaks(analysis)
	if len(breaks) == 0 {
		return uniformChunks(total, targetSize)
	}

	var suggestions []m.Suggestion

	start := 1

	for _, br := range breaks {
		if br.line-start < targetSize {
			continue
		}

		suggestions = append(suggestions, m.Suggestion{
			StartLine:   start,
			EndLine:     br.line - 1,
			LineCount:   br.line - start,
			Description: "Section before " + br.label,
		})
		start = br.line
	}

	if start <= total {
		suggestions = append(suggestions, m.Suggestion{
			StartLine:   start,
			EndLine:     total,
			LineCount:   total - start + 1,
			Description: "Final section",
		})
	}

	return suggestions
}

func (a *advisor) Plan(analysis m.FileAnalysis, suggestions []m.Suggestion) []m.PlanItem {
	file := string(analysis.File)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(filepath.Base(file), ext)

	items := make([]m.PlanItem, 0, len(suggestions))
	for i, s := range suggestions {
		items = append(items, m.PlanItem{
			Source: file,
			Target: fmt.Sprintf("%s_part%d%s", stem, i+1, ext),
			Start:  s.StartLine,
			End:    s.EndLine,
		})
	}

	return items
}

// logicalBreaks merges class and function lines, classes first on ties.
func logicalBreaks(analysis m.FileAnalysis) []logicalBreak {
	breaks := make([]logicalBreak, 0, len(analysis.Classes)+len(analysis.Functions))

	for _, cls := range analysis.Classes {
		breaks = append(breaks, logicalBreak{line: cls.Line, label: "class " + cls.Name})
	}

	for _, fn := range analysis.Functions {
		breaks = append(breaks, logicalBreak{line: fn.Line, label: "function " + fn.Name})
	}

	sort.SliceStable(breaks, func(i, j int) bool {
		return breaks[i].line < breaks[j].line
	})

	return breaks
}

func uniformChunks(total, size int) []m.Suggestion {
	count := (total + size - 1) / size
	chunks := make([]m.Suggestion, 0, count)

	for i := range count {
		start := i*size + 1
		end := min((i+1)*size, total)
		chunks = append(chunks, m.Suggestion{
			StartLine:   start,
			EndLine:     end,
			LineCount:   end - start + 1,
			Description: fmt.Sprintf("Chunk %d/%d", i+1, count),
		})
	}

	return chunks
}

func preview(trimmed string) string {
	if len([]rune(trimmed)) > previewLimit {
		return truncateRunes(trimmed, previewLimit) + "..."
	}

	return trimmed
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
