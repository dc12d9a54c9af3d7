package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/linesplit/internal/model"
)

const unknownName = "unknown"

// Function declarations, arrow functions and function expressions bound to a const.
const jsFunctionPattern = `^(export\s+)?(async\s+)?function\s+(\w+)` +
	`|^(export\s+)?const\s+(\w+)\s*=\s*(async\s+)?.*=>` +
	`|^(export\s+)?const\s+(\w+)\s*=\s*(async\s+)?function`

// patternSet holds the definition patterns of one language family.
// Slots list, in priority order, the capture groups that may hold the
// symbol name; the first non-empty one wins.
type patternSet struct {
	name          string
	function      *regexp.Regexp
	functionSlots []int
	class         *regexp.Regexp
	classSlots    []int
	imports       *regexp.Regexp
}

var (
	pythonPatterns = &patternSet{
		name:          "python",
		function:      regexp.MustCompile(`^(async\s+)?def\s+(\w+)`),
		functionSlots: []int{2},
		class:         regexp.MustCompile(`^class\s+(\w+)`),
		classSlots:    []int{1},
		imports:       regexp.MustCompile(`^(from\s+.+\s+import|import\s+)`),
	}

	javascriptPatterns = &patternSet{
		name:          "javascript",
		function:      regexp.MustCompile(jsFunctionPattern),
		functionSlots: []int{3, 5, 8},
		class:         regexp.MustCompile(`^(export\s+)?class\s+(\w+)`),
		classSlots:    []int{2},
		imports:       regexp.MustCompile(`^(import\s+|export\s+.+\s+from)`),
	}

	javaPatterns = &patternSet{
		name:          "java",
		function:      regexp.MustCompile(`^\s*(public|private|protected|static|\s)+\s+\w+\s+(\w+)\s*\(`),
		functionSlots: []int{2},
		class:         regexp.MustCompile(`^(public\s+)?class\s+(\w+)`),
		classSlots:    []int{2},
		imports:       regexp.MustCompile(`^import\s+`),
	}

	genericPatterns = &patternSet{
		name:          "generic",
		function:      regexp.MustCompile(`^(?:function\s+(\w+)|def\s+(\w+))`),
		functionSlots: []int{1, 2},
		class:         regexp.MustCompile(`^class\s+(\w+)`),
		classSlots:    []int{1},
		imports:       regexp.MustCompile(`^(import|#include|using)`),
	}
)

var patternsByExt = map[string]*patternSet{
	".py":   pythonPatterns,
	".js":   javascriptPatterns,
	".jsx":  javascriptPatterns,
	".mjs":  javascriptPatterns,
	".cjs":  javascriptPatterns,
	".ts":   javascriptPatterns,
	".tsx":  javascriptPatterns,
	".java": javaPatterns,
}

var (
	sectionRule    = regexp.MustCompile(`^[/#*]+\s*[-=]+`)
	sectionHeading = regexp.MustCompile(`^[/#*]+\s*[A-Z][A-Z\s]+[A-Z]`)
)

func patternsFor(path m.Path) *patternSet {
	if set, ok := patternsByExt[strings.ToLower(filepath.Ext(string(path)))]; ok {
		return set
	}

	return genericPatterns
}

// matchName returns the symbol name when re matches line.
func matchName(re *regexp.Regexp, slots []int, line string) (string, bool) {
	groups := re.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}

	for _, slot := range slots {
		if slot < len(groups) && groups[slot] != "" {
			return groups[slot], true
		}
	}

	return unknownName, true
}

func isSectionMarker(trimmed string) bool {
	return sectionRule.MatchString(trimmed) || sectionHeading.MatchString(trimmed)
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}
