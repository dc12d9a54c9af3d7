// Package domain contains the line range extraction, batch and split analysis logic.
package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mouse-blink/linesplit/internal/adapter"
	m "github.com/mouse-blink/linesplit/internal/model"
)

const (
	partialPrefix = "target written but source not modified: "
	newFilePerm   = 0o644
)

// Extractor copies or moves a line range from one file into another.
type Extractor interface {
	// Extract never returns a Go error; every failure is carried by the result.
	Extract(req m.ExtractionRequest, createDirs bool) m.ExtractionResult
}

type extractor struct {
	fs adapter.FileSystemAdapter
}

// NewExtractor creates a new Extractor backed by fs.
func NewExtractor(fs adapter.FileSystemAdapter) Extractor {
	return &extractor{fs: fs}
}

func (e *extractor) Extract(req m.ExtractionRequest, createDirs bool) m.ExtractionResult {
	source, target := req.Source, req.Target

	if !e.fs.Exists(source) {
		return m.Failed(m.NewError(m.KindNotFound, source,
			fmt.Sprintf("source file not found: %s", source)))
	}

	if req.Mode == m.ModeMove {
		if err := e.checkMovable(source); err != nil {
			return m.Failed(err)
		}

		if e.sameFile(source, target) {
			return m.Failed(m.NewError(m.KindInvalidRange, target,
				fmt.Sprintf("cannot move lines into their own source file: %s", target)))
		}
	}

	content, err := e.fs.ReadFile(source)
	if err != nil {
		return m.Failed(m.WrapError(m.KindIO, source, "error reading source file", err))
	}

	lines := splitLines(content)
	total := len(lines)

	start, end := req.StartLine, req.EndLine
	if start < 1 || start > total {
		return m.Failed(m.NewError(m.KindInvalidRange, source,
			fmt.Sprintf("invalid start line %d: file has %d lines", start, total)))
	}

	if end < start {
		return m.Failed(m.NewError(m.KindInvalidRange, source,
			fmt.Sprintf("end line %d cannot be less than start line %d", end, start)))
	}

	if end > total {
		end = total
	}

	extracted := lines[start-1 : end]

	if err := e.checkTarget(target, createDirs); err != nil {
		return m.Failed(err)
	}

	if createDirs {
		dir := m.Path(filepath.Dir(string(target)))
		if err := e.fs.MkdirAll(dir); err != nil {
			return m.Failed(e.writeError(dir, "failed to create target directory", err))
		}
	}

	action, werr := e.writeTarget(target, joinLines(extracted))
	if werr != nil {
		return m.Failed(werr)
	}

	sourceAction := m.SourceKept

	if req.Mode == m.ModeMove {
		remaining := concatLines(lines[:start-1], lines[end:])
		if err := e.fs.WriteFile(source, remaining, newFilePerm); err != nil {
			ferr := e.sourceWriteError(source, err)
			ferr.PartiallyCompleted = true

			return m.Failed(ferr)
		}

		sourceAction = m.SourceRemoved
	}

	return m.Succeeded(m.ExtractionSuccess{
		LinesExtracted: len(extracted),
		Target:         target,
		TargetAction:   action,
		SourceAction:   sourceAction,
		Range:          m.Range{Start: start, End: end},
	})
}

// checkMovable refuses a move that could not delete from the source.
func (e *extractor) checkMovable(source m.Path) *m.Error {
	if !e.fs.Writable(source) {
		return m.NewError(m.KindPermissionDenied, source, fmt.Sprintf(
			"source file is not writable: %s. Cannot use 'move' mode on read-only files. Use 'copy' mode instead", source))
	}

	dir := m.Path(filepath.Dir(string(source)))
	if !e.fs.Writable(dir) {
		return m.NewError(m.KindPermissionDenied, dir, fmt.Sprintf(
			"source directory is not writable: %s. Cannot use 'move' mode in read-only filesystem. Use 'copy' mode instead", dir))
	}

	return nil
}

// sameFile reports whether target names the source file, through links or
// differently spelled paths.
func (e *extractor) sameFile(source, target m.Path) bool {
	sourceInfo, serr := e.fs.FileInfo(source)
	targetInfo, terr := e.fs.FileInfo(target)

	if serr == nil && terr == nil {
		return os.SameFile(sourceInfo, targetInfo)
	}

	return cleanAbs(source) == cleanAbs(target)
}

func cleanAbs(path m.Path) string {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return filepath.Clean(string(path))
	}

	return abs
}

func (e *extractor) checkTarget(target m.Path, createDirs bool) *m.Error {
	dir := m.Path(filepath.Dir(string(target)))

	switch {
	case e.fs.Exists(dir):
		if !e.fs.Writable(dir) {
			return m.NewError(m.KindPermissionDenied, dir, fmt.Sprintf(
				"target directory is not writable: %s. Cannot write to read-only filesystem", dir))
		}
	case createDirs:
		parent := adapter.NearestExistingDir(e.fs, dir)
		if !e.fs.Writable(parent) {
			return m.NewError(m.KindPermissionDenied, parent, fmt.Sprintf(
				"cannot create target directory in read-only location: %s", parent))
		}
	default:
		return m.NewError(m.KindNotFound, dir, fmt.Sprintf("target directory does not exist: %s", dir))
	}

	if e.fs.Exists(target) && !e.fs.Writable(target) {
		return m.NewError(m.KindPermissionDenied, target, fmt.Sprintf(
			"target file is not writable: %s. Cannot write to read-only file", target))
	}

	return nil
}

// writeTarget appends to an existing target or creates a new one. An
// existing target whose last byte is not '\n' gets one before the append.
func (e *extractor) writeTarget(target m.Path, data []byte) (m.TargetAction, *m.Error) {
	if !e.fs.Exists(target) {
		if err := e.fs.WriteFile(target, data, newFilePerm); err != nil {
			return "", e.writeError(target, "failed to write to target file", err)
		}

		return m.TargetCreated, nil
	}

	// An unreadable tail is not fatal; the append itself reports real problems.
	if last, ok, err := e.fs.LastByte(target); err == nil && ok && last != '\n' {
		data = append([]byte("\n"), data...)
	}

	if err := e.fs.AppendFile(target, data); err != nil {
		return "", e.writeError(target, "failed to write to target file", err)
	}

	return m.TargetAppended, nil
}

func (e *extractor) writeError(path m.Path, message string, err error) *m.Error {
	if e.fs.IsReadOnlyFS(err) {
		return m.WrapError(m.KindReadOnlyFS, path, fmt.Sprintf(
			"cannot write to %s in read-only filesystem. Use --mode copy with a writable target instead", path), err)
	}

	return m.WrapError(m.KindIO, path, message, err)
}

func (e *extractor) sourceWriteError(source m.Path, err error) *m.Error {
	if e.fs.IsReadOnlyFS(err) {
		return m.WrapError(m.KindReadOnlyFS, source, partialPrefix+fmt.Sprintf(
			"cannot modify source file in read-only filesystem: %s. Use --mode copy instead", source), err)
	}

	return m.WrapError(m.KindIO, source, partialPrefix+"failed to modify source file", err)
}
