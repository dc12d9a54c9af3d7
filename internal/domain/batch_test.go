package domain

import (
	"path/filepath"
	"testing"

	"github.com/mouse-blink/linesplit/internal/adapter"
	m "github.com/mouse-blink/linesplit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	kind  string
	index int
	total int
	ok    bool
}

type recordingReporter struct {
	events []recordedEvent
}

func (r *recordingReporter) OnItemStart(index, total int, _ m.ExtractionRequest) {
	r.events = append(r.events, recordedEvent{kind: "start", index: index, total: total})
}

func (r *recordingReporter) OnItemDone(index, total int, _ m.ExtractionRequest, result m.ExtractionResult) {
	r.events = append(r.events, recordedEvent{kind: "done", index: index, total: total, ok: result.Ok()})
}

func TestBatchRunner_ContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "app.js")
	writeFile(t, source, numberedLines(10))

	good := filepath.Join(root, "out", "header.js")
	locked := filepath.Join(root, "locked.js")
	writeFile(t, locked, "")

	fs := newRestrictedFS()
	fs.unwritable[m.Path(locked)] = true

	runner := NewBatchRunner(NewExtractor(fs))
	reporter := &recordingReporter{}

	outcome := runner.Run([]m.ExtractionRequest{
		copyRequest(source, good, 1, 3),
		copyRequest(source, locked, 4, 5),
	}, reporter)

	require.Len(t, outcome.Items, 2)
	assert.Equal(t, 1, outcome.Succeeded())
	assert.Equal(t, 1, outcome.Failed())
	assert.True(t, outcome.HasFailures())

	assert.True(t, outcome.Items[0].Result.Ok())
	assert.Equal(t, m.KindPermissionDenied, outcome.Items[1].Result.Err().Kind)
	assert.Equal(t, "line 1\nline 2\nline 3\n", readFile(t, good), "first item's effects persist")

	assert.Equal(t, []recordedEvent{
		{kind: "start", index: 1, total: 2},
		{kind: "done", index: 1, total: 2, ok: true},
		{kind: "start", index: 2, total: 2},
		{kind: "done", index: 2, total: 2, ok: false},
	}, reporter.events)
}

func TestBatchRunner_LaterItemsSeeEarlierEffects(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "big.py")
	target := filepath.Join(root, "combined.py")
	writeFile(t, source, numberedLines(6))

	runner := NewBatchRunner(NewExtractor(adapter.NewLocalFileSystemAdapter()))
	outcome := runner.Run([]m.ExtractionRequest{
		copyRequest(source, target, 5, 6),
		copyRequest(source, target, 1, 2),
	}, nil)

	assert.False(t, outcome.HasFailures())

	first, _ := outcome.Items[0].Result.Success()
	second, _ := outcome.Items[1].Result.Success()
	assert.Equal(t, m.TargetCreated, first.TargetAction)
	assert.Equal(t, m.TargetAppended, second.TargetAction)
	assert.Equal(t, "line 5\nline 6\nline 1\nline 2\n", readFile(t, target))
}

func TestBatchRunner_CreatesDirectories(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "a.txt")
	writeFile(t, source, numberedLines(2))

	target := filepath.Join(root, "deep", "nested", "b.txt")

	outcome := NewBatchRunner(NewExtractor(adapter.NewLocalFileSystemAdapter())).
		Run([]m.ExtractionRequest{copyRequest(source, target, 1, 1)}, nil)

	assert.Equal(t, 1, outcome.Succeeded())
	assert.FileExists(t, target)
}

func TestBatchRunner_Empty(t *testing.T) {
	outcome := NewBatchRunner(NewExtractor(adapter.NewLocalFileSystemAdapter())).Run(nil, nil)

	assert.Empty(t, outcome.Items)
	assert.False(t, outcome.HasFailures())
}
