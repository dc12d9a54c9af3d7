package model

// TargetAction records what happened to the target file.
type TargetAction string

const (
	// TargetCreated means the target file did not exist and was written fresh.
	TargetCreated TargetAction = "created"
	// TargetAppended means the extracted lines were appended to an existing target.
	TargetAppended TargetAction = "appended"
)

// SourceAction records what happened to the source file.
type SourceAction string

const (
	// SourceKept means the source file was not modified (copy mode).
	SourceKept SourceAction = "kept in source"
	// SourceRemoved means the extracted lines were removed from the source (move mode).
	SourceRemoved SourceAction = "removed from source"
)

// ExtractionSuccess holds the details of a completed extraction.
type ExtractionSuccess struct {
	LinesExtracted int
	Target         Path
	TargetAction   TargetAction
	SourceAction   SourceAction
	// Range is the extracted range after end-of-file clamping.
	Range Range
}

// ExtractionResult is either a success or a failure, never both.
type ExtractionResult struct {
	success *ExtractionSuccess
	err     *Error
}

// Succeeded builds a successful result.
func Succeeded(s ExtractionSuccess) ExtractionResult {
	return ExtractionResult{success: &s}
}

// Failed builds a failed result.
func Failed(err *Error) ExtractionResult {
	return ExtractionResult{err: err}
}

// Ok reports whether the extraction succeeded.
func (r ExtractionResult) Ok() bool {
	return r.success != nil
}

// Success returns the success payload and true, or the zero value and false.
func (r ExtractionResult) Success() (ExtractionSuccess, bool) {
	if r.success == nil {
		return ExtractionSuccess{}, false
	}

	return *r.success, true
}

// Err returns the failure payload, or nil on success.
func (r ExtractionResult) Err() *Error {
	return r.err
}

// BatchItem pairs a request with its result.
type BatchItem struct {
	Request ExtractionRequest
	Result  ExtractionResult
}

// BatchOutcome is the ordered record of a batch run.
type BatchOutcome struct {
	Items []BatchItem
}

// Succeeded returns the number of successful items.
func (o BatchOutcome) Succeeded() int {
	n := 0

	for _, item := range o.Items {
		if item.Result.Ok() {
			n++
		}
	}

	return n
}

// Failed returns the number of failed items.
func (o BatchOutcome) Failed() int {
	return len(o.Items) - o.Succeeded()
}

// HasFailures reports whether at least one item failed.
func (o BatchOutcome) HasFailures() bool {
	return o.Failed() > 0
}
