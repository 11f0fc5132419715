package splitter

import "fmt"

// ProcessingError indicates that an underlying extraction, concatenation,
// or encoding operation failed. It wraps the error surfaced by the video
// engine, including any captured ffmpeg output.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed while %s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
