package errs

import "errors"

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrEmptySubmission = errors.New("submission contains no urls")
	ErrInvalidURL      = errors.New("invalid url (must be http or https)")
	ErrInvalidPreset   = errors.New("unknown preset")
	ErrInvalidPath     = errors.New("invalid path")
	ErrFileNotFound    = errors.New("file not found")
	ErrFetchTimeout    = errors.New("extraction timed out")
	ErrFetchFailed     = errors.New("extraction failed")
	ErrPoolStopped     = errors.New("worker pool is stopped")
)
