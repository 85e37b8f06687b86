package profiler

import "errors"

// Analysis failures wrap one of these sentinels so callers can branch with
// errors.Is instead of matching message strings.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrFormatDetection = errors.New("format detection failed")
	ErrParse           = errors.New("malformed row")
	ErrRead            = errors.New("read failed")
)
