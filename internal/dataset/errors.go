package dataset

import "errors"

// ErrSourceNotFound reports that the configured spreadsheet path does
// not exist on disk. Check with errors.Is. A file that exists but
// cannot be parsed fails with the parser's own error instead, passed
// through untouched so the real cause stays visible.
var ErrSourceNotFound = errors.New("source spreadsheet not found")
