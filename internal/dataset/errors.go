package dataset

import "fmt"

// MissingFileError reports a source CSV absent at the expected path.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// DataFormatError reports a missing column or an unparsable value.
// Row is the 1-based data row number; 0 means the header itself.
type DataFormatError struct {
	Column string
	Row    int
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("data format error in column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("data format error at row %d, column %q: %s", e.Row, e.Column, e.Reason)
}
