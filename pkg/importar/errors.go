package importar

import "fmt"

// RowError pinpoints the first malformed row of an upload. Line is 1-based
// and counts the header line.
type RowError struct {
	Line   int
	Field  string
	Reason string
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("linha %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("linha %d, campo %q: %s", e.Line, e.Field, e.Reason)
}
