package stats

import "fmt"

// MalformedInputError reports a record that violates the aggregation input
// contract, e.g. a negative counter or an unrecognized metric. It carries the
// offending identifiers so callers can surface a precise diagnostic.
type MalformedInputError struct {
	Field    string
	Value    interface{}
	PlayerID uint
}

func (e *MalformedInputError) Error() string {
	if e.PlayerID != 0 {
		return fmt.Sprintf("malformed input: player %d has invalid %s (%v)", e.PlayerID, e.Field, e.Value)
	}
	return fmt.Sprintf("malformed input: invalid %s (%v)", e.Field, e.Value)
}
