package checkin

import "context"

// TableStore reads the attendee table as a grid of strings, header row
// included. Implementations are the source of truth; the service's cache
// sits above this interface.
type TableStore interface {
	Rows(ctx context.Context) ([][]string, error)
}

// CellWriter writes a single cell addressed by 0-based grid coordinates.
// The two-cell check-in write through this interface is not atomic; a crash
// between the two cells leaves status set with an empty check_in_time, which
// is acceptable because check_in_time is informational only.
type CellWriter interface {
	SetCell(ctx context.Context, row, col int, value string) error
}

// ConditionalCheckIner marks an attendee checked in with a single
// conditional write. ok=false reports that the row was already checked in
// when the write landed, closing the read-then-write race for stores that
// can express it.
type ConditionalCheckIner interface {
	CheckInRow(ctx context.Context, id, status, checkInTime string) (ok bool, err error)
}

// Provisioner creates the attendee table with its header row if absent.
// Invoked out-of-band, never during request serving.
type Provisioner interface {
	Provision(ctx context.Context) error
}
