package pagination

import "fmt"

type Op string

const (
	OpCount  Op = "count"
	OpSelect Op = "select"
	OpScan   Op = "scan"
)

// QueryError is returned when either pagination query fails.
type QueryError struct {
	Table string
	Op    Op
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("pagination: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
