package finance

import "errors"

var (
	ErrSnapshotNotFound = errors.New("finance snapshot not found")
)
