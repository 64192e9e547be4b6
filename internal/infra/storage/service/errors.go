package service

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog service does not exist.
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
