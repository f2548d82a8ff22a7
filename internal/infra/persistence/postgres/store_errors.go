package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	"github.com/pkg/errors"
)

// isConnectivityError reports whether a store error is a transport or
// connectivity failure rather than a query-level failure. PostgreSQL
// connection exceptions carry SQLSTATE class 08. Context cancellation and
// deadline errors are excluded so they propagate to the caller unchanged.
func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "sqlstate 08")
}
