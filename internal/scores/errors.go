package scores

import (
	"errors"
	"fmt"
	"log/slog"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrInvalidInput marks a request body that is missing or not a JSON object.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable marks a storage failure at read or write time.
	ErrStoreUnavailable = errors.New("store unavailable")
)

func invalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}

func storeUnavailable(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, op)
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

// DriverAttrs extracts driver-level detail from a storage error for logging.
func DriverAttrs(err error) []any {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return []any{slog.String("sqlstate", pgErr.Code), slog.String("detail", pgErr.Message)}
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return []any{slog.Int("mysql_errno", int(myErr.Number)), slog.String("detail", myErr.Message)}
	}
	return nil
}
