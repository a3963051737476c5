package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"wcagrep/pkg/storage"
)

const uniqueViolation = "23505"

// mapError translates driver errors callers need to branch on into storage
// sentinels. The original error stays in the chain.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", storage.ErrDuplicate, err)
	}

	return err
}
