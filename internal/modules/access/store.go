// README: Access-code store backed by PostgreSQL.
package access

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListCodes returns every issued access code. The list is small (invite
// codes handed out by hand); callers cache it.
func (s *Store) ListCodes(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT code FROM access_codes`)
	if err != nil {
		return nil, fmt.Errorf("querying access codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning access code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading access codes: %w", err)
	}
	return codes, nil
}
