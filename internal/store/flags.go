package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// FlagGPSPromptHandled is set once the user has answered the GPS permission
// prompt, either way. It is the only thing SafeGuard persists.
const FlagGPSPromptHandled = "gps_permission_asked"

// FlagRepo stores boolean flags by key.
type FlagRepo interface {
	// Get returns the flag value, or false if it was never set.
	Get(ctx context.Context, key string) (bool, error)

	// Set stores the flag value, replacing any previous one.
	Set(ctx context.Context, key string, value bool) error

	// Clear deletes every flag.
	Clear(ctx context.Context) error
}

// flagRepo implements FlagRepo with queries built by ent's SQL builder.
type flagRepo struct {
	db *sql.DB
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *flagRepo) Get(ctx context.Context, key string) (bool, error) {
	query, args := builder().
		Select(columnValue).
		From(entsql.Table(settingsTable)).
		Where(entsql.EQ(columnKey, key)).
		Query()

	var value bool
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get flag %q: %w", key, err)
	}
	return value, nil
}

func (r *flagRepo) Set(ctx context.Context, key string, value bool) error {
	query, args := builder().
		Insert(settingsTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(columnKey),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set flag %q: %w", key, err)
	}
	return nil
}

func (r *flagRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(settingsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear flags: %w", err)
	}
	return nil
}
