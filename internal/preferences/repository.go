package preferences

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/apriority/miniapp/internal/database"
	"github.com/apriority/miniapp/internal/i18n"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository keeps preferences in the user_preferences table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a repository.
// Returns error if pool is nil.
func NewPostgresRepository(pool *pgxpool.Pool) (*PostgresRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &PostgresRepository{pool: pool}, nil
}

// Get returns the stored preferences of userID. The bool is false when the
// user has none saved.
func (r *PostgresRepository) Get(ctx context.Context, userID int64) (Preferences, bool, error) {
	query, args, err := selectQuery(userID)
	if err != nil {
		return Preferences{}, false, fmt.Errorf("build preferences query: %w", err)
	}

	var theme, language string
	err = r.pool.QueryRow(ctx, query, args...).Scan(&theme, &language)
	if errors.Is(err, pgx.ErrNoRows) {
		return Preferences{}, false, nil
	}
	if err != nil {
		return Preferences{}, false, fmt.Errorf("query preferences: %w", err)
	}

	return Preferences{
		Theme:    i18n.ParseTheme(theme),
		Language: i18n.ParseLanguage(language),
	}, true, nil
}

// Upsert saves prefs for userID.
func (r *PostgresRepository) Upsert(ctx context.Context, userID int64, prefs Preferences) error {
	query, args, err := upsertQuery(userID, prefs)
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

func selectQuery(userID int64) (string, []any, error) {
	return database.QB.
		Select("theme", "language").
		From("user_preferences").
		Where(sq.Eq{"telegram_user_id": userID}).
		ToSql()
}

func upsertQuery(userID int64, prefs Preferences) (string, []any, error) {
	return database.QB.
		Insert("user_preferences").
		Columns("telegram_user_id", "theme", "language", "updated_at").
		Values(userID, string(prefs.Theme), string(prefs.Language), sq.Expr("NOW()")).
		Suffix("ON CONFLICT (telegram_user_id) DO UPDATE SET theme = EXCLUDED.theme, language = EXCLUDED.language, updated_at = NOW()").
		ToSql()
}
