package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shortlink/internal/domain/models"
	"shortlink/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const (
	pgErrCodeUniqueViolation = "23505"
)

const linkColumns = "id, slug, original_url, description, clicks, owner_id, is_personalized, is_deleted, created_at"

type PostgresStorage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

func scanLink(row interface{ Scan(...any) error }) (models.LinkRecord, error) {
	var link models.LinkRecord
	err := row.Scan(
		&link.ID,
		&link.Slug,
		&link.OriginalURL,
		&link.Description,
		&link.Clicks,
		&link.OwnerID,
		&link.IsPersonalized,
		&link.IsDeleted,
		&link.CreatedAt,
	)
	return link, err
}

// Create вставляет новую запись. Авторитет уникальности slug - unique-индекс,
// его нарушение транслируется в models.ErrConflict.
func (p *PostgresStorage) Create(ctx context.Context, link models.LinkRecord) (models.LinkRecord, error) {
	if link.Slug == "" || link.OriginalURL == "" {
		return models.LinkRecord{}, models.ErrInvalidData
	}

	created, err := scanLink(p.db.QueryRowContext(ctx, `
		INSERT INTO links (slug, original_url, description, owner_id, is_personalized)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+linkColumns,
		link.Slug, link.OriginalURL, link.Description, link.OwnerID, link.IsPersonalized,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return models.LinkRecord{}, fmt.Errorf("%w: slug %q is taken", models.ErrConflict, link.Slug)
		}
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	return created, nil
}

func (p *PostgresStorage) GetByID(ctx context.Context, id string) (models.LinkRecord, error) {
	if id == "" {
		return models.LinkRecord{}, fmt.Errorf("%w: id must not be empty", models.ErrInvalidData)
	}

	link, err := scanLink(p.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE id = $1", id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LinkRecord{}, fmt.Errorf("%w: id not found", models.ErrUnfound)
		}
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	return link, nil
}

func (p *PostgresStorage) GetBySlug(ctx context.Context, slug string, includeDeleted bool) (models.LinkRecord, error) {
	if slug == "" {
		return models.LinkRecord{}, fmt.Errorf("%w: slug must not be empty", models.ErrInvalidData)
	}

	query := "SELECT " + linkColumns + " FROM links WHERE slug = $1"
	if !includeDeleted {
		query += " AND is_deleted = FALSE"
	}

	link, err := scanLink(p.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LinkRecord{}, fmt.Errorf("%w: slug not found", models.ErrUnfound)
		}
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	return link, nil
}

// Update перезаписывает изменяемые поля. Clicks и created_at не трогает:
// счетчик меняется только через IncrementClicks.
func (p *PostgresStorage) Update(ctx context.Context, link models.LinkRecord) (models.LinkRecord, error) {
	if link.ID == "" {
		return models.LinkRecord{}, fmt.Errorf("%w: id must not be empty", models.ErrInvalidData)
	}

	updated, err := scanLink(p.db.QueryRowContext(ctx, `
		UPDATE links
		SET slug = $2, original_url = $3, description = $4, is_deleted = $5
		WHERE id = $1
		RETURNING `+linkColumns,
		link.ID, link.Slug, link.OriginalURL, link.Description, link.IsDeleted,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LinkRecord{}, fmt.Errorf("%w: id not found", models.ErrUnfound)
		}
		if isUniqueViolation(err) {
			return models.LinkRecord{}, fmt.Errorf("%w: slug %q is taken", models.ErrConflict, link.Slug)
		}
		return models.LinkRecord{}, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	return updated, nil
}

func (p *PostgresStorage) SetDeleted(ctx context.Context, id string, deleted bool) error {
	if id == "" {
		return fmt.Errorf("%w: id must not be empty", models.ErrInvalidData)
	}

	result, err := p.db.ExecContext(ctx,
		"UPDATE links SET is_deleted = $2 WHERE id = $1",
		id, deleted,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackend, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id not found", models.ErrUnfound)
	}

	return nil
}

func (p *PostgresStorage) List(ctx context.Context, filter repository.Filter) ([]models.LinkRecord, error) {
	var (
		conditions = []string{"is_deleted = $1"}
		args       = []any{filter.Deleted}
	)

	if filter.Personalized != nil {
		args = append(args, *filter.Personalized)
		conditions = append(conditions, fmt.Sprintf("is_personalized = $%d", len(args)))
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		conditions = append(conditions, fmt.Sprintf("owner_id = $%d", len(args)))
	}

	query := "SELECT " + linkColumns + " FROM links WHERE " +
		strings.Join(conditions, " AND ") + " ORDER BY created_at DESC"

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}
	defer rows.Close()

	var links []models.LinkRecord
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrBackend, err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	return links, nil
}

// SlugExists проверяет занятость slug по всем записям, включая удаленные.
// Это best-effort проверка для генератора, авторитетом остается индекс.
func (p *PostgresStorage) SlugExists(ctx context.Context, slug string) (bool, error) {
	if slug == "" {
		return false, fmt.Errorf("%w: slug must not be empty", models.ErrInvalidData)
	}

	var exists bool
	err := p.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM links WHERE slug = $1)",
		slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	return exists, nil
}

// IncrementClicks выполняет инкремент одним выражением на стороне БД.
// Read-modify-write здесь недопустим: конкурентные редиректы одного slug
// теряли бы обновления.
func (p *PostgresStorage) IncrementClicks(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id must not be empty", models.ErrInvalidData)
	}

	result, err := p.db.ExecContext(ctx,
		"UPDATE links SET clicks = clicks + 1 WHERE id = $1",
		id,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackend, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id not found", models.ErrUnfound)
	}

	return nil
}

func (p *PostgresStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: database ping failed: %v", models.ErrBackend, err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
