// Package sweet implements the sweet repository using PostgreSQL.
// Dynamic filter queries are built with squirrel; full-text search and
// aggregates use raw SQL.
package sweet

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sweetlab/sweetshop-backend/internal/adapter/postgres"
	"github.com/sweetlab/sweetshop-backend/internal/domain"
)

// Overview holds catalog-wide inventory aggregates.
type Overview struct {
	TotalSweets int
	TotalValue  float64
	OutOfStock  int
	LowStock    int
}

// CategoryStat holds per-category aggregates.
type CategoryStat struct {
	Category      domain.Category
	Count         int
	TotalQuantity int
	AveragePrice  float64
}

// Repo provides sweet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sweet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const sweetColumns = "id, name, category, price, quantity, description, image_url, created_at, updated_at"

// ---------------------------------------------------------------------------
// Raw SQL for full-text search and aggregates
// ---------------------------------------------------------------------------

const searchVector = `to_tsvector('english', name || ' ' || category || ' ' || coalesce(description, ''))`

const searchSQL = `
SELECT ` + sweetColumns + `
FROM sweets
WHERE ` + searchVector + ` @@ plainto_tsquery('english', $1)
ORDER BY ts_rank(` + searchVector + `, plainto_tsquery('english', $1)) DESC, id
LIMIT $2 OFFSET $3`

const searchCountSQL = `
SELECT count(*)
FROM sweets
WHERE ` + searchVector + ` @@ plainto_tsquery('english', $1)`

const overviewSQL = `
SELECT count(*),
       coalesce(sum(price * quantity), 0),
       count(*) FILTER (WHERE quantity = 0),
       count(*) FILTER (WHERE quantity > 0 AND quantity <= $1)
FROM sweets`

const categoryStatsSQL = `
SELECT category, count(*) AS count, coalesce(sum(quantity), 0), coalesce(avg(price), 0)
FROM sweets
GROUP BY category
ORDER BY count DESC, category`

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// Create inserts a new sweet and returns the persisted record with
// store-assigned timestamps.
func (r *Repo) Create(ctx context.Context, s domain.Sweet) (domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO sweets (id, name, category, price, quantity, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+sweetColumns,
		s.ID, s.Name, string(s.Category), s.Price, s.Quantity, s.Description, s.ImageURL,
	)

	created, err := scanSweet(row)
	if err != nil {
		return domain.Sweet{}, postgres.MapError(err, "sweet", s.ID.String())
	}
	return created, nil
}

// GetByID returns a sweet by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+sweetColumns+` FROM sweets WHERE id = $1`, id)

	s, err := scanSweet(row)
	if err != nil {
		return domain.Sweet{}, postgres.MapError(err, "sweet", id.String())
	}
	return s, nil
}

// GetByName returns a sweet by its exact (case-sensitive) name.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+sweetColumns+` FROM sweets WHERE name = $1`, name)

	s, err := scanSweet(row)
	if err != nil {
		return domain.Sweet{}, postgres.MapError(err, "sweet", name)
	}
	return s, nil
}

// Update overwrites all mutable fields of a sweet. The caller supplies the
// fully merged record; partial-update semantics live in the service layer.
func (r *Repo) Update(ctx context.Context, s domain.Sweet) (domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE sweets
		SET name = $2, category = $3, price = $4, quantity = $5,
		    description = $6, image_url = $7, updated_at = now()
		WHERE id = $1
		RETURNING `+sweetColumns,
		s.ID, s.Name, string(s.Category), s.Price, s.Quantity, s.Description, s.ImageURL,
	)

	updated, err := scanSweet(row)
	if err != nil {
		return domain.Sweet{}, postgres.MapError(err, "sweet", s.ID.String())
	}
	return updated, nil
}

// Delete removes a sweet permanently. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "sweet", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sweet %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Listing and search
// ---------------------------------------------------------------------------

// List returns a page of sweets matching the filter, newest first, plus the
// total matching count.
func (r *Repo) List(ctx context.Context, filter domain.SweetFilter, p domain.Pagination) ([]domain.Sweet, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterConditions(filter)

	countSQL, countArgs, err := qb.Select("count(*)").From("sweets").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sweets: %w", err)
	}

	listSQL, listArgs, err := qb.Select(sweetColumns).
		From("sweets").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(p.Limit)).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sweets: %w", err)
	}
	defer rows.Close()

	sweets, err := scanSweets(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list sweets: %w", err)
	}

	return sweets, total, nil
}

// Search returns a page of sweets matching the full-text query over name,
// category and description, ranked by relevance, plus the total match count.
func (r *Repo) Search(ctx context.Context, query string, p domain.Pagination) ([]domain.Sweet, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, searchCountSQL, query).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count search results: %w", err)
	}

	rows, err := q.Query(ctx, searchSQL, query, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("search sweets: %w", err)
	}
	defer rows.Close()

	sweets, err := scanSweets(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("search sweets: %w", err)
	}

	return sweets, total, nil
}

// ---------------------------------------------------------------------------
// Stock mutations
// ---------------------------------------------------------------------------

// DecrementStock atomically decrements quantity by n, but only if at least n
// units are available. Returns domain.ErrNotFound when no row qualifies —
// the caller distinguishes a missing sweet from insufficient stock.
func (r *Repo) DecrementStock(ctx context.Context, id uuid.UUID, n int) (domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE sweets
		SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2
		RETURNING `+sweetColumns,
		id, n,
	)

	s, err := scanSweet(row)
	if err != nil {
		return domain.Sweet{}, postgres.MapError(err, "sweet", id.String())
	}
	return s, nil
}

// IncrementStock atomically increments quantity by n.
func (r *Repo) IncrementStock(ctx context.Context, id uuid.UUID, n int) (domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE sweets
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+sweetColumns,
		id, n,
	)

	s, err := scanSweet(row)
	if err != nil {
		return domain.Sweet{}, postgres.MapError(err, "sweet", id.String())
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Inventory reporting
// ---------------------------------------------------------------------------

// LowStock returns all sweets with quantity at or below the threshold,
// ordered ascending by quantity.
func (r *Repo) LowStock(ctx context.Context, threshold int) ([]domain.Sweet, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	listSQL, args, err := qb.Select(sweetColumns).
		From("sweets").
		Where(sq.LtOrEq{"quantity": threshold}).
		OrderBy("quantity", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build low stock query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("low stock sweets: %w", err)
	}
	defer rows.Close()

	sweets, err := scanSweets(rows)
	if err != nil {
		return nil, fmt.Errorf("low stock sweets: %w", err)
	}

	return sweets, nil
}

// Count returns the total number of sweets in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM sweets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sweets: %w", err)
	}
	return count, nil
}

// Overview returns catalog-wide aggregates in a single query. lowStockMax is
// the upper bound of the low-stock band (exclusive of zero stock).
func (r *Repo) Overview(ctx context.Context, lowStockMax int) (Overview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var o Overview
	err := q.QueryRow(ctx, overviewSQL, lowStockMax).
		Scan(&o.TotalSweets, &o.TotalValue, &o.OutOfStock, &o.LowStock)
	if err != nil {
		return Overview{}, fmt.Errorf("inventory overview: %w", err)
	}
	return o, nil
}

// CategoryStats returns per-category aggregates sorted by descending count.
func (r *Repo) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, categoryStatsSQL)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	defer rows.Close()

	var stats []CategoryStat
	for rows.Next() {
		var st CategoryStat
		var category string
		if err := rows.Scan(&category, &st.Count, &st.TotalQuantity, &st.AveragePrice); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		st.Category = domain.Category(category)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}

	return stats, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func filterConditions(f domain.SweetFilter) sq.And {
	cond := sq.And{}
	if f.Category != nil {
		cond = append(cond, sq.Eq{"category": string(*f.Category)})
	}
	if f.MinPrice != nil {
		cond = append(cond, sq.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		cond = append(cond, sq.LtOrEq{"price": *f.MaxPrice})
	}
	return cond
}

func scanSweet(row pgx.Row) (domain.Sweet, error) {
	var s domain.Sweet
	var category string
	var createdAt, updatedAt time.Time

	err := row.Scan(&s.ID, &s.Name, &category, &s.Price, &s.Quantity,
		&s.Description, &s.ImageURL, &createdAt, &updatedAt)
	if err != nil {
		return domain.Sweet{}, err
	}

	s.Category = domain.Category(category)
	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt
	return s, nil
}

func scanSweets(rows pgx.Rows) ([]domain.Sweet, error) {
	sweets := []domain.Sweet{}
	for rows.Next() {
		s, err := scanSweet(rows)
		if err != nil {
			return nil, err
		}
		sweets = append(sweets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sweets, nil
}
