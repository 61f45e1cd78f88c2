package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ventureos/internal/db"
	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/google/uuid"
)

// SQLiteVentureRepo implements VentureRepo. The full record is stored as JSON;
// the summary columns exist for listing without decoding.
type SQLiteVentureRepo struct {
	db db.DBTX
}

// NewSQLiteVentureRepo creates a new SQLiteVentureRepo.
func NewSQLiteVentureRepo(conn db.DBTX) *SQLiteVentureRepo {
	return &SQLiteVentureRepo{db: conn}
}

const ventureColumns = `id, idea, project_name, tagline, data_json, created_at`

// Create inserts v, filling in a missing ID, project name and creation time.
func (r *SQLiteVentureRepo) Create(ctx context.Context, v *domain.ArchivedVenture) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	if strings.TrimSpace(v.ProjectName) == "" {
		v.ProjectName = v.Data.Config.ProjectName
	}

	data := v.Data.Clone()
	data.Normalize()
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding venture: %w", err)
	}

	query := `INSERT INTO ventures (id, idea, project_name, pricing_type, tagline, data_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		v.ID,
		v.Idea,
		v.ProjectName,
		string(data.Config.PricingModel.Type),
		data.Config.Tagline,
		string(payload),
		formatTime(v.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting venture: %w", err)
	}
	return nil
}

func (r *SQLiteVentureRepo) GetByID(ctx context.Context, id string) (*domain.ArchivedVenture, error) {
	query := `SELECT ` + ventureColumns + ` FROM ventures WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	v, err := scanVenture(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venture %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (r *SQLiteVentureRepo) List(ctx context.Context, limit int) ([]*domain.ArchivedVenture, error) {
	query := `SELECT ` + ventureColumns + ` FROM ventures ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing ventures: %w", err)
	}
	defer rows.Close()

	var out []*domain.ArchivedVenture
	for rows.Next() {
		v, err := scanVenture(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ventures: %w", err)
	}
	return out, nil
}

func (r *SQLiteVentureRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ventures`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting ventures: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenture(row rowScanner) (*domain.ArchivedVenture, error) {
	var (
		v                domain.ArchivedVenture
		tagline          string
		payload, created string
	)
	if err := row.Scan(&v.ID, &v.Idea, &v.ProjectName, &tagline, &payload, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning venture: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &v.Data); err != nil {
		return nil, fmt.Errorf("decoding venture %s: %w", v.ID, err)
	}
	v.Data.Normalize()
	if v.Data.Config.Tagline == "" {
		v.Data.Config.Tagline = tagline
	}

	var err error
	v.CreatedAt, err = parseTime(created)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &v, nil
}
