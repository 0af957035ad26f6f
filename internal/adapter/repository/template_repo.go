package repository

import (
	"context"
	"errors"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// TemplateRepo reads presentation definitions. Writes happen only through
// migrations and administrative inserts; this pipeline never mutates a
// template.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

func NewTemplateRepo(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

func (r *TemplateRepo) GetTemplate(ctx context.Context, id string) (*domain.Template, error) {
	if r.pool == nil {
		return nil, errNoPool
	}
	var t domain.Template
	err := r.pool.QueryRow(ctx, `SELECT id, name, coalesce(description, ''), category,
		html_template, css_styles, coalesce(preview_image, ''), is_active, usage_count,
		created_at, updated_at
		FROM templates WHERE id=$1 AND is_active`, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Category,
		&t.HTMLTemplate, &t.CSSStyles, &t.PreviewImage, &t.IsActive, &t.UsageCount,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepo) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	if r.pool == nil {
		return nil, errNoPool
	}
	rows, err := r.pool.Query(ctx, `SELECT id, name, coalesce(description, ''), category,
		html_template, css_styles, coalesce(preview_image, ''), is_active, usage_count,
		created_at, updated_at
		FROM templates WHERE is_active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Template{}
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Category,
			&t.HTMLTemplate, &t.CSSStyles, &t.PreviewImage, &t.IsActive, &t.UsageCount,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// BumpUsage increments the usage counter; best-effort, called after a
// successful export.
func (r *TemplateRepo) BumpUsage(ctx context.Context, id string) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `UPDATE templates SET usage_count = usage_count + 1 WHERE id=$1`, id)
	return err
}
