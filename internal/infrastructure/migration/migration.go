package migration

import (
	"context"

	"github.com/Hayal27/Cv-generator/internal/usecase"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/rs/zerolog/log"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log.Info().Msg("starting database migrations")

	migrations := []Migration{
		{Name: "create_cvs_table", Up: createCVsTable},
		{Name: "create_templates_table", Up: createTemplatesTable},
		{Name: "seed_builtin_templates", Up: seedBuiltinTemplates},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		log.Info().Str("name", m.Name).Msg("migration completed")
	}

	log.Info().Msg("all migrations completed")
	return nil
}

func createCVsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS cvs (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			title VARCHAR(100) NOT NULL,
			template_id VARCHAR(64) NOT NULL DEFAULT 'classic',
			is_public BOOLEAN NOT NULL DEFAULT FALSE,
			summary TEXT,
			personal_info JSONB NOT NULL DEFAULT '{}'::jsonb,
			experience JSONB NOT NULL DEFAULT '[]'::jsonb,
			education JSONB NOT NULL DEFAULT '[]'::jsonb,
			skills JSONB NOT NULL DEFAULT '[]'::jsonb,
			projects JSONB NOT NULL DEFAULT '[]'::jsonb,
			certifications JSONB NOT NULL DEFAULT '[]'::jsonb,
			achievements JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_modified TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_cvs_user_id ON cvs (user_id);
	`)
	return err
}

func createTemplatesTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS templates (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			description TEXT,
			category VARCHAR(32) NOT NULL DEFAULT 'professional',
			html_template TEXT NOT NULL,
			css_styles TEXT NOT NULL,
			preview_image VARCHAR(255),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			usage_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

// seedBuiltinTemplates inserts the compiled-in presentation definitions.
// Existing rows are left untouched so operator edits survive restarts.
func seedBuiltinTemplates(ctx context.Context, pool *pgxpool.Pool) error {
	for _, t := range usecase.BuiltinTemplates() {
		_, err := pool.Exec(ctx, `INSERT INTO templates
			(id, name, description, category, html_template, css_styles, is_active)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (id) DO NOTHING`,
			t.ID, t.Name, t.Description, t.Category, t.HTMLTemplate, t.CSSStyles, t.IsActive)
		if err != nil {
			log.Warn().Err(err).Str("template", t.ID).Msg("unable to seed template")
			return err
		}
	}
	return nil
}
