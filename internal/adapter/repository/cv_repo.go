package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var errNoPool = errors.New("storage unavailable")

// CVRepo persists CV aggregates. Section collections live in JSONB columns;
// the row is the unit of consistency, which is all a single-owner document
// needs.
type CVRepo struct {
	pool *pgxpool.Pool
}

func NewCVRepo(pool *pgxpool.Pool) *CVRepo {
	return &CVRepo{pool: pool}
}

// CVSummary is the list-view projection: no section payloads.
type CVSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	TemplateID   string    `json:"templateId"`
	IsPublic     bool      `json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastModified time.Time `json:"lastModified"`
}

func marshalSections(cv *domain.CV) (personal, exp, edu, skills, projects, certs, achievements []byte, err error) {
	cv.Normalize()
	if personal, err = json.Marshal(cv.PersonalInfo); err != nil {
		return
	}
	if exp, err = json.Marshal(cv.Experience); err != nil {
		return
	}
	if edu, err = json.Marshal(cv.Education); err != nil {
		return
	}
	if skills, err = json.Marshal(cv.Skills); err != nil {
		return
	}
	if projects, err = json.Marshal(cv.Projects); err != nil {
		return
	}
	if certs, err = json.Marshal(cv.Certifications); err != nil {
		return
	}
	achievements, err = json.Marshal(cv.Achievements)
	return
}

func (r *CVRepo) Create(ctx context.Context, cv *domain.CV) error {
	if r.pool == nil {
		return errNoPool
	}
	personal, exp, edu, skills, projects, certs, achievements, err := marshalSections(cv)
	if err != nil {
		return fmt.Errorf("cvs: marshal: %w", err)
	}

	now := time.Now()
	cv.CreatedAt = now
	cv.UpdatedAt = now
	cv.LastModified = now
	if cv.TemplateID == "" {
		cv.TemplateID = domain.DefaultTemplateID
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO cvs
		(id, user_id, title, template_id, is_public, summary, personal_info,
		 experience, education, skills, projects, certifications, achievements,
		 created_at, updated_at, last_modified)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		cv.ID, cv.UserID, cv.Title, cv.TemplateID, cv.IsPublic, cv.Summary, personal,
		exp, edu, skills, projects, certs, achievements,
		cv.CreatedAt, cv.UpdatedAt, cv.LastModified)
	return err
}

// Update rewrites all mutable columns for the owner's row. Zero rows
// affected means the CV does not exist or belongs to someone else.
func (r *CVRepo) Update(ctx context.Context, cv *domain.CV) error {
	if r.pool == nil {
		return errNoPool
	}
	personal, exp, edu, skills, projects, certs, achievements, err := marshalSections(cv)
	if err != nil {
		return fmt.Errorf("cvs: marshal: %w", err)
	}

	now := time.Now()
	cv.UpdatedAt = now
	cv.LastModified = now

	tag, err := r.pool.Exec(ctx, `UPDATE cvs SET
		title=$3, template_id=$4, is_public=$5, summary=$6, personal_info=$7,
		experience=$8, education=$9, skills=$10, projects=$11,
		certifications=$12, achievements=$13, updated_at=$14, last_modified=$14
		WHERE id=$1 AND user_id=$2`,
		cv.ID, cv.UserID, cv.Title, cv.TemplateID, cv.IsPublic, cv.Summary, personal,
		exp, edu, skills, projects, certs, achievements, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CVRepo) GetCV(ctx context.Context, id uuid.UUID) (*domain.CV, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	var (
		cv                                                     domain.CV
		personal, exp, edu, skills, projects, certs, achieveds []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, title, template_id, is_public,
		coalesce(summary, ''), personal_info, experience, education, skills,
		projects, certifications, achievements, created_at, updated_at, last_modified
		FROM cvs WHERE id=$1`, id).Scan(
		&cv.ID, &cv.UserID, &cv.Title, &cv.TemplateID, &cv.IsPublic,
		&cv.Summary, &personal, &exp, &edu, &skills,
		&projects, &certs, &achieveds, &cv.CreatedAt, &cv.UpdatedAt, &cv.LastModified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	for _, col := range []struct {
		raw []byte
		dst interface{}
	}{
		{personal, &cv.PersonalInfo},
		{exp, &cv.Experience},
		{edu, &cv.Education},
		{skills, &cv.Skills},
		{projects, &cv.Projects},
		{certs, &cv.Certifications},
		{achieveds, &cv.Achievements},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("cvs: unmarshal: %w", err)
		}
	}
	cv.Normalize()
	return &cv, nil
}

func (r *CVRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]CVSummary, int, error) {
	if r.pool == nil {
		return nil, 0, errNoPool
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM cvs WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `SELECT id, title, template_id, is_public,
		created_at, updated_at, last_modified
		FROM cvs WHERE user_id=$1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []CVSummary{}
	for rows.Next() {
		var s CVSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.TemplateID, &s.IsPublic,
			&s.CreatedAt, &s.UpdatedAt, &s.LastModified); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *CVRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if r.pool == nil {
		return errNoPool
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM cvs WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CVRepo) SetVisibility(ctx context.Context, id, userID uuid.UUID, isPublic bool) error {
	if r.pool == nil {
		return errNoPool
	}
	tag, err := r.pool.Exec(ctx, `UPDATE cvs SET is_public=$3, updated_at=now(), last_modified=now()
		WHERE id=$1 AND user_id=$2`, id, userID, isPublic)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
