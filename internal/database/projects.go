package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"svg-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = `p.id, p.user_id, p.name, p.description, p.color, p.is_public, p.created_at, p.updated_at`

func scanProject(row scanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Color,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type CreateProjectParams struct {
	ID          string
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       string
	IsPublic    bool
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (*models.Project, error) {
	if arg.Color == "" {
		arg.Color = models.DefaultProjectColor
	}
	if !models.IsProjectColor(arg.Color) {
		return nil, ErrInvalidColor
	}

	query := `
		INSERT INTO projects AS p (id, user_id, name, description, color, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + projectColumns

	project, err := scanProject(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.Name,
		arg.Description,
		arg.Color,
		arg.IsPublic,
	))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return project, nil
}

func (q *Queries) ProjectIDExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (q *Queries) GetProject(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`

	project, err := scanProject(q.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// ProjectFilter selects projects for list views. Zero values mean "no filter".
type ProjectFilter struct {
	OwnerID    *uuid.UUID
	ProjectID  *string
	PublicOnly bool
	Query      string
	Sort       SortKey
	Limit      int
}

const projectStatsSelect = `
	SELECT ` + projectColumns + `,
		COUNT(s.id) AS svg_count,
		COALESCE(SUM(s.views), 0)::BIGINT AS total_views,
		COALESCE(SUM(s.downloads), 0)::BIGINT AS total_downloads,
		COUNT(s.id) FILTER (WHERE s.favorited) AS total_favorites,
		COALESCE(SUM(s.file_size), 0)::BIGINT AS total_size,
		pr.display_name,
		pr.avatar_url
	FROM projects p
	LEFT JOIN svgs s ON s.project_id = p.id
	LEFT JOIN profiles pr ON pr.user_id = p.user_id
`

func scanProjectWithStats(row scanner) (*models.ProjectWithStats, error) {
	var p models.ProjectWithStats
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&p.Color,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.SVGCount,
		&p.TotalViews,
		&p.TotalDownloads,
		&p.TotalFavorites,
		&p.TotalSize,
		&p.OwnerDisplayName,
		&p.OwnerAvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProjects returns projects with their SVG aggregates computed by the database.
func (q *Queries) ListProjects(ctx context.Context, f ProjectFilter) ([]models.ProjectWithStats, error) {
	var where []string
	var args []interface{}

	if f.OwnerID != nil {
		args = append(args, *f.OwnerID)
		where = append(where, fmt.Sprintf("p.user_id = $%d", len(args)))
	}
	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		where = append(where, fmt.Sprintf("p.id = $%d", len(args)))
	}
	if f.PublicOnly {
		where = append(where, "p.is_public")
	}
	if text := strings.TrimSpace(f.Query); text != "" {
		args = append(args, likePattern(text))
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}

	query := projectStatsSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " GROUP BY p.id, pr.display_name, pr.avatar_url"
	query += " ORDER BY " + projectOrderBy(f.Sort)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.ProjectWithStats{}
	for rows.Next() {
		p, err := scanProjectWithStats(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

func (q *Queries) GetProjectWithStats(ctx context.Context, id string) (*models.ProjectWithStats, error) {
	projects, err := q.ListProjects(ctx, ProjectFilter{ProjectID: &id})
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return &projects[0], nil
}

// UpdateProjectParams carries a partial update. Nil fields are left unchanged;
// an empty Description clears it.
type UpdateProjectParams struct {
	Name        *string
	Description *string
	Color       *string
	IsPublic    *bool
}

func (q *Queries) UpdateProject(ctx context.Context, id string, ownerID uuid.UUID, arg UpdateProjectParams) (*models.Project, error) {
	if arg.Color != nil && !models.IsProjectColor(*arg.Color) {
		return nil, ErrInvalidColor
	}

	var description string
	if arg.Description != nil {
		description = *arg.Description
	}

	query := `
		UPDATE projects AS p
		SET name = COALESCE($3, p.name),
			description = CASE WHEN $4::BOOLEAN THEN NULLIF($5, '') ELSE p.description END,
			color = COALESCE($6, p.color),
			is_public = COALESCE($7, p.is_public),
			updated_at = NOW()
		WHERE p.id = $1 AND p.user_id = $2
		RETURNING ` + projectColumns

	project, err := scanProject(q.db.QueryRow(ctx, query,
		id,
		ownerID,
		arg.Name,
		arg.Description != nil,
		description,
		arg.Color,
		arg.IsPublic,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// TouchProject bumps updated_at, e.g. after SVGs were added to the project.
func (q *Queries) TouchProject(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, `UPDATE projects SET updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (q *Queries) deleteProjectRow(ctx context.Context, id string, ownerID uuid.UUID) (bool, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
