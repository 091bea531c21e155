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

const svgColumns = `s.id, s.user_id, s.project_id, s.name, s.description, s.file_path, s.file_size, s.tags, s.views, s.downloads, s.favorited, s.created_at`

func scanSVG(row scanner) (*models.SVG, error) {
	var svg models.SVG
	err := row.Scan(
		&svg.ID,
		&svg.UserID,
		&svg.ProjectID,
		&svg.Name,
		&svg.Description,
		&svg.FilePath,
		&svg.FileSize,
		&svg.Tags,
		&svg.Views,
		&svg.Downloads,
		&svg.Favorited,
		&svg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &svg, nil
}

type CreateSVGParams struct {
	ID          string
	UserID      uuid.UUID
	ProjectID   string
	Name        string
	Description *string
	FilePath    string
	FileSize    int64
	Tags        []string
}

func (q *Queries) CreateSVG(ctx context.Context, arg CreateSVGParams) (*models.SVG, error) {
	if arg.Tags == nil {
		arg.Tags = []string{}
	}

	query := `
		INSERT INTO svgs AS s (id, user_id, project_id, name, description, file_path, file_size, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + svgColumns

	svg, err := scanSVG(q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.ProjectID,
		arg.Name,
		arg.Description,
		arg.FilePath,
		arg.FileSize,
		arg.Tags,
	))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return svg, nil
}

func (q *Queries) SVGIDExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM svgs WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (q *Queries) GetSVG(ctx context.Context, id string) (*models.SVG, error) {
	query := `SELECT ` + svgColumns + ` FROM svgs s WHERE s.id = $1`

	svg, err := scanSVG(q.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return svg, nil
}

// SVGFilter selects SVGs for list views. Zero values mean "no filter".
// Tags is an intersection: an SVG must carry every listed tag.
type SVGFilter struct {
	OwnerID    *uuid.UUID
	ProjectID  *string
	SVGID      *string
	Query      string
	Tags       []string
	PublicOnly bool
	Sort       SortKey
	Limit      int
}

const svgListingSelect = `
	SELECT ` + svgColumns + `,
		p.name,
		p.color,
		p.is_public,
		pr.display_name
	FROM svgs s
	JOIN projects p ON p.id = s.project_id
	LEFT JOIN profiles pr ON pr.user_id = s.user_id
`

func scanSVGListing(row scanner) (*models.SVGListing, error) {
	var l models.SVGListing
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.ProjectID,
		&l.Name,
		&l.Description,
		&l.FilePath,
		&l.FileSize,
		&l.Tags,
		&l.Views,
		&l.Downloads,
		&l.Favorited,
		&l.CreatedAt,
		&l.ProjectName,
		&l.ProjectColor,
		&l.ProjectIsPublic,
		&l.OwnerDisplayName,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (q *Queries) ListSVGs(ctx context.Context, f SVGFilter) ([]models.SVGListing, error) {
	var where []string
	var args []interface{}

	if f.OwnerID != nil {
		args = append(args, *f.OwnerID)
		where = append(where, fmt.Sprintf("s.user_id = $%d", len(args)))
	}
	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		where = append(where, fmt.Sprintf("s.project_id = $%d", len(args)))
	}
	if f.SVGID != nil {
		args = append(args, *f.SVGID)
		where = append(where, fmt.Sprintf("s.id = $%d", len(args)))
	}
	if text := strings.TrimSpace(f.Query); text != "" {
		args = append(args, likePattern(text))
		where = append(where, fmt.Sprintf("s.name ILIKE $%d", len(args)))
	}
	if len(f.Tags) > 0 {
		args = append(args, f.Tags)
		where = append(where, fmt.Sprintf("s.tags @> $%d::TEXT[]", len(args)))
	}
	if f.PublicOnly {
		where = append(where, "p.is_public")
	}

	query := svgListingSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + svgOrderBy(f.Sort)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	svgs := []models.SVGListing{}
	for rows.Next() {
		l, err := scanSVGListing(rows)
		if err != nil {
			return nil, err
		}
		svgs = append(svgs, *l)
	}

	return svgs, rows.Err()
}

func (q *Queries) GetSVGListing(ctx context.Context, id string) (*models.SVGListing, error) {
	svgs, err := q.ListSVGs(ctx, SVGFilter{SVGID: &id})
	if err != nil {
		return nil, err
	}
	if len(svgs) == 0 {
		return nil, nil
	}
	return &svgs[0], nil
}

// UpdateSVGParams carries a partial update of the fields the settings dialog edits.
// Nil fields are left unchanged; an empty Description clears it.
type UpdateSVGParams struct {
	Name        *string
	Description *string
	ProjectID   *string
	Tags        *[]string
}

func (q *Queries) UpdateSVG(ctx context.Context, id string, ownerID uuid.UUID, arg UpdateSVGParams) (*models.SVG, error) {
	if arg.ProjectID != nil {
		project, err := q.GetProject(ctx, *arg.ProjectID)
		if err != nil {
			return nil, err
		}
		if project == nil || project.UserID != ownerID {
			return nil, ErrProjectNotFound
		}
	}

	var description string
	if arg.Description != nil {
		description = *arg.Description
	}
	var tags []string
	if arg.Tags != nil {
		tags = *arg.Tags
		if tags == nil {
			tags = []string{}
		}
	}

	query := `
		UPDATE svgs AS s
		SET name = COALESCE($3, s.name),
			description = CASE WHEN $4::BOOLEAN THEN NULLIF($5, '') ELSE s.description END,
			project_id = COALESCE($6, s.project_id),
			tags = CASE WHEN $7::BOOLEAN THEN $8::TEXT[] ELSE s.tags END
		WHERE s.id = $1 AND s.user_id = $2
		RETURNING ` + svgColumns

	svg, err := scanSVG(q.db.QueryRow(ctx, query,
		id,
		ownerID,
		arg.Name,
		arg.Description != nil,
		description,
		arg.ProjectID,
		arg.Tags != nil,
		tags,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSVGNotFound
		}
		return nil, err
	}
	return svg, nil
}

// ToggleFavorite flips the owner's favorite flag and returns the stored value.
func (q *Queries) ToggleFavorite(ctx context.Context, id string, ownerID uuid.UUID) (bool, error) {
	query := `
		UPDATE svgs
		SET favorited = NOT favorited
		WHERE id = $1 AND user_id = $2
		RETURNING favorited
	`
	var favorited bool
	err := q.db.QueryRow(ctx, query, id, ownerID).Scan(&favorited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrSVGNotFound
		}
		return false, err
	}
	return favorited, nil
}

// IncrementViews adds one view in the database, so concurrent viewers never
// overwrite each other's increments.
func (q *Queries) IncrementViews(ctx context.Context, id string) (int64, error) {
	var views int64
	err := q.db.QueryRow(ctx, `UPDATE svgs SET views = views + 1 WHERE id = $1 RETURNING views`, id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrSVGNotFound
		}
		return 0, err
	}
	return views, nil
}

func (q *Queries) IncrementDownloads(ctx context.Context, id string) (int64, error) {
	var downloads int64
	err := q.db.QueryRow(ctx, `UPDATE svgs SET downloads = downloads + 1 WHERE id = $1 RETURNING downloads`, id).Scan(&downloads)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrSVGNotFound
		}
		return 0, err
	}
	return downloads, nil
}

// lockProjectSVGs reads a project's SVGs and holds a share lock on them
// until the transaction ends. A concurrent delete of any of them waits, so
// its reference check sees rows copied in the meantime; rows already being
// deleted are skipped.
func (q *Queries) lockProjectSVGs(ctx context.Context, projectID string) ([]models.SVG, error) {
	query := `
		SELECT ` + svgColumns + `
		FROM svgs s
		WHERE s.project_id = $1
		ORDER BY s.name, s.id
		FOR SHARE
	`
	rows, err := q.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	svgs := []models.SVG{}
	for rows.Next() {
		svg, err := scanSVG(rows)
		if err != nil {
			return nil, err
		}
		svgs = append(svgs, *svg)
	}
	return svgs, rows.Err()
}

// UnreferencedPaths returns the paths no svgs row points at any more.
func (q *Queries) UnreferencedPaths(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return []string{}, nil
	}

	query := `
		SELECT DISTINCT path
		FROM unnest($1::TEXT[]) AS path
		WHERE NOT EXISTS (SELECT 1 FROM svgs WHERE file_path = path)
		ORDER BY path
	`
	rows, err := q.db.Query(ctx, query, paths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orphans := []string{}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		orphans = append(orphans, path)
	}
	return orphans, rows.Err()
}

func (q *Queries) deleteSVGRow(ctx context.Context, id string, ownerID uuid.UUID) (string, error) {
	var filePath string
	err := q.db.QueryRow(ctx, `DELETE FROM svgs WHERE id = $1 AND user_id = $2 RETURNING file_path`, id, ownerID).Scan(&filePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSVGNotFound
		}
		return "", err
	}
	return filePath, nil
}

func (q *Queries) deleteSVGsByProject(ctx context.Context, projectID string) ([]string, error) {
	rows, err := q.db.Query(ctx, `DELETE FROM svgs WHERE project_id = $1 RETURNING file_path`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

func (q *Queries) filePathsByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := q.db.Query(ctx, `SELECT DISTINCT file_path FROM svgs WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
