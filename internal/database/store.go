package database

import (
	"context"
	"fmt"
	"svg-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventPublisher receives every journaled event after it was stored.
type EventPublisher interface {
	PublishEvent(userID uuid.UUID, payload []byte)
}

type Store struct {
	pool *pgxpool.Pool
	*Queries
	events EventPublisher
}

func NewStore(pool *pgxpool.Pool, events EventPublisher) *Store {
	return &Store{
		pool:    pool,
		Queries: New(pool),
		events:  events,
	}
}

func (s *Store) ExecTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) GetPool() *pgxpool.Pool {
	return s.pool
}

func ownedProject(ctx context.Context, q *Queries, id string, ownerID uuid.UUID) (*models.Project, error) {
	project, err := q.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.UserID != ownerID {
		return nil, ErrForbidden
	}
	return project, nil
}

// DeleteProject removes the project's SVGs and then the project in one
// transaction. It returns the storage paths no remaining SVG references.
func (s *Store) DeleteProject(ctx context.Context, id string, ownerID uuid.UUID) ([]string, error) {
	var orphans []string
	err := s.ExecTx(ctx, func(q *Queries) error {
		if _, err := ownedProject(ctx, q, id, ownerID); err != nil {
			return err
		}

		paths, err := q.deleteSVGsByProject(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete project svgs: %w", err)
		}

		deleted, err := q.deleteProjectRow(ctx, id, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		if !deleted {
			return ErrProjectNotFound
		}

		orphans, err = q.UnreferencedPaths(ctx, paths)
		return err
	})
	if err != nil {
		return nil, err
	}
	return orphans, nil
}

// DeleteSVG removes a single SVG row. The returned path is empty when
// another SVG still references the same blob.
func (s *Store) DeleteSVG(ctx context.Context, id string, ownerID uuid.UUID) (string, error) {
	var orphan string
	err := s.ExecTx(ctx, func(q *Queries) error {
		path, err := q.deleteSVGRow(ctx, id, ownerID)
		if err != nil {
			return err
		}
		orphans, err := q.UnreferencedPaths(ctx, []string{path})
		if err != nil {
			return err
		}
		if len(orphans) == 1 {
			orphan = orphans[0]
		}
		return nil
	})
	return orphan, err
}

// ForkResult is the outcome of a fork: the new private project and how many
// SVG rows were copied into it.
type ForkResult struct {
	Project  *models.Project
	Source   *models.Project
	SVGCount int
}

// ForkProject copies a public project and its SVG rows for userID. Copied rows
// point at the original storage paths; their metrics start at zero.
func (s *Store) ForkProject(ctx context.Context, sourceID string, userID uuid.UUID) (*ForkResult, error) {
	var result ForkResult
	err := s.ExecTx(ctx, func(q *Queries) error {
		source, err := q.GetProject(ctx, sourceID)
		if err != nil {
			return err
		}
		if source == nil {
			return ErrProjectNotFound
		}
		if !source.IsPublic {
			return ErrProjectNotPublic
		}
		result.Source = source

		description := "Forked from " + source.Name
		forked, err := q.CreateProject(ctx, CreateProjectParams{
			ID:          NewID(),
			UserID:      userID,
			Name:        source.Name + " (Fork)",
			Description: &description,
			IsPublic:    false,
		})
		if err != nil {
			return fmt.Errorf("failed to create forked project: %w", err)
		}
		result.Project = forked

		svgs, err := q.lockProjectSVGs(ctx, sourceID)
		if err != nil {
			return fmt.Errorf("failed to list source svgs: %w", err)
		}

		for _, svg := range svgs {
			_, err := q.CreateSVG(ctx, CreateSVGParams{
				ID:          NewID(),
				UserID:      userID,
				ProjectID:   forked.ID,
				Name:        svg.Name,
				Description: svg.Description,
				FilePath:    svg.FilePath,
				FileSize:    svg.FileSize,
				Tags:        svg.Tags,
			})
			if err != nil {
				return fmt.Errorf("failed to copy svg %s: %w", svg.ID, err)
			}
		}
		result.SVGCount = len(svgs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAccount removes the user row; projects, SVGs, sessions and
// notifications go with it through ON DELETE CASCADE. It returns the storage
// paths no other user's SVGs reference.
func (s *Store) DeleteAccount(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var orphans []string
	err := s.ExecTx(ctx, func(q *Queries) error {
		paths, err := q.filePathsByUser(ctx, userID)
		if err != nil {
			return err
		}

		deleted, err := q.DeleteUserRow(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if !deleted {
			return ErrUserNotFound
		}

		orphans, err = q.UnreferencedPaths(ctx, paths)
		return err
	})
	if err != nil {
		return nil, err
	}
	return orphans, nil
}
