package database

import (
	"context"
	"svg-vault/internal/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, email string) *models.User {
	user, err := testStore.CreateUser(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func createTestProject(t *testing.T, ownerID uuid.UUID, name string, public bool) *models.Project {
	project, err := testStore.CreateProject(context.Background(), CreateProjectParams{
		ID:       NewID(),
		UserID:   ownerID,
		Name:     name,
		IsPublic: public,
	})
	require.NoError(t, err)
	require.NotNil(t, project)
	return project
}

func createTestSVG(t *testing.T, project *models.Project, name string, tags ...string) *models.SVG {
	svg, err := testStore.CreateSVG(context.Background(), CreateSVGParams{
		ID:        NewID(),
		UserID:    project.UserID,
		ProjectID: project.ID,
		Name:      name,
		FilePath:  project.UserID.String() + "/" + NewID() + ".svg",
		FileSize:  1024,
		Tags:      tags,
	})
	require.NoError(t, err)
	require.NotNil(t, svg)
	return svg
}
