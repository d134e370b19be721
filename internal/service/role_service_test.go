package service

import (
	"context"
	"net/http"
	"testing"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRolesReturnsSeededRoles(t *testing.T) {
	db := testutils.SetupTestDB(t)
	svc := NewRoleService(db)

	resp := svc.GetAllRoles(context.Background())

	require.True(t, resp.Success, resp.ErrorMessage)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, resp.Data, 2)

	names := make(map[uint]string, len(resp.Data))
	for _, role := range resp.Data {
		names[role.ID] = role.Name
	}
	assert.Equal(t, models.RolePlayer, names[1])
	assert.Equal(t, models.RoleAdmin, names[2])
}
