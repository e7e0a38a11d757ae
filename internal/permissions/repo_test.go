package permissions

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
	"github.com/campuslabs/campus-events-backend/pkg/pagination"
)

func setupPermissionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Permission{}))
	return conn
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupPermissionsTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Permission{
		EventID:        1,
		RequestorID:    2,
		ApproverID:     3,
		PermissionType: enums.PermissionTypeVenue,
		Status:         enums.ApprovalStatusPending,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), found.ApproverID)
	assert.Equal(t, enums.ApprovalStatusPending, found.Status)
}

func TestRepositoryListPaginates(t *testing.T) {
	repo := NewRepository(setupPermissionsTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &models.Permission{
			EventID:        uint(i + 1),
			RequestorID:    2,
			ApproverID:     3,
			PermissionType: enums.PermissionTypeEquipment,
			Status:         enums.ApprovalStatusPending,
		})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, pagination.Params{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint(3), page[0].EventID)
	assert.Equal(t, uint(4), page[1].EventID)
}

func TestRepositoryTransitionStatus(t *testing.T) {
	repo := NewRepository(setupPermissionsTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Permission{
		EventID:        1,
		RequestorID:    2,
		ApproverID:     3,
		PermissionType: enums.PermissionTypeVenue,
		Status:         enums.ApprovalStatusPending,
	})
	require.NoError(t, err)

	moved, err := repo.TransitionStatus(ctx, created.ID, enums.ApprovalStatusPending, enums.ApprovalStatusApproved)
	require.NoError(t, err)
	assert.True(t, moved)

	// The guard only matches rows still in the expected status.
	moved, err = repo.TransitionStatus(ctx, created.ID, enums.ApprovalStatusPending, enums.ApprovalStatusRejected)
	require.NoError(t, err)
	assert.False(t, moved)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.ApprovalStatusApproved, found.Status)
}
