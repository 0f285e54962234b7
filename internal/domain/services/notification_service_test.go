package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
)

func TestNotificationLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := services.NewNotificationService(f.db, f.cfg)
	gov := f.user(t, "gov@example.com", models.RoleGovernment)

	_, err := svc.Create(f.ctx, gov.ID, "Flood warning", " ")
	assert.True(t, code.Is(err, code.ErrValidation))

	first, err := svc.Create(f.ctx, gov.ID, "Flood warning", "Move to high ground")
	require.NoError(t, err)
	second, err := svc.Create(f.ctx, gov.ID, "Curfew", "Stay indoors after 8pm")
	require.NoError(t, err)

	active, err := svc.ListActive(f.ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, second.ID, active[0].ID)
	require.NotNil(t, active[0].Creator)
	assert.Equal(t, gov.Email, active[0].Creator.Email)

	// empty title means unchanged
	updated, err := svc.Update(f.ctx, first.ID, services.UpdateNotificationInput{
		Title: strPtr(""), Message: strPtr("Evacuate now"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Flood warning", updated.Title)
	assert.Equal(t, "Evacuate now", updated.Message)

	_, err = svc.Update(f.ctx, first.ID, services.UpdateNotificationInput{Title: strPtr("  ")})
	assert.True(t, code.Is(err, code.ErrNoFieldsToUpdate))
	_, err = svc.Update(f.ctx, 999, services.UpdateNotificationInput{IsActive: boolPtr(true)})
	assert.True(t, code.Is(err, code.ErrNotificationNotFound))

	require.NoError(t, svc.Remove(f.ctx, first.ID))
	require.NoError(t, svc.Remove(f.ctx, first.ID), "removing twice is fine")
	assert.True(t, code.Is(svc.Remove(f.ctx, 999), code.ErrNotificationNotFound))

	active, err = svc.ListActive(f.ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	all, err := svc.ListAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "removed rows are kept")

	got, err := svc.Get(f.ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	restored, err := svc.Update(f.ctx, first.ID, services.UpdateNotificationInput{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}
