package tryon

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

func newSession() *models.TryOnSession {
	return &models.TryOnSession{
		OriginalPhotoURL: "https://cdn.example.com/tryon/originals/a.webp",
		Step:             string(InitialStep()),
	}
}

func TestWizard_ForwardPath(t *testing.T) {
	s := newSession()
	style := uuid.New()

	require.NoError(t, SelectStyle(s, style))
	assert.Equal(t, string(StepStyleSelected), s.Step)
	assert.Equal(t, style, *s.HairstyleID)

	require.NoError(t, Preview(s))
	assert.Equal(t, string(StepPreviewed), s.Step)

	require.NoError(t, Save(s))
	assert.Equal(t, string(StepSaved), s.Step)
	assert.True(t, s.IsSaved)
	assert.Equal(t, s.OriginalPhotoURL, s.ResultPhotoURL)
}

func TestWizard_CannotSkipSteps(t *testing.T) {
	s := newSession()

	assert.True(t, httperr.IsBusiness(Preview(s), "invalid_step"), "preview needs a style")
	assert.True(t, httperr.IsBusiness(Save(s), "invalid_step"), "save needs a preview")

	require.NoError(t, SelectStyle(s, uuid.New()))
	assert.True(t, httperr.IsBusiness(Save(s), "invalid_step"), "save needs a preview")
}

func TestWizard_Back(t *testing.T) {
	s := newSession()
	assert.True(t, httperr.IsBusiness(Back(s), "invalid_step"))

	require.NoError(t, SelectStyle(s, uuid.New()))
	require.NoError(t, Preview(s))

	require.NoError(t, Back(s))
	assert.Equal(t, string(StepStyleSelected), s.Step)
	assert.NotNil(t, s.HairstyleID)

	require.NoError(t, Back(s))
	assert.Equal(t, string(StepUploaded), s.Step)
	assert.Nil(t, s.HairstyleID)
}

func TestWizard_ReselectFromPreview(t *testing.T) {
	s := newSession()
	require.NoError(t, SelectStyle(s, uuid.New()))
	require.NoError(t, Preview(s))

	other := uuid.New()
	require.NoError(t, SelectStyle(s, other))
	assert.Equal(t, string(StepStyleSelected), s.Step)
	assert.Equal(t, other, *s.HairstyleID)
}

func TestWizard_SavedIsTerminal(t *testing.T) {
	s := newSession()
	require.NoError(t, SelectStyle(s, uuid.New()))
	require.NoError(t, Preview(s))
	require.NoError(t, Save(s))

	assert.True(t, httperr.IsBusiness(Back(s), "invalid_step"))
	assert.True(t, httperr.IsBusiness(SelectStyle(s, uuid.New()), "invalid_step"))
	assert.True(t, httperr.IsBusiness(Save(s), "invalid_step"))
}
