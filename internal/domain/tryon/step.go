package tryon

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
	"github.com/BruksfildServices01/headz-api/internal/models"
)

// Step is how far a session has progressed through the try-on wizard:
// upload → select → preview → save.
type Step string

const (
	StepUploaded      Step = "uploaded"
	StepStyleSelected Step = "style_selected"
	StepPreviewed     Step = "previewed"
	StepSaved         Step = "saved"
)

func InitialStep() Step {
	return StepUploaded
}

// SelectStyle picks (or re-picks) the hairstyle. Re-picking from the preview
// goes back to the selection step.
func SelectStyle(s *models.TryOnSession, hairstyleID uuid.UUID) error {
	switch Step(s.Step) {
	case StepUploaded, StepStyleSelected, StepPreviewed:
	default:
		return httperr.ErrBusiness("invalid_step")
	}

	s.HairstyleID = &hairstyleID
	s.Hairstyle = nil
	s.Step = string(StepStyleSelected)
	return nil
}

func Preview(s *models.TryOnSession) error {
	if Step(s.Step) != StepStyleSelected || s.HairstyleID == nil {
		return httperr.ErrBusiness("invalid_step")
	}

	s.Step = string(StepPreviewed)
	return nil
}

// Save finalises the session. The result is the original photo; the overlay
// is drawn by the client.
func Save(s *models.TryOnSession) error {
	if Step(s.Step) != StepPreviewed {
		return httperr.ErrBusiness("invalid_step")
	}

	s.Step = string(StepSaved)
	s.IsSaved = true
	s.ResultPhotoURL = s.OriginalPhotoURL
	return nil
}

func Back(s *models.TryOnSession) error {
	switch Step(s.Step) {
	case StepPreviewed:
		s.Step = string(StepStyleSelected)
	case StepStyleSelected:
		s.Step = string(StepUploaded)
		s.HairstyleID = nil
		s.Hairstyle = nil
	default:
		return httperr.ErrBusiness("invalid_step")
	}
	return nil
}
