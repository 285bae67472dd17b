// Package lifecycle is the state machine of a single intake record:
//
//	registered -> in-progress -> completed
//	                   ^              |
//	                   +--- reopen ---+
//
// Functions mutate the record in place and never touch storage; callers
// persist the result inside the same row lock they loaded it under.
package lifecycle

import (
	"math"
	"time"

	"github.com/google/uuid"

	"frontdesk_backend/internals/apperr"
	"frontdesk_backend/internals/features/intake/model"
)

// CompleteStep marks stepName done. changed is false when it already was.
func CompleteStep(rec *model.IntakeRecordModel, stepName string) (changed bool, err error) {
	step := rec.Step(stepName)
	if step == nil {
		return false, apperr.NotFound("step %q not found", stepName)
	}
	if step.IntakeStepIsCompleted {
		return false, nil
	}
	step.IntakeStepIsCompleted = true
	return true, nil
}

// AllCompleted is vacuously true for an empty checklist.
func AllCompleted(rec *model.IntakeRecordModel) bool {
	for _, s := range rec.Steps {
		if !s.IntakeStepIsCompleted {
			return false
		}
	}
	return true
}

// PendingSteps lists the names of steps still open, in checklist order.
func PendingSteps(rec *model.IntakeRecordModel) []string {
	var out []string
	for _, s := range rec.Steps {
		if !s.IntakeStepIsCompleted {
			out = append(out, s.IntakeStepName)
		}
	}
	return out
}

// Start begins processing by a recruiter. An unassigned record is claimed
// by the caller; a record held by somebody else is a conflict.
func Start(rec *model.IntakeRecordModel, recruiterID uuid.UUID, recruiterName string, now time.Time) (changed bool, err error) {
	if rec.IntakeRecordAssignedRecruiterID != nil && *rec.IntakeRecordAssignedRecruiterID != recruiterID {
		return false, apperr.Conflict("record is assigned to %s", assignedName(rec))
	}
	if rec.IntakeRecordStatus == model.StatusCompleted {
		return false, apperr.PreconditionFailed("record is completed; reopen it first")
	}

	if rec.IntakeRecordAssignedRecruiterID == nil {
		AssignRecruiter(rec, recruiterID, recruiterName)
		changed = true
	}
	if rec.IntakeRecordStartedAt == nil {
		t := now.UTC()
		rec.IntakeRecordStartedAt = &t
		changed = true
	}
	if rec.IntakeRecordStatus == model.StatusRegistered {
		rec.IntakeRecordStatus = model.StatusInProgress
		changed = true
	}
	return changed, nil
}

// Complete closes the record once every step is done.
func Complete(rec *model.IntakeRecordModel, now time.Time) error {
	if rec.IntakeRecordStatus == model.StatusCompleted {
		return apperr.Conflict("record is already completed")
	}
	if !AllCompleted(rec) {
		return apperr.PreconditionFailed("%d step(s) not completed", len(PendingSteps(rec)))
	}

	t := now.UTC()
	rec.IntakeRecordStatus = model.StatusCompleted
	rec.IntakeRecordCompletedAt = &t
	rec.IntakeRecordDurationMinutes = nil
	if rec.IntakeRecordStartedAt != nil {
		d := DurationMinutes(*rec.IntakeRecordStartedAt, t)
		rec.IntakeRecordDurationMinutes = &d
	}
	return nil
}

// Reopen moves a completed record back to in-progress. started_at is kept so
// the next completion measures from the original start.
func Reopen(rec *model.IntakeRecordModel) error {
	if rec.IntakeRecordStatus != model.StatusCompleted {
		return apperr.PreconditionFailed("only completed records can be reopened (status is %s)", rec.IntakeRecordStatus)
	}
	rec.IntakeRecordStatus = model.StatusInProgress
	rec.IntakeRecordCompletedAt = nil
	rec.IntakeRecordDurationMinutes = nil
	return nil
}

// AssignRecruiter overwrites any previous assignment. Status and timestamps
// are never touched.
func AssignRecruiter(rec *model.IntakeRecordModel, recruiterID uuid.UUID, recruiterName string) {
	id := recruiterID
	name := recruiterName
	rec.IntakeRecordAssignedRecruiterID = &id
	rec.IntakeRecordAssignedRecruiterName = &name
}

// ApplyStatusOverride maps a staff status edit onto the transitions above so
// the completed/completed_at invariant holds whatever the caller asks for.
func ApplyStatusOverride(rec *model.IntakeRecordModel, target string, recruiterID uuid.UUID, recruiterName string, now time.Time) (changed bool, err error) {
	if !model.IsValidStatus(target) {
		return false, apperr.Validation(map[string][]string{"status": {"must be one of registered, in-progress, completed"}})
	}
	if target == rec.IntakeRecordStatus {
		return false, nil
	}

	switch target {
	case model.StatusCompleted:
		if err := Complete(rec, now); err != nil {
			return false, err
		}
		return true, nil
	case model.StatusInProgress:
		if rec.IntakeRecordStatus == model.StatusCompleted {
			if err := Reopen(rec); err != nil {
				return false, err
			}
			return true, nil
		}
		return Start(rec, recruiterID, recruiterName, now)
	default:
		return false, apperr.PreconditionFailed("cannot move a %s record back to registered", rec.IntakeRecordStatus)
	}
}

// DurationMinutes is the difference rounded to the nearest whole minute.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

func assignedName(rec *model.IntakeRecordModel) string {
	if rec.IntakeRecordAssignedRecruiterName != nil && *rec.IntakeRecordAssignedRecruiterName != "" {
		return *rec.IntakeRecordAssignedRecruiterName
	}
	return "another recruiter"
}
