package lifecycle

import "time"

// Stage represents a lead's pipeline stage.
type Stage string

const (
	StageContacted1     Stage = "contacted_1"
	StageContacted2     Stage = "contacted_2"
	StageCalled         Stage = "called"
	StageOnHold         Stage = "on_hold"
	StageInterested     Stage = "interested"
	StageOnboardingSent Stage = "onboarding_sent"
	StageConverted      Stage = "converted"
	StageNotInterested  Stage = "not_interested"
	StageNoResponse     Stage = "no_response"
	StageNotQualified   Stage = "not_qualified"
)

// AllStages lists every valid stage value.
var AllStages = []Stage{
	StageContacted1, StageContacted2, StageCalled, StageOnHold,
	StageInterested, StageOnboardingSent, StageConverted,
	StageNotInterested, StageNoResponse, StageNotQualified,
}

// archivedStages are the terminal "dead" branches. A lead whose stage enters
// this set is archived unless the caller explicitly says otherwise.
var archivedStages = map[Stage]bool{
	StageNotInterested: true,
	StageNoResponse:    true,
	StageNotQualified:  true,
}

// earlyContactStages are stages where a fresh inbound message from the lead
// counts as renewed interest.
var earlyContactStages = map[Stage]bool{
	StageContacted1: true,
	StageContacted2: true,
	StageCalled:     true,
	StageNoResponse: true,
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	for _, known := range AllStages {
		if s == known {
			return true
		}
	}
	return false
}

// IsArchivedStage reports whether s belongs to the archived-stage set.
func IsArchivedStage(s Stage) bool {
	return archivedStages[s]
}

// IsEarlyContactStage reports whether s belongs to the early-contact set.
func IsEarlyContactStage(s Stage) bool {
	return earlyContactStages[s]
}

// Derived holds the fields the policy computes when an update sets the stage.
type Derived struct {
	// Archived is the archived flag to persist alongside the stage change.
	Archived bool
	// ConvertedAt is non-nil iff the new stage is converted.
	ConvertedAt *time.Time
}

// Derive computes the archived flag and conversion timestamp for a stage
// change. explicitArchived is the caller-supplied archived value, or nil when
// the caller did not include the field (the escape hatch of the archived
// invariant). now is the update time used to stamp converted_at.
//
// Callers that do not change the stage must not call Derive; the policy only
// fires on stage updates.
func Derive(newStage Stage, explicitArchived *bool, now time.Time) Derived {
	d := Derived{}

	if explicitArchived != nil {
		d.Archived = *explicitArchived
	} else {
		// Auto-archive on dead stages, auto-unarchive on everything else.
		// Moving between two live stages resets a manual archive.
		d.Archived = IsArchivedStage(newStage)
	}

	if newStage == StageConverted {
		t := now
		d.ConvertedAt = &t
	}
	// ConvertedAt nil means "clear converted_at" for every other stage;
	// clearing an already-nil converted_at is a no-op.

	return d
}
