package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
)

// ErrNotFound is returned when the target lead does not exist. Callers must
// surface it distinctly from validation and storage failures.
var ErrNotFound = errors.New("lead not found")

// Service applies partial lead updates through the stage transition policy.
// Every mutation path (dashboard edit, sweeps, webhook ingestion, email send
// side effects) goes through Apply so the pipeline invariants cannot be
// bypassed by a new call site.
type Service struct {
	client *ent.Client
}

// NewService creates a new lifecycle service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Changes is a partial update to a lead. Nil fields were not supplied by the
// caller and pass through unchanged.
type Changes struct {
	Name                  *string
	Email                 *string
	Company               *string
	Phone                 *string
	Stage                 *Stage
	Source                *string
	Owner                 *string
	ConversionProbability *int
	Revenue               *float64
	Notes                 *string
	Archived              *bool
	LastContacted         *time.Time
}

// Apply loads the lead, resolves the requested changes against the stage
// policy and persists the result. Returns the updated lead.
func (s *Service) Apply(ctx context.Context, leadID int, ch Changes) (*ent.Lead, error) {
	current, err := s.client.Lead.Query().
		Where(lead.ID(leadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	upd := tx.Lead.UpdateOneID(leadID)

	if ch.Name != nil {
		upd.SetName(*ch.Name)
	}
	if ch.Email != nil {
		upd.SetEmail(strings.ToLower(strings.TrimSpace(*ch.Email)))
	}
	if ch.Company != nil {
		upd.SetCompany(*ch.Company)
	}
	if ch.Phone != nil {
		upd.SetPhone(*ch.Phone)
	}
	if ch.Source != nil {
		upd.SetSource(lead.Source(*ch.Source))
	}
	if ch.Owner != nil {
		upd.SetOwner(*ch.Owner)
	}
	if ch.ConversionProbability != nil {
		upd.SetConversionProbability(*ch.ConversionProbability)
	}
	if ch.Revenue != nil {
		upd.SetRevenue(*ch.Revenue)
	}
	if ch.Notes != nil {
		upd.SetNotes(*ch.Notes)
	}
	if ch.LastContacted != nil {
		upd.SetLastContacted(*ch.LastContacted)
	}

	stageChanged := false
	if ch.Stage != nil {
		derived := Derive(*ch.Stage, ch.Archived, time.Now())
		upd.SetStage(lead.Stage(*ch.Stage))
		upd.SetArchived(derived.Archived)
		if derived.ConvertedAt != nil {
			upd.SetConvertedAt(*derived.ConvertedAt)
		} else {
			upd.ClearConvertedAt()
		}
		stageChanged = lead.Stage(*ch.Stage) != current.Stage
	} else if ch.Archived != nil {
		// No stage in the update: archived passes through untouched by
		// the policy.
		upd.SetArchived(*ch.Archived)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	if stageChanged {
		_, err = tx.Activity.Create().
			SetLeadID(leadID).
			SetKind(activity.KindStageChange).
			SetBody(fmt.Sprintf("Stage changed from %s to %s", current.Stage, *ch.Stage)).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to record stage change: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}
