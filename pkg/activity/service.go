package activity

import (
	"context"
	"fmt"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/models"
)

// Service manages the append-only activity log attached to leads.
type Service struct {
	client *ent.Client
}

// NewService creates a new activity service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Append records one activity entry on a lead.
func (s *Service) Append(ctx context.Context, leadID int, kind activity.Kind, body string) (*ent.Activity, error) {
	exists, err := s.client.Lead.Query().
		Where(lead.ID(leadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}
	if !exists {
		return nil, lifecycle.ErrNotFound
	}

	entry, err := s.client.Activity.Create().
		SetLeadID(leadID).
		SetKind(kind).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return entry, nil
}

// ListByLead returns a lead's activity log, newest first.
func (s *Service) ListByLead(ctx context.Context, leadID int) ([]models.ActivityResponse, error) {
	exists, err := s.client.Lead.Query().
		Where(lead.ID(leadID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check lead existence: %w", err)
	}
	if !exists {
		return nil, lifecycle.ErrNotFound
	}

	rows, err := s.client.Activity.Query().
		Where(activity.LeadID(leadID)).
		Order(ent.Desc(activity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	response := make([]models.ActivityResponse, len(rows))
	for i, row := range rows {
		response[i] = models.ActivityResponse{
			ID:        row.ID,
			LeadID:    row.LeadID,
			Kind:      string(row.Kind),
			Body:      row.Body,
			CreatedAt: row.CreatedAt,
		}
	}
	return response, nil
}
