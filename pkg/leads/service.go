package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/models"
	"github.com/jfmartinez/leadpilot/pkg/phone"
)

const statsCacheKey = "leadpilot:stats"
const statsCacheTTL = 60 * time.Second

// Service handles lead CRUD and pipeline aggregates. Updates that can touch
// the stage do NOT live here; they go through the lifecycle service so the
// pipeline invariants hold on every path.
type Service struct {
	client *ent.Client
	cache  *cache.Client
}

// NewService creates a new leads service.
func NewService(client *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{client: client, cache: cacheClient}
}

// Create inserts a manually entered lead. Email is lowercased, phone
// normalized to E.164 when parseable.
func (s *Service) Create(ctx context.Context, req models.LeadCreateRequest) (*ent.Lead, error) {
	builder := s.client.Lead.Create().
		SetName(strings.TrimSpace(req.Name)).
		SetEmail(strings.ToLower(strings.TrimSpace(req.Email)))

	if req.Company != "" {
		builder.SetCompany(req.Company)
	}
	if req.Phone != "" {
		builder.SetPhone(phone.Normalize(req.Phone))
	}
	if req.Stage != "" {
		stage := lifecycle.Stage(req.Stage)
		builder.SetStage(lead.Stage(stage))
		builder.SetArchived(lifecycle.IsArchivedStage(stage))
		if stage == lifecycle.StageConverted {
			builder.SetConvertedAt(time.Now())
		}
	}
	if req.Source != "" {
		builder.SetSource(lead.Source(req.Source))
	}
	if req.Owner != "" {
		builder.SetOwner(req.Owner)
	}
	if req.ConversionProbability != nil {
		builder.SetConversionProbability(*req.ConversionProbability)
	}
	if req.Revenue != nil {
		builder.SetRevenue(*req.Revenue)
	}
	if req.Notes != "" {
		builder.SetNotes(req.Notes)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.invalidateStats(ctx)
	return created, nil
}

// GetByID fetches one lead.
func (s *Service) GetByID(ctx context.Context, id int) (*ent.Lead, error) {
	found, err := s.client.Lead.Query().
		Where(lead.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	return found, nil
}

// List returns a filtered, paginated page of leads, newest first.
func (s *Service) List(ctx context.Context, req models.LeadListRequest) (*models.LeadListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := s.client.Lead.Query()
	if req.Stage != "" {
		query = query.Where(lead.StageEQ(lead.Stage(req.Stage)))
	}
	if req.Source != "" {
		query = query.Where(lead.SourceEQ(lead.Source(req.Source)))
	}
	if req.Archived != nil {
		query = query.Where(lead.Archived(*req.Archived))
	}
	if q := strings.TrimSpace(req.Q); q != "" {
		query = query.Where(lead.Or(
			lead.NameContainsFold(q),
			lead.EmailContainsFold(q),
			lead.CompanyContainsFold(q),
		))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	// ID breaks created_at ties so pagination stays stable.
	rows, err := query.
		Order(ent.Desc(lead.FieldCreatedAt), ent.Desc(lead.FieldID)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	data := make([]models.LeadResponse, len(rows))
	for i, row := range rows {
		data[i] = ToResponse(row)
	}

	totalPages := (total + limit - 1) / limit
	return &models.LeadListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// Delete removes a lead and its activities.
func (s *Service) Delete(ctx context.Context, id int) error {
	_, err := s.client.Activity.Delete().
		Where(activity.LeadID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lead activities: %w", err)
	}

	err = s.client.Lead.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return lifecycle.ErrNotFound
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	s.invalidateStats(ctx)
	return nil
}

// Stats computes pipeline aggregates for the dashboard, cached briefly in
// Redis since the dashboard polls it.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil && cached != "" {
			var stats models.StatsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, string(encoded), statsCacheTTL); err != nil {
				log.Printf("⚠️  Failed to cache lead stats: %v", err)
			}
		}
	}
	return stats, nil
}

func (s *Service) computeStats(ctx context.Context) (*models.StatsResponse, error) {
	total, err := s.client.Lead.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	archived, err := s.client.Lead.Query().
		Where(lead.Archived(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count archived leads: %w", err)
	}

	byStage := make(map[string]int, len(lifecycle.AllStages))
	for _, stage := range lifecycle.AllStages {
		count, err := s.client.Lead.Query().
			Where(lead.StageEQ(lead.Stage(stage))).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count stage %s: %w", stage, err)
		}
		byStage[string(stage)] = count
	}

	bySource := make(map[string]int)
	for _, source := range []lead.Source{
		lead.SourceWebsite, lead.SourceLinkedin, lead.SourceReferral,
		lead.SourceEmail, lead.SourceInstagram, lead.SourceMetaAds,
		lead.SourceGoogleAds, lead.SourceOther,
	} {
		count, err := s.client.Lead.Query().
			Where(lead.SourceEQ(source)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count source %s: %w", source, err)
		}
		bySource[string(source)] = count
	}

	converted := byStage[string(lifecycle.StageConverted)]

	var totalRevenue float64
	convertedRows, err := s.client.Lead.Query().
		Where(lead.StageEQ(lead.StageConverted)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch converted leads: %w", err)
	}
	for _, row := range convertedRows {
		if row.Revenue != nil {
			totalRevenue += *row.Revenue
		}
	}

	var rate float64
	if total > 0 {
		rate = float64(converted) / float64(total) * 100
	}

	return &models.StatsResponse{
		Total:          total,
		Active:         total - archived,
		Archived:       archived,
		Converted:      converted,
		ConversionRate: rate,
		TotalRevenue:   totalRevenue,
		ByStage:        byStage,
		BySource:       bySource,
	}, nil
}

// invalidateStats drops the cached aggregates after a write.
func (s *Service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		log.Printf("⚠️  Failed to invalidate stats cache: %v", err)
	}
}

// InvalidateStats is the exported hook for other mutation paths (lifecycle
// updates, ingestion) to drop the cached aggregates.
func (s *Service) InvalidateStats(ctx context.Context) {
	s.invalidateStats(ctx)
}

// ToResponse converts an ent lead into the API response shape.
func ToResponse(l *ent.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:                    l.ID,
		Name:                  l.Name,
		Email:                 l.Email,
		Company:               l.Company,
		Phone:                 l.Phone,
		Stage:                 string(l.Stage),
		Source:                string(l.Source),
		Owner:                 l.Owner,
		ConversionProbability: l.ConversionProbability,
		Revenue:               l.Revenue,
		Notes:                 l.Notes,
		Archived:              l.Archived,
		LastContacted:         l.LastContacted,
		ConvertedAt:           l.ConvertedAt,
		MetaLeadID:            l.MetaLeadID,
		InstagramID:           l.InstagramID,
		FacebookID:            l.FacebookID,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}
