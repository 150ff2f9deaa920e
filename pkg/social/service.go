package social

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/cache"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/phone"
)

const (
	// Webhook deliveries are at-least-once; message ids are cached to drop
	// duplicate deliveries without a table scan.
	messageDedupPrefix = "leadpilot:webhook:mid:"
	messageDedupTTL    = 24 * time.Hour
)

// Graph is the subset of the Graph API client used during ingestion.
type Graph interface {
	GetLeadDetails(ctx context.Context, leadgenID string) (*LeadDetails, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// Service ingests Meta webhook events into the lead database.
type Service struct {
	client    *ent.Client
	cache     *cache.Client
	graph     Graph
	lifecycle *lifecycle.Service
	leads     *leads.Service
}

// NewService creates a new social ingestion service.
func NewService(client *ent.Client, cacheClient *cache.Client, graph Graph, lifecycleService *lifecycle.Service, leadService *leads.Service) *Service {
	return &Service{
		client:    client,
		cache:     cacheClient,
		graph:     graph,
		lifecycle: lifecycleService,
		leads:     leadService,
	}
}

// HandleEvent processes a webhook envelope. Ingestion errors are logged and
// swallowed so the provider always gets an ack and does not retry forever.
func (s *Service) HandleEvent(ctx context.Context, event *WebhookEvent) {
	for _, entry := range event.Entry {
		for _, change := range entry.Changes {
			if change.Field != "leadgen" {
				continue
			}
			if err := s.IngestAdLead(ctx, change.Value.LeadgenID); err != nil {
				log.Printf("❌ Failed to ingest ad lead %s: %v", change.Value.LeadgenID, err)
			}
		}
		for _, messaging := range entry.Messaging {
			if messaging.Message == nil || messaging.Message.IsEcho {
				continue
			}
			if err := s.IngestMessage(ctx, event.Object, messaging); err != nil {
				log.Printf("❌ Failed to ingest %s message from %s: %v", event.Object, messaging.Sender.ID, err)
			}
		}
	}
}

// IngestAdLead fetches a Lead Ads submission and creates a lead for it.
// Re-deliveries of the same leadgen id are no-ops.
func (s *Service) IngestAdLead(ctx context.Context, leadgenID string) error {
	if leadgenID == "" {
		return fmt.Errorf("missing leadgen id")
	}

	exists, err := s.client.Lead.Query().Where(lead.MetaLeadID(leadgenID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check lead existence: %w", err)
	}
	if exists {
		log.Printf("⚠️ Ad lead %s already ingested, skipping", leadgenID)
		return nil
	}

	details, err := s.graph.GetLeadDetails(ctx, leadgenID)
	if err != nil {
		return fmt.Errorf("failed to fetch lead details: %w", err)
	}

	name := details.FullName
	if name == "" {
		name = "Meta Lead " + leadgenID
	}

	create := s.client.Lead.Create().
		SetName(name).
		SetSource(lead.SourceMetaAds).
		SetMetaLeadID(leadgenID)
	if details.Email != "" {
		create.SetEmail(strings.ToLower(strings.TrimSpace(details.Email)))
	}
	if details.Phone != "" {
		create.SetPhone(phone.Normalize(details.Phone))
	}
	if details.Company != "" {
		create.SetCompany(details.Company)
	}

	created, err := create.Save(ctx)
	if err != nil {
		// A concurrent delivery can win the race between the existence
		// check and the insert. The unique index makes that a skip.
		if ent.IsConstraintError(err) {
			log.Printf("⚠️ Ad lead %s ingested concurrently, skipping", leadgenID)
			return nil
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}

	if _, err := s.client.Activity.Create().
		SetLeadID(created.ID).
		SetKind(activity.KindSystem).
		SetBody("Imported from Meta Lead Ads").
		Save(ctx); err != nil {
		log.Printf("⚠️ Failed to record import activity for lead %d: %v", created.ID, err)
	}

	s.leads.InvalidateStats(ctx)
	log.Printf("✅ Ingested ad lead %s as lead %d", leadgenID, created.ID)
	return nil
}

// IngestMessage records an inbound Instagram or Messenger DM. A DM from a
// known lead in an early contact stage is treated as a response and moves
// the lead to interested.
func (s *Service) IngestMessage(ctx context.Context, object string, messaging Messaging) error {
	senderID := messaging.Sender.ID
	if senderID == "" || messaging.Message == nil {
		return fmt.Errorf("malformed messaging event")
	}

	if messaging.Message.MID != "" {
		fresh, err := s.cache.SetNX(ctx, messageDedupPrefix+messaging.Message.MID, "1", messageDedupTTL)
		if err != nil {
			log.Printf("⚠️ Message dedup check failed, ingesting anyway: %v", err)
		} else if !fresh {
			return nil
		}
	}

	isInstagram := object == "instagram"
	kind := activity.KindMessengerMessage
	predicate := lead.FacebookID(senderID)
	if isInstagram {
		kind = activity.KindInstagramMessage
		predicate = lead.InstagramID(senderID)
	}

	existing, err := s.client.Lead.Query().Where(predicate).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up lead by sender: %w", err)
	}

	isNew := existing == nil
	if isNew {
		existing, err = s.createFromProfile(ctx, senderID, isInstagram)
		if err != nil {
			return err
		}
	}

	body := messaging.Message.Text
	if body == "" {
		body = "(attachment)"
	}
	if _, err := s.client.Activity.Create().
		SetLeadID(existing.ID).
		SetKind(kind).
		SetBody(body).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record message activity: %w", err)
	}

	// A brand-new sender was never reached out to, so there is nothing to
	// advance and no outreach to stamp.
	if !isNew && lifecycle.IsEarlyContactStage(lifecycle.Stage(existing.Stage)) {
		now := time.Now()
		interested := lifecycle.StageInterested
		if _, err := s.lifecycle.Apply(ctx, existing.ID, lifecycle.Changes{
			Stage:         &interested,
			LastContacted: &now,
		}); err != nil {
			log.Printf("⚠️ Failed to advance lead %d on inbound DM: %v", existing.ID, err)
		} else {
			log.Printf("✅ Lead %d responded via %s, moved to interested", existing.ID, object)
		}
	}

	return nil
}

func (s *Service) createFromProfile(ctx context.Context, senderID string, isInstagram bool) (*ent.Lead, error) {
	name := ""
	if profile, err := s.graph.GetProfile(ctx, senderID); err != nil {
		log.Printf("⚠️ Failed to fetch profile for %s: %v", senderID, err)
	} else {
		name = profile.Name
		if name == "" {
			name = strings.TrimSpace(profile.FirstName + " " + profile.LastName)
		}
	}

	source := lead.SourceOther
	platform := "Messenger"
	if isInstagram {
		source = lead.SourceInstagram
		platform = "Instagram"
	}
	if name == "" {
		name = platform + " user " + senderID
	}

	create := s.client.Lead.Create().
		SetName(name).
		SetSource(source)
	if isInstagram {
		create.SetInstagramID(senderID)
	} else {
		create.SetFacebookID(senderID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent delivery created the same contact. Use it.
			predicate := lead.FacebookID(senderID)
			if isInstagram {
				predicate = lead.InstagramID(senderID)
			}
			return s.client.Lead.Query().Where(predicate).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create lead from DM: %w", err)
	}

	s.leads.InvalidateStats(ctx)
	log.Printf("✅ Created lead %d from %s DM sender %s", created.ID, platform, senderID)
	return created, nil
}
