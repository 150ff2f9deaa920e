package sweep

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jfmartinez/leadpilot/ent"
	entactivity "github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
)

// followupAge is how stale a contact must be before the scheduled job sends
// a follow-up.
const followupAge = 48 * time.Hour

// maxMessagesPerLead bounds the mailbox query per candidate.
const maxMessagesPerLead = 5

// Mailbox is the slice of the mailbox client the sweeps depend on.
type Mailbox interface {
	ListMessages(ctx context.Context, query string, maxResults int) ([]mailbox.Message, error)
	SendMessage(ctx context.Context, req mailbox.SendRequest) (*mailbox.Message, error)
	EnsureFreshToken(ctx context.Context) error
}

// Service reconciles lead stages against the connected mailbox: leads we
// contacted who have since replied get advanced to interested; the scheduled
// variant also sends follow-ups to leads who stayed silent.
type Service struct {
	client    *ent.Client
	lifecycle *lifecycle.Service
	mailbox   Mailbox
}

// NewService creates a new sweep service.
func NewService(client *ent.Client, lifecycleService *lifecycle.Service, mb Mailbox) *Service {
	return &Service{
		client:    client,
		lifecycle: lifecycleService,
		mailbox:   mb,
	}
}

// Report says what a sweep did. Failed counts leads whose mailbox query
// errored; they were neither advanced nor judged unresponsive.
type Report struct {
	Considered  int
	Advanced    int
	Failed      int
	AdvancedIDs []int
}

// FollowupReport extends Report with the follow-ups sent.
type FollowupReport struct {
	Considered  int
	Advanced    int
	FollowedUp  int
	Failed      int
	AdvancedIDs []int
}

// CheckResponses sweeps candidate leads (stage contacted_1, not archived,
// contacted at least once) and advances every lead whose mailbox shows a
// message from their address newer than last_contacted. Pass onlyLeadID > 0
// to narrow the sweep to one lead. Per-lead mailbox failures are skipped and
// counted, never aborting the batch.
func (s *Service) CheckResponses(ctx context.Context, onlyLeadID int) (*Report, error) {
	candidates, err := s.candidates(ctx, onlyLeadID, time.Time{})
	if err != nil {
		return nil, err
	}

	report := &Report{Considered: len(candidates)}
	for _, candidate := range candidates {
		responded, err := s.hasResponded(ctx, candidate)
		if err != nil {
			log.Printf("⚠️  Response check failed for lead %d (%s): %v", candidate.ID, candidate.Email, err)
			report.Failed++
			continue
		}
		if !responded {
			continue
		}

		if err := s.advance(ctx, candidate.ID); err != nil {
			log.Printf("⚠️  Failed to advance lead %d: %v", candidate.ID, err)
			report.Failed++
			continue
		}
		report.Advanced++
		report.AdvancedIDs = append(report.AdvancedIDs, candidate.ID)
	}

	log.Printf("✅ Response sweep: %d considered, %d advanced, %d failed",
		report.Considered, report.Advanced, report.Failed)
	return report, nil
}

// RunFollowups backs the scheduled 6-hour job: candidates whose last contact
// is older than 48h either advanced (they replied) or sent a canned
// follow-up and moved to contacted_2. The shared credential is refreshed up
// front; with no usable credential the whole batch fails before touching any
// lead.
func (s *Service) RunFollowups(ctx context.Context) (*FollowupReport, error) {
	if err := s.mailbox.EnsureFreshToken(ctx); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-followupAge)
	candidates, err := s.candidates(ctx, 0, cutoff)
	if err != nil {
		return nil, err
	}

	report := &FollowupReport{Considered: len(candidates)}
	for _, candidate := range candidates {
		responded, err := s.hasResponded(ctx, candidate)
		if err != nil {
			log.Printf("⚠️  Response check failed for lead %d (%s): %v", candidate.ID, candidate.Email, err)
			report.Failed++
			continue
		}

		if responded {
			if err := s.advance(ctx, candidate.ID); err != nil {
				log.Printf("⚠️  Failed to advance lead %d: %v", candidate.ID, err)
				report.Failed++
				continue
			}
			report.Advanced++
			report.AdvancedIDs = append(report.AdvancedIDs, candidate.ID)
			continue
		}

		if err := s.sendFollowup(ctx, candidate); err != nil {
			log.Printf("⚠️  Follow-up failed for lead %d (%s): %v", candidate.ID, candidate.Email, err)
			report.Failed++
			continue
		}
		report.FollowedUp++
	}

	log.Printf("✅ Follow-up batch: %d considered, %d advanced, %d followed up, %d failed",
		report.Considered, report.Advanced, report.FollowedUp, report.Failed)
	return report, nil
}

// candidates selects sweepable leads: contacted_1, not archived, contacted
// at least once, optionally older than cutoff and/or narrowed to one id.
func (s *Service) candidates(ctx context.Context, onlyLeadID int, cutoff time.Time) ([]*ent.Lead, error) {
	query := s.client.Lead.Query().
		Where(
			lead.StageEQ(lead.StageContacted1),
			lead.Archived(false),
			lead.LastContactedNotNil(),
			lead.EmailNEQ(""),
		)
	if onlyLeadID > 0 {
		query = query.Where(lead.ID(onlyLeadID))
	}
	if !cutoff.IsZero() {
		query = query.Where(lead.LastContactedLT(cutoff))
	}

	candidates, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select sweep candidates: %w", err)
	}
	return candidates, nil
}

// hasResponded checks the mailbox for a message from the lead strictly newer
// than last_contacted.
func (s *Service) hasResponded(ctx context.Context, candidate *ent.Lead) (bool, error) {
	messages, err := s.mailbox.ListMessages(ctx, "from:"+candidate.Email, maxMessagesPerLead)
	if err != nil {
		return false, err
	}

	for _, msg := range messages {
		if msg.Date.After(*candidate.LastContacted) {
			return true, nil
		}
	}
	return false, nil
}

// advance moves a lead to interested through the lifecycle policy. The
// policy unarchives and clears converted_at; last_contacted stays untouched.
func (s *Service) advance(ctx context.Context, leadID int) error {
	stage := lifecycle.StageInterested
	_, err := s.lifecycle.Apply(ctx, leadID, lifecycle.Changes{Stage: &stage})
	return err
}

// sendFollowup sends the canned follow-up and moves the lead to contacted_2
// with a fresh last_contacted.
func (s *Service) sendFollowup(ctx context.Context, candidate *ent.Lead) error {
	subject, body := followupEmail(candidate)
	if _, err := s.mailbox.SendMessage(ctx, mailbox.SendRequest{
		To:      candidate.Email,
		Subject: subject,
		Body:    body,
	}); err != nil {
		return err
	}

	now := time.Now()
	stage := lifecycle.StageContacted2
	if _, err := s.lifecycle.Apply(ctx, candidate.ID, lifecycle.Changes{
		Stage:         &stage,
		LastContacted: &now,
	}); err != nil {
		return err
	}

	_, err := s.client.Activity.Create().
		SetLeadID(candidate.ID).
		SetKind(entactivity.KindEmailOut).
		SetBody("Automatic follow-up sent: " + subject).
		Save(ctx)
	if err != nil {
		// The follow-up itself succeeded; a missing log line is not worth
		// failing the lead over.
		log.Printf("⚠️  Failed to record follow-up activity for lead %d: %v", candidate.ID, err)
	}
	return nil
}

func followupEmail(candidate *ent.Lead) (subject, body string) {
	subject = "Quick follow-up"
	body = fmt.Sprintf(`Hi %s,

Just checking in on my previous note. I know things get busy, so if you'd like to take a look together I'm happy to find a time that works for you.

Best regards`, firstName(candidate.Name))
	return subject, body
}

func firstName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
}
