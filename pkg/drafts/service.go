package drafts

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/pkg/lifecycle"
	"github.com/jfmartinez/leadpilot/pkg/mailbox"
	"github.com/jfmartinez/leadpilot/pkg/settings"
)

const systemPrompt = `You are an assistant writing sales emails for a small business. ` +
	`Write a short, friendly, professional reply in plain text. ` +
	`No subject line, no markdown, no placeholders like [Name]. ` +
	`Sign off with the sender name you are given.`

// LLM is the completion surface drafts require.
type LLM interface {
	Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error)
}

// Threads loads conversation history for context.
type Threads interface {
	GetThread(ctx context.Context, threadID string) ([]mailbox.Message, error)
}

// Service drafts outreach and reply emails with an LLM.
type Service struct {
	client   *ent.Client
	settings *settings.Service
	llm      LLM
	threads  Threads
	fromName string
}

// NewService creates a new draft service.
func NewService(client *ent.Client, settingsService *settings.Service, llm LLM, threads Threads, fromName string) *Service {
	return &Service{
		client:   client,
		settings: settingsService,
		llm:      llm,
		threads:  threads,
		fromName: fromName,
	}
}

// Draft produces an email draft for a lead. When threadID is set, the thread
// history is included so the model writes a reply instead of cold outreach.
func (s *Service) Draft(ctx context.Context, leadID int, threadID, hint string) (string, error) {
	entry, err := s.client.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", lifecycle.ErrNotFound
		}
		return "", fmt.Errorf("failed to load lead: %w", err)
	}

	var b strings.Builder
	b.WriteString("Sender name: " + s.fromName + "\n")
	s.writeBusinessProfile(ctx, &b)

	b.WriteString("\nLead:\n")
	b.WriteString("- Name: " + entry.Name + "\n")
	if entry.Company != "" {
		b.WriteString("- Company: " + entry.Company + "\n")
	}
	b.WriteString("- Pipeline stage: " + string(entry.Stage) + "\n")
	if entry.Notes != "" {
		b.WriteString("- Notes: " + entry.Notes + "\n")
	}

	if threadID != "" && s.threads != nil {
		s.writeThread(ctx, &b, threadID)
	}

	if hint != "" {
		b.WriteString("\nInstructions from the user: " + hint + "\n")
	}

	if threadID != "" {
		b.WriteString("\nWrite a reply to the most recent message in the conversation above.\n")
	} else {
		b.WriteString("\nWrite a first outreach email to this lead.\n")
	}

	return s.llm.Complete(ctx, b.String(), systemPrompt)
}

func (s *Service) writeBusinessProfile(ctx context.Context, b *strings.Builder) {
	profile, _, err := s.settings.Get(ctx, settings.KeyBusinessProfile)
	if err != nil {
		return
	}
	b.WriteString("\nAbout the business:\n")
	for key, value := range profile {
		text, ok := value.(string)
		if !ok || text == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", key, text))
	}
}

const maxThreadMessages = 6

func (s *Service) writeThread(ctx context.Context, b *strings.Builder, threadID string) {
	msgs, err := s.threads.GetThread(ctx, threadID)
	if err != nil {
		// The draft is still useful without history.
		b.WriteString("\n(Conversation history unavailable.)\n")
		return
	}
	if len(msgs) > maxThreadMessages {
		msgs = msgs[len(msgs)-maxThreadMessages:]
	}

	b.WriteString("\nConversation so far:\n")
	for _, msg := range msgs {
		b.WriteString(fmt.Sprintf("From %s:\n%s\n---\n", msg.From, msg.Body))
	}
}
