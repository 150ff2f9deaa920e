package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jfmartinez/leadpilot/pkg/email"
	"github.com/jfmartinez/leadpilot/pkg/leads"
	"github.com/jfmartinez/leadpilot/pkg/metrics"
	"github.com/jfmartinez/leadpilot/pkg/models"
	"github.com/jfmartinez/leadpilot/pkg/sweep"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron         *cron.Cron
	sweepService *sweep.Service
	leadService  *leads.Service
	emailService *email.Service
	metrics      *metrics.Metrics
	digestTo     string
	logger       *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(sweepService *sweep.Service, leadService *leads.Service, emailService *email.Service, m *metrics.Metrics, digestTo string, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:         cron.New(),
		sweepService: sweepService,
		leadService:  leadService,
		emailService: emailService,
		metrics:      m,
		digestTo:     digestTo,
		logger:       logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Every 6 hours: response detection plus follow-ups for stale leads
	_, err := cm.cron.AddFunc("0 */6 * * *", func() {
		cm.logger.Println("🕐 Running follow-up batch...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		report, err := cm.sweepService.RunFollowups(ctx)
		if err != nil {
			cm.logger.Printf("❌ Follow-up batch failed: %v", err)
			return
		}

		cm.metrics.RecordSweep(report.Advanced)
		cm.metrics.RecordFollowups(report.FollowedUp)
		cm.logger.Printf("✅ Follow-up batch completed: %d considered, %d advanced, %d followed up, %d failed",
			report.Considered, report.Advanced, report.FollowedUp, report.Failed)
	})
	if err != nil {
		return err
	}

	// Daily at 7 AM: operator digest
	_, err = cm.cron.AddFunc("0 7 * * *", func() {
		if cm.digestTo == "" {
			return
		}
		cm.logger.Println("🕐 Sending daily digest...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		report, err := cm.sweepService.RunFollowups(ctx)
		if err != nil {
			cm.logger.Printf("⚠️ Digest sweep failed, sending stats only: %v", err)
			report = &sweep.FollowupReport{}
		}

		stats, err := cm.leadService.Stats(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed to compute stats for digest: %v", err)
			return
		}

		followup := &models.FollowupResponse{
			Considered:  report.Considered,
			Advanced:    report.Advanced,
			FollowedUp:  report.FollowedUp,
			Failed:      report.Failed,
			AdvancedIDs: report.AdvancedIDs,
		}
		if err := cm.emailService.SendDailyDigest(cm.digestTo, stats, followup); err != nil {
			cm.logger.Printf("❌ Failed to send daily digest: %v", err)
			return
		}

		cm.logger.Println("✅ Daily digest sent")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Every 6 hours: follow-up batch")
	cm.logger.Println("  - Daily at 7 AM: operator digest")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
