package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jfmartinez/leadpilot/ent"
	"github.com/jfmartinez/leadpilot/ent/lead"
)

// LeadGeneratorConfig configures lead generation parameters
type LeadGeneratorConfig struct {
	Count         int
	EmailChance   float64 // 0.0-1.0 (probability of having email)
	PhoneChance   float64
	CompanyChance float64
	NotesChance   float64
}

// Stage distribution weights roughly matching a real pipeline: most leads sit
// early, a thin tail converts or drops off.
var stageWeights = []struct {
	stage  lead.Stage
	weight int
}{
	{lead.StageContacted1, 30},
	{lead.StageContacted2, 15},
	{lead.StageCalled, 8},
	{lead.StageOnHold, 5},
	{lead.StageInterested, 12},
	{lead.StageOnboardingSent, 5},
	{lead.StageConverted, 8},
	{lead.StageNotInterested, 7},
	{lead.StageNoResponse, 7},
	{lead.StageNotQualified, 3},
}

var archivedStages = map[lead.Stage]bool{
	lead.StageNotInterested: true,
	lead.StageNoResponse:    true,
	lead.StageNotQualified:  true,
}

var sources = []lead.Source{
	lead.SourceWebsite, lead.SourceLinkedin, lead.SourceReferral,
	lead.SourceEmail, lead.SourceInstagram, lead.SourceMetaAds,
	lead.SourceGoogleAds, lead.SourceOther,
}

func pickStage() lead.Stage {
	total := 0
	for _, entry := range stageWeights {
		total += entry.weight
	}
	n := rand.Intn(total)
	for _, entry := range stageWeights {
		if n < entry.weight {
			return entry.stage
		}
		n -= entry.weight
	}
	return lead.StageContacted1
}

// GenerateLead creates a single lead with realistic data
func GenerateLead(client *ent.Client, config LeadGeneratorConfig) *ent.LeadCreate {
	name := gofakeit.Name()
	stage := pickStage()

	create := client.Lead.Create().
		SetName(name).
		SetStage(stage).
		SetSource(sources[rand.Intn(len(sources))]).
		SetArchived(archivedStages[stage]).
		SetConversionProbability(rand.Intn(101))

	if rand.Float64() < config.EmailChance {
		local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
		create.SetEmail(fmt.Sprintf("%s@%s", local, gofakeit.DomainName()))
	}
	if rand.Float64() < config.PhoneChance {
		create.SetPhone(gofakeit.Phone())
	}
	if rand.Float64() < config.CompanyChance {
		create.SetCompany(gofakeit.Company())
	}
	if rand.Float64() < config.NotesChance {
		create.SetNotes(gofakeit.Sentence(12))
	}

	// Anyone past first outreach has been contacted at some point.
	if stage != lead.StageOnHold {
		daysAgo := rand.Intn(30)
		create.SetLastContacted(time.Now().AddDate(0, 0, -daysAgo))
	}

	if stage == lead.StageConverted {
		create.SetConvertedAt(time.Now().AddDate(0, 0, -rand.Intn(14)))
		create.SetRevenue(float64(rand.Intn(9000) + 1000))
	}

	return create
}

// GenerateLeads creates multiple leads with the given config
func GenerateLeads(client *ent.Client, config LeadGeneratorConfig) []*ent.LeadCreate {
	leads := make([]*ent.LeadCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		leads[i] = GenerateLead(client, config)
	}
	return leads
}

// BulkInsertLeads inserts leads in batches for performance
func BulkInsertLeads(ctx context.Context, client *ent.Client, leads []*ent.LeadCreate, batchSize int) error {
	for i := 0; i < len(leads); i += batchSize {
		end := i + batchSize
		if end > len(leads) {
			end = len(leads)
		}

		batch := leads[i:end]
		if err := client.Lead.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
