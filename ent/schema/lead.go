package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Contact or business name"),
		field.String("email").
			Optional().
			Comment("Contact email, stored lowercase; empty for DM-only contacts"),
		field.String("company").
			Optional().
			Comment("Company name"),
		field.String("phone").
			Optional().
			Comment("Phone number, normalized to E.164 when possible"),
		field.Enum("stage").
			Values(
				"contacted_1", "contacted_2", "called", "on_hold",
				"interested", "onboarding_sent", "converted",
				"not_interested", "no_response", "not_qualified",
			).
			Default("contacted_1").
			Comment("Pipeline stage"),
		field.Enum("source").
			Values(
				"website", "linkedin", "referral", "email",
				"instagram", "meta_ads", "google_ads", "other",
			).
			Default("other").
			Comment("Where the lead came from"),
		field.String("owner").
			Optional().
			Comment("Assigned sales owner"),
		field.Int("conversion_probability").
			Default(50).
			Min(0).
			Max(100).
			Comment("Estimated conversion probability (0-100)"),
		field.Float("revenue").
			Optional().
			Nillable().
			Comment("Expected or realized revenue"),
		field.Text("notes").
			Optional().
			Comment("Free-form notes"),
		field.Bool("archived").
			Default(false).
			Comment("Hidden from default pipeline view; derived from stage unless overridden"),
		field.Time("last_contacted").
			Optional().
			Nillable().
			Comment("When we last reached out to this lead"),
		field.Time("converted_at").
			Optional().
			Nillable().
			Comment("Set iff stage == converted"),
		field.String("meta_lead_id").
			Optional().
			Comment("Meta Lead Ads leadgen ID"),
		field.String("instagram_id").
			Optional().
			Comment("Instagram-scoped user ID"),
		field.String("facebook_id").
			Optional().
			Comment("Messenger page-scoped user ID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("activities", Activity.Type).
			Comment("Append-only activity log for this lead"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// Sweep candidate selection
		index.Fields("stage", "archived"),
		index.Fields("email"),

		// Ingestion dedup: uniqueness enforced at the storage layer so a
		// constraint violation is the already-exists signal.
		index.Fields("meta_lead_id").Unique(),
		index.Fields("instagram_id").Unique(),
		index.Fields("facebook_id").Unique(),

		index.Fields("created_at"),
	}
}
