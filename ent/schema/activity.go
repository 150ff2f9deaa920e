package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// Activities are append-only; they are never updated or deleted on their own.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("ID of the lead this activity belongs to"),
		field.Enum("kind").
			Values(
				"note", "instagram_message", "messenger_message",
				"email_out", "stage_change", "system",
			).
			Default("note").
			Comment("What kind of event this records"),
		field.Text("body").
			NotEmpty().
			Comment("Human-readable description or message text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the event was observed"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("activities").
			Field("lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at"),
	}
}
