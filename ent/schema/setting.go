package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Setting holds the schema definition for the Setting entity: a generic
// key/value row shared by all request handlers and the cron jobs. The
// version counter guards refresh races on the gmail_tokens row: writers
// update WHERE version == expected and lose cleanly when another writer
// got there first.
type Setting struct {
	ent.Schema
}

// Fields of the Setting.
func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Comment("Setting key, e.g. gmail_tokens, business_profile"),
		field.JSON("value", map[string]interface{}{}).
			Comment("Setting payload"),
		field.Int("version").
			Default(1).
			Comment("Monotonic update counter for compare-and-swap writes"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write timestamp"),
	}
}

// Indexes of the Setting.
func (Setting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
