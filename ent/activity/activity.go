// Code generated by ent, DO NOT EDIT.

package activity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the activity type in the database.
	Label = "activity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// Table holds the table name of the activity in the database.
	Table = "activities"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "activities"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
)

// Columns holds all SQL columns for activity fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldKind,
	FieldBody,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	LeadIDValidator func(int) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindNote is the default value of the Kind enum.
const DefaultKind = KindNote

// Kind values.
const (
	KindNote             Kind = "note"
	KindInstagramMessage Kind = "instagram_message"
	KindMessengerMessage Kind = "messenger_message"
	KindEmailOut         Kind = "email_out"
	KindStageChange      Kind = "stage_change"
	KindSystem           Kind = "system"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindNote, KindInstagramMessage, KindMessengerMessage, KindEmailOut, KindStageChange, KindSystem:
		return nil
	default:
		return fmt.Errorf("activity: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Activity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
