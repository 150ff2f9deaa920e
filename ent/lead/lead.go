// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldConversionProbability holds the string denoting the conversion_probability field in the database.
	FieldConversionProbability = "conversion_probability"
	// FieldRevenue holds the string denoting the revenue field in the database.
	FieldRevenue = "revenue"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// FieldLastContacted holds the string denoting the last_contacted field in the database.
	FieldLastContacted = "last_contacted"
	// FieldConvertedAt holds the string denoting the converted_at field in the database.
	FieldConvertedAt = "converted_at"
	// FieldMetaLeadID holds the string denoting the meta_lead_id field in the database.
	FieldMetaLeadID = "meta_lead_id"
	// FieldInstagramID holds the string denoting the instagram_id field in the database.
	FieldInstagramID = "instagram_id"
	// FieldFacebookID holds the string denoting the facebook_id field in the database.
	FieldFacebookID = "facebook_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeActivities holds the string denoting the activities edge name in mutations.
	EdgeActivities = "activities"
	// Table holds the table name of the lead in the database.
	Table = "leads"
	// ActivitiesTable is the table that holds the activities relation/edge.
	ActivitiesTable = "activities"
	// ActivitiesInverseTable is the table name for the Activity entity.
	// It exists in this package in order to avoid circular dependency with the "activity" package.
	ActivitiesInverseTable = "activities"
	// ActivitiesColumn is the table column denoting the activities relation/edge.
	ActivitiesColumn = "lead_id"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldCompany,
	FieldPhone,
	FieldStage,
	FieldSource,
	FieldOwner,
	FieldConversionProbability,
	FieldRevenue,
	FieldNotes,
	FieldArchived,
	FieldLastContacted,
	FieldConvertedAt,
	FieldMetaLeadID,
	FieldInstagramID,
	FieldFacebookID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultConversionProbability holds the default value on creation for the "conversion_probability" field.
	DefaultConversionProbability int
	// ConversionProbabilityValidator is a validator for the "conversion_probability" field. It is called by the builders before save.
	ConversionProbabilityValidator func(int) error
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Stage defines the type for the "stage" enum field.
type Stage string

// StageContacted1 is the default value of the Stage enum.
const DefaultStage = StageContacted1

// Stage values.
const (
	StageContacted1     Stage = "contacted_1"
	StageContacted2     Stage = "contacted_2"
	StageCalled         Stage = "called"
	StageOnHold         Stage = "on_hold"
	StageInterested     Stage = "interested"
	StageOnboardingSent Stage = "onboarding_sent"
	StageConverted      Stage = "converted"
	StageNotInterested  Stage = "not_interested"
	StageNoResponse     Stage = "no_response"
	StageNotQualified   Stage = "not_qualified"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageContacted1, StageContacted2, StageCalled, StageOnHold, StageInterested, StageOnboardingSent, StageConverted, StageNotInterested, StageNoResponse, StageNotQualified:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for stage field: %q", s)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceOther is the default value of the Source enum.
const DefaultSource = SourceOther

// Source values.
const (
	SourceWebsite   Source = "website"
	SourceLinkedin  Source = "linkedin"
	SourceReferral  Source = "referral"
	SourceEmail     Source = "email"
	SourceInstagram Source = "instagram"
	SourceMetaAds   Source = "meta_ads"
	SourceGoogleAds Source = "google_ads"
	SourceOther     Source = "other"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceWebsite, SourceLinkedin, SourceReferral, SourceEmail, SourceInstagram, SourceMetaAds, SourceGoogleAds, SourceOther:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByConversionProbability orders the results by the conversion_probability field.
func ByConversionProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversionProbability, opts...).ToFunc()
}

// ByRevenue orders the results by the revenue field.
func ByRevenue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenue, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}

// ByLastContacted orders the results by the last_contacted field.
func ByLastContacted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastContacted, opts...).ToFunc()
}

// ByConvertedAt orders the results by the converted_at field.
func ByConvertedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvertedAt, opts...).ToFunc()
}

// ByMetaLeadID orders the results by the meta_lead_id field.
func ByMetaLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaLeadID, opts...).ToFunc()
}

// ByInstagramID orders the results by the instagram_id field.
func ByInstagramID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstagramID, opts...).ToFunc()
}

// ByFacebookID orders the results by the facebook_id field.
func ByFacebookID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebookID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByActivitiesCount orders the results by activities count.
func ByActivitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newActivitiesStep(), opts...)
	}
}

// ByActivities orders the results by activities terms.
func ByActivities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newActivitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newActivitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ActivitiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
	)
}
