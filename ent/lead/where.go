// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jfmartinez/leadpilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldOwner, v))
}

// ConversionProbability applies equality check predicate on the "conversion_probability" field. It's identical to ConversionProbabilityEQ.
func ConversionProbability(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConversionProbability, v))
}

// Revenue applies equality check predicate on the "revenue" field. It's identical to RevenueEQ.
func Revenue(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldRevenue, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNotes, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldArchived, v))
}

// LastContacted applies equality check predicate on the "last_contacted" field. It's identical to LastContactedEQ.
func LastContacted(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastContacted, v))
}

// ConvertedAt applies equality check predicate on the "converted_at" field. It's identical to ConvertedAtEQ.
func ConvertedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConvertedAt, v))
}

// MetaLeadID applies equality check predicate on the "meta_lead_id" field. It's identical to MetaLeadIDEQ.
func MetaLeadID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldMetaLeadID, v))
}

// InstagramID applies equality check predicate on the "instagram_id" field. It's identical to InstagramIDEQ.
func InstagramID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldInstagramID, v))
}

// FacebookID applies equality check predicate on the "facebook_id" field. It's identical to FacebookIDEQ.
func FacebookID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFacebookID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompany, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldPhone, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldStage, vs...))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSource, vs...))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldOwner, v))
}

// ConversionProbabilityEQ applies the EQ predicate on the "conversion_probability" field.
func ConversionProbabilityEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConversionProbability, v))
}

// ConversionProbabilityNEQ applies the NEQ predicate on the "conversion_probability" field.
func ConversionProbabilityNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldConversionProbability, v))
}

// ConversionProbabilityIn applies the In predicate on the "conversion_probability" field.
func ConversionProbabilityIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldConversionProbability, vs...))
}

// ConversionProbabilityNotIn applies the NotIn predicate on the "conversion_probability" field.
func ConversionProbabilityNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldConversionProbability, vs...))
}

// ConversionProbabilityGT applies the GT predicate on the "conversion_probability" field.
func ConversionProbabilityGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldConversionProbability, v))
}

// ConversionProbabilityGTE applies the GTE predicate on the "conversion_probability" field.
func ConversionProbabilityGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldConversionProbability, v))
}

// ConversionProbabilityLT applies the LT predicate on the "conversion_probability" field.
func ConversionProbabilityLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldConversionProbability, v))
}

// ConversionProbabilityLTE applies the LTE predicate on the "conversion_probability" field.
func ConversionProbabilityLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldConversionProbability, v))
}

// RevenueEQ applies the EQ predicate on the "revenue" field.
func RevenueEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldRevenue, v))
}

// RevenueNEQ applies the NEQ predicate on the "revenue" field.
func RevenueNEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldRevenue, v))
}

// RevenueIn applies the In predicate on the "revenue" field.
func RevenueIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldRevenue, vs...))
}

// RevenueNotIn applies the NotIn predicate on the "revenue" field.
func RevenueNotIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldRevenue, vs...))
}

// RevenueGT applies the GT predicate on the "revenue" field.
func RevenueGT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldRevenue, v))
}

// RevenueGTE applies the GTE predicate on the "revenue" field.
func RevenueGTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldRevenue, v))
}

// RevenueLT applies the LT predicate on the "revenue" field.
func RevenueLT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldRevenue, v))
}

// RevenueLTE applies the LTE predicate on the "revenue" field.
func RevenueLTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldRevenue, v))
}

// RevenueIsNil applies the IsNil predicate on the "revenue" field.
func RevenueIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldRevenue))
}

// RevenueNotNil applies the NotNil predicate on the "revenue" field.
func RevenueNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldRevenue))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldNotes, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldArchived, v))
}

// LastContactedEQ applies the EQ predicate on the "last_contacted" field.
func LastContactedEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastContacted, v))
}

// LastContactedNEQ applies the NEQ predicate on the "last_contacted" field.
func LastContactedNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLastContacted, v))
}

// LastContactedIn applies the In predicate on the "last_contacted" field.
func LastContactedIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLastContacted, vs...))
}

// LastContactedNotIn applies the NotIn predicate on the "last_contacted" field.
func LastContactedNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLastContacted, vs...))
}

// LastContactedGT applies the GT predicate on the "last_contacted" field.
func LastContactedGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLastContacted, v))
}

// LastContactedGTE applies the GTE predicate on the "last_contacted" field.
func LastContactedGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLastContacted, v))
}

// LastContactedLT applies the LT predicate on the "last_contacted" field.
func LastContactedLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLastContacted, v))
}

// LastContactedLTE applies the LTE predicate on the "last_contacted" field.
func LastContactedLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLastContacted, v))
}

// LastContactedIsNil applies the IsNil predicate on the "last_contacted" field.
func LastContactedIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldLastContacted))
}

// LastContactedNotNil applies the NotNil predicate on the "last_contacted" field.
func LastContactedNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldLastContacted))
}

// ConvertedAtEQ applies the EQ predicate on the "converted_at" field.
func ConvertedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConvertedAt, v))
}

// ConvertedAtNEQ applies the NEQ predicate on the "converted_at" field.
func ConvertedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldConvertedAt, v))
}

// ConvertedAtIn applies the In predicate on the "converted_at" field.
func ConvertedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldConvertedAt, vs...))
}

// ConvertedAtNotIn applies the NotIn predicate on the "converted_at" field.
func ConvertedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldConvertedAt, vs...))
}

// ConvertedAtGT applies the GT predicate on the "converted_at" field.
func ConvertedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldConvertedAt, v))
}

// ConvertedAtGTE applies the GTE predicate on the "converted_at" field.
func ConvertedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldConvertedAt, v))
}

// ConvertedAtLT applies the LT predicate on the "converted_at" field.
func ConvertedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldConvertedAt, v))
}

// ConvertedAtLTE applies the LTE predicate on the "converted_at" field.
func ConvertedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldConvertedAt, v))
}

// ConvertedAtIsNil applies the IsNil predicate on the "converted_at" field.
func ConvertedAtIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldConvertedAt))
}

// ConvertedAtNotNil applies the NotNil predicate on the "converted_at" field.
func ConvertedAtNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldConvertedAt))
}

// MetaLeadIDEQ applies the EQ predicate on the "meta_lead_id" field.
func MetaLeadIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldMetaLeadID, v))
}

// MetaLeadIDNEQ applies the NEQ predicate on the "meta_lead_id" field.
func MetaLeadIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldMetaLeadID, v))
}

// MetaLeadIDIn applies the In predicate on the "meta_lead_id" field.
func MetaLeadIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldMetaLeadID, vs...))
}

// MetaLeadIDNotIn applies the NotIn predicate on the "meta_lead_id" field.
func MetaLeadIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldMetaLeadID, vs...))
}

// MetaLeadIDGT applies the GT predicate on the "meta_lead_id" field.
func MetaLeadIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldMetaLeadID, v))
}

// MetaLeadIDGTE applies the GTE predicate on the "meta_lead_id" field.
func MetaLeadIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldMetaLeadID, v))
}

// MetaLeadIDLT applies the LT predicate on the "meta_lead_id" field.
func MetaLeadIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldMetaLeadID, v))
}

// MetaLeadIDLTE applies the LTE predicate on the "meta_lead_id" field.
func MetaLeadIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldMetaLeadID, v))
}

// MetaLeadIDContains applies the Contains predicate on the "meta_lead_id" field.
func MetaLeadIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldMetaLeadID, v))
}

// MetaLeadIDHasPrefix applies the HasPrefix predicate on the "meta_lead_id" field.
func MetaLeadIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldMetaLeadID, v))
}

// MetaLeadIDHasSuffix applies the HasSuffix predicate on the "meta_lead_id" field.
func MetaLeadIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldMetaLeadID, v))
}

// MetaLeadIDIsNil applies the IsNil predicate on the "meta_lead_id" field.
func MetaLeadIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldMetaLeadID))
}

// MetaLeadIDNotNil applies the NotNil predicate on the "meta_lead_id" field.
func MetaLeadIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldMetaLeadID))
}

// MetaLeadIDEqualFold applies the EqualFold predicate on the "meta_lead_id" field.
func MetaLeadIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldMetaLeadID, v))
}

// MetaLeadIDContainsFold applies the ContainsFold predicate on the "meta_lead_id" field.
func MetaLeadIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldMetaLeadID, v))
}

// InstagramIDEQ applies the EQ predicate on the "instagram_id" field.
func InstagramIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldInstagramID, v))
}

// InstagramIDNEQ applies the NEQ predicate on the "instagram_id" field.
func InstagramIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldInstagramID, v))
}

// InstagramIDIn applies the In predicate on the "instagram_id" field.
func InstagramIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldInstagramID, vs...))
}

// InstagramIDNotIn applies the NotIn predicate on the "instagram_id" field.
func InstagramIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldInstagramID, vs...))
}

// InstagramIDGT applies the GT predicate on the "instagram_id" field.
func InstagramIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldInstagramID, v))
}

// InstagramIDGTE applies the GTE predicate on the "instagram_id" field.
func InstagramIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldInstagramID, v))
}

// InstagramIDLT applies the LT predicate on the "instagram_id" field.
func InstagramIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldInstagramID, v))
}

// InstagramIDLTE applies the LTE predicate on the "instagram_id" field.
func InstagramIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldInstagramID, v))
}

// InstagramIDContains applies the Contains predicate on the "instagram_id" field.
func InstagramIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldInstagramID, v))
}

// InstagramIDHasPrefix applies the HasPrefix predicate on the "instagram_id" field.
func InstagramIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldInstagramID, v))
}

// InstagramIDHasSuffix applies the HasSuffix predicate on the "instagram_id" field.
func InstagramIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldInstagramID, v))
}

// InstagramIDIsNil applies the IsNil predicate on the "instagram_id" field.
func InstagramIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldInstagramID))
}

// InstagramIDNotNil applies the NotNil predicate on the "instagram_id" field.
func InstagramIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldInstagramID))
}

// InstagramIDEqualFold applies the EqualFold predicate on the "instagram_id" field.
func InstagramIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldInstagramID, v))
}

// InstagramIDContainsFold applies the ContainsFold predicate on the "instagram_id" field.
func InstagramIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldInstagramID, v))
}

// FacebookIDEQ applies the EQ predicate on the "facebook_id" field.
func FacebookIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFacebookID, v))
}

// FacebookIDNEQ applies the NEQ predicate on the "facebook_id" field.
func FacebookIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFacebookID, v))
}

// FacebookIDIn applies the In predicate on the "facebook_id" field.
func FacebookIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFacebookID, vs...))
}

// FacebookIDNotIn applies the NotIn predicate on the "facebook_id" field.
func FacebookIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFacebookID, vs...))
}

// FacebookIDGT applies the GT predicate on the "facebook_id" field.
func FacebookIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFacebookID, v))
}

// FacebookIDGTE applies the GTE predicate on the "facebook_id" field.
func FacebookIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFacebookID, v))
}

// FacebookIDLT applies the LT predicate on the "facebook_id" field.
func FacebookIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFacebookID, v))
}

// FacebookIDLTE applies the LTE predicate on the "facebook_id" field.
func FacebookIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFacebookID, v))
}

// FacebookIDContains applies the Contains predicate on the "facebook_id" field.
func FacebookIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldFacebookID, v))
}

// FacebookIDHasPrefix applies the HasPrefix predicate on the "facebook_id" field.
func FacebookIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldFacebookID, v))
}

// FacebookIDHasSuffix applies the HasSuffix predicate on the "facebook_id" field.
func FacebookIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldFacebookID, v))
}

// FacebookIDIsNil applies the IsNil predicate on the "facebook_id" field.
func FacebookIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldFacebookID))
}

// FacebookIDNotNil applies the NotNil predicate on the "facebook_id" field.
func FacebookIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldFacebookID))
}

// FacebookIDEqualFold applies the EqualFold predicate on the "facebook_id" field.
func FacebookIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldFacebookID, v))
}

// FacebookIDContainsFold applies the ContainsFold predicate on the "facebook_id" field.
func FacebookIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldFacebookID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasActivities applies the HasEdge predicate on the "activities" edge.
func HasActivities() predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ActivitiesTable, ActivitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasActivitiesWith applies the HasEdge predicate on the "activities" edge with a given conditions (other predicates).
func HasActivitiesWith(preds ...predicate.Activity) predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := newActivitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
