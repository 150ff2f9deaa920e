// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdate) ClearEmail() *LeadUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdate) SetCompany(v string) *LeadUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompany(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdate) ClearCompany() *LeadUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdate) ClearPhone() *LeadUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetStage sets the "stage" field.
func (_u *LeadUpdate) SetStage(v lead.Stage) *LeadUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStage(v *lead.Stage) *LeadUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v lead.Source) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *lead.Source) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *LeadUpdate) SetOwner(v string) *LeadUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableOwner(v *string) *LeadUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *LeadUpdate) ClearOwner() *LeadUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetConversionProbability sets the "conversion_probability" field.
func (_u *LeadUpdate) SetConversionProbability(v int) *LeadUpdate {
	_u.mutation.ResetConversionProbability()
	_u.mutation.SetConversionProbability(v)
	return _u
}

// SetNillableConversionProbability sets the "conversion_probability" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConversionProbability(v *int) *LeadUpdate {
	if v != nil {
		_u.SetConversionProbability(*v)
	}
	return _u
}

// AddConversionProbability adds value to the "conversion_probability" field.
func (_u *LeadUpdate) AddConversionProbability(v int) *LeadUpdate {
	_u.mutation.AddConversionProbability(v)
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *LeadUpdate) SetRevenue(v float64) *LeadUpdate {
	_u.mutation.ResetRevenue()
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableRevenue(v *float64) *LeadUpdate {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// AddRevenue adds value to the "revenue" field.
func (_u *LeadUpdate) AddRevenue(v float64) *LeadUpdate {
	_u.mutation.AddRevenue(v)
	return _u
}

// ClearRevenue clears the value of the "revenue" field.
func (_u *LeadUpdate) ClearRevenue() *LeadUpdate {
	_u.mutation.ClearRevenue()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdate) SetNotes(v string) *LeadUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableNotes(v *string) *LeadUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdate) ClearNotes() *LeadUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *LeadUpdate) SetArchived(v bool) *LeadUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableArchived(v *bool) *LeadUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetLastContacted sets the "last_contacted" field.
func (_u *LeadUpdate) SetLastContacted(v time.Time) *LeadUpdate {
	_u.mutation.SetLastContacted(v)
	return _u
}

// SetNillableLastContacted sets the "last_contacted" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastContacted(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetLastContacted(*v)
	}
	return _u
}

// ClearLastContacted clears the value of the "last_contacted" field.
func (_u *LeadUpdate) ClearLastContacted() *LeadUpdate {
	_u.mutation.ClearLastContacted()
	return _u
}

// SetConvertedAt sets the "converted_at" field.
func (_u *LeadUpdate) SetConvertedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetConvertedAt(v)
	return _u
}

// SetNillableConvertedAt sets the "converted_at" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableConvertedAt(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetConvertedAt(*v)
	}
	return _u
}

// ClearConvertedAt clears the value of the "converted_at" field.
func (_u *LeadUpdate) ClearConvertedAt() *LeadUpdate {
	_u.mutation.ClearConvertedAt()
	return _u
}

// SetMetaLeadID sets the "meta_lead_id" field.
func (_u *LeadUpdate) SetMetaLeadID(v string) *LeadUpdate {
	_u.mutation.SetMetaLeadID(v)
	return _u
}

// SetNillableMetaLeadID sets the "meta_lead_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableMetaLeadID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetMetaLeadID(*v)
	}
	return _u
}

// ClearMetaLeadID clears the value of the "meta_lead_id" field.
func (_u *LeadUpdate) ClearMetaLeadID() *LeadUpdate {
	_u.mutation.ClearMetaLeadID()
	return _u
}

// SetInstagramID sets the "instagram_id" field.
func (_u *LeadUpdate) SetInstagramID(v string) *LeadUpdate {
	_u.mutation.SetInstagramID(v)
	return _u
}

// SetNillableInstagramID sets the "instagram_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableInstagramID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetInstagramID(*v)
	}
	return _u
}

// ClearInstagramID clears the value of the "instagram_id" field.
func (_u *LeadUpdate) ClearInstagramID() *LeadUpdate {
	_u.mutation.ClearInstagramID()
	return _u
}

// SetFacebookID sets the "facebook_id" field.
func (_u *LeadUpdate) SetFacebookID(v string) *LeadUpdate {
	_u.mutation.SetFacebookID(v)
	return _u
}

// SetNillableFacebookID sets the "facebook_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableFacebookID(v *string) *LeadUpdate {
	if v != nil {
		_u.SetFacebookID(*v)
	}
	return _u
}

// ClearFacebookID clears the value of the "facebook_id" field.
func (_u *LeadUpdate) ClearFacebookID() *LeadUpdate {
	_u.mutation.ClearFacebookID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdate) SetUpdatedAt(v time.Time) *LeadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *LeadUpdate) AddActivityIDs(ids ...int) *LeadUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *LeadUpdate) AddActivities(v ...*Activity) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *LeadUpdate) ClearActivities() *LeadUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *LeadUpdate) RemoveActivityIDs(ids ...int) *LeadUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *LeadUpdate) RemoveActivities(v ...*Activity) *LeadUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConversionProbability(); ok {
		if err := lead.ConversionProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "conversion_probability", err: fmt.Errorf(`ent: validator failed for field "Lead.conversion_probability": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(lead.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(lead.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.ConversionProbability(); ok {
		_spec.SetField(lead.FieldConversionProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversionProbability(); ok {
		_spec.AddField(lead.FieldConversionProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(lead.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenue(); ok {
		_spec.AddField(lead.FieldRevenue, field.TypeFloat64, value)
	}
	if _u.mutation.RevenueCleared() {
		_spec.ClearField(lead.FieldRevenue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(lead.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastContacted(); ok {
		_spec.SetField(lead.FieldLastContacted, field.TypeTime, value)
	}
	if _u.mutation.LastContactedCleared() {
		_spec.ClearField(lead.FieldLastContacted, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedAt(); ok {
		_spec.SetField(lead.FieldConvertedAt, field.TypeTime, value)
	}
	if _u.mutation.ConvertedAtCleared() {
		_spec.ClearField(lead.FieldConvertedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MetaLeadID(); ok {
		_spec.SetField(lead.FieldMetaLeadID, field.TypeString, value)
	}
	if _u.mutation.MetaLeadIDCleared() {
		_spec.ClearField(lead.FieldMetaLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.InstagramID(); ok {
		_spec.SetField(lead.FieldInstagramID, field.TypeString, value)
	}
	if _u.mutation.InstagramIDCleared() {
		_spec.ClearField(lead.FieldInstagramID, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookID(); ok {
		_spec.SetField(lead.FieldFacebookID, field.TypeString, value)
	}
	if _u.mutation.FacebookIDCleared() {
		_spec.ClearField(lead.FieldFacebookID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *LeadUpdateOne) ClearEmail() *LeadUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdateOne) SetCompany(v string) *LeadUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompany(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *LeadUpdateOne) ClearCompany() *LeadUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *LeadUpdateOne) ClearPhone() *LeadUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetStage sets the "stage" field.
func (_u *LeadUpdateOne) SetStage(v lead.Stage) *LeadUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStage(v *lead.Stage) *LeadUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v lead.Source) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *lead.Source) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *LeadUpdateOne) SetOwner(v string) *LeadUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableOwner(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *LeadUpdateOne) ClearOwner() *LeadUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetConversionProbability sets the "conversion_probability" field.
func (_u *LeadUpdateOne) SetConversionProbability(v int) *LeadUpdateOne {
	_u.mutation.ResetConversionProbability()
	_u.mutation.SetConversionProbability(v)
	return _u
}

// SetNillableConversionProbability sets the "conversion_probability" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConversionProbability(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetConversionProbability(*v)
	}
	return _u
}

// AddConversionProbability adds value to the "conversion_probability" field.
func (_u *LeadUpdateOne) AddConversionProbability(v int) *LeadUpdateOne {
	_u.mutation.AddConversionProbability(v)
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *LeadUpdateOne) SetRevenue(v float64) *LeadUpdateOne {
	_u.mutation.ResetRevenue()
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableRevenue(v *float64) *LeadUpdateOne {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// AddRevenue adds value to the "revenue" field.
func (_u *LeadUpdateOne) AddRevenue(v float64) *LeadUpdateOne {
	_u.mutation.AddRevenue(v)
	return _u
}

// ClearRevenue clears the value of the "revenue" field.
func (_u *LeadUpdateOne) ClearRevenue() *LeadUpdateOne {
	_u.mutation.ClearRevenue()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdateOne) SetNotes(v string) *LeadUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableNotes(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LeadUpdateOne) ClearNotes() *LeadUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *LeadUpdateOne) SetArchived(v bool) *LeadUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableArchived(v *bool) *LeadUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetLastContacted sets the "last_contacted" field.
func (_u *LeadUpdateOne) SetLastContacted(v time.Time) *LeadUpdateOne {
	_u.mutation.SetLastContacted(v)
	return _u
}

// SetNillableLastContacted sets the "last_contacted" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastContacted(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetLastContacted(*v)
	}
	return _u
}

// ClearLastContacted clears the value of the "last_contacted" field.
func (_u *LeadUpdateOne) ClearLastContacted() *LeadUpdateOne {
	_u.mutation.ClearLastContacted()
	return _u
}

// SetConvertedAt sets the "converted_at" field.
func (_u *LeadUpdateOne) SetConvertedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetConvertedAt(v)
	return _u
}

// SetNillableConvertedAt sets the "converted_at" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableConvertedAt(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetConvertedAt(*v)
	}
	return _u
}

// ClearConvertedAt clears the value of the "converted_at" field.
func (_u *LeadUpdateOne) ClearConvertedAt() *LeadUpdateOne {
	_u.mutation.ClearConvertedAt()
	return _u
}

// SetMetaLeadID sets the "meta_lead_id" field.
func (_u *LeadUpdateOne) SetMetaLeadID(v string) *LeadUpdateOne {
	_u.mutation.SetMetaLeadID(v)
	return _u
}

// SetNillableMetaLeadID sets the "meta_lead_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableMetaLeadID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetMetaLeadID(*v)
	}
	return _u
}

// ClearMetaLeadID clears the value of the "meta_lead_id" field.
func (_u *LeadUpdateOne) ClearMetaLeadID() *LeadUpdateOne {
	_u.mutation.ClearMetaLeadID()
	return _u
}

// SetInstagramID sets the "instagram_id" field.
func (_u *LeadUpdateOne) SetInstagramID(v string) *LeadUpdateOne {
	_u.mutation.SetInstagramID(v)
	return _u
}

// SetNillableInstagramID sets the "instagram_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableInstagramID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetInstagramID(*v)
	}
	return _u
}

// ClearInstagramID clears the value of the "instagram_id" field.
func (_u *LeadUpdateOne) ClearInstagramID() *LeadUpdateOne {
	_u.mutation.ClearInstagramID()
	return _u
}

// SetFacebookID sets the "facebook_id" field.
func (_u *LeadUpdateOne) SetFacebookID(v string) *LeadUpdateOne {
	_u.mutation.SetFacebookID(v)
	return _u
}

// SetNillableFacebookID sets the "facebook_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableFacebookID(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetFacebookID(*v)
	}
	return _u
}

// ClearFacebookID clears the value of the "facebook_id" field.
func (_u *LeadUpdateOne) ClearFacebookID() *LeadUpdateOne {
	_u.mutation.ClearFacebookID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LeadUpdateOne) SetUpdatedAt(v time.Time) *LeadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *LeadUpdateOne) AddActivityIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *LeadUpdateOne) AddActivities(v ...*Activity) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *LeadUpdateOne) ClearActivities() *LeadUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *LeadUpdateOne) RemoveActivityIDs(ids ...int) *LeadUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *LeadUpdateOne) RemoveActivities(v ...*Activity) *LeadUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LeadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lead.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConversionProbability(); ok {
		if err := lead.ConversionProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "conversion_probability", err: fmt.Errorf(`ent: validator failed for field "Lead.conversion_probability": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(lead.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(lead.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(lead.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(lead.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(lead.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.ConversionProbability(); ok {
		_spec.SetField(lead.FieldConversionProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversionProbability(); ok {
		_spec.AddField(lead.FieldConversionProbability, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(lead.FieldRevenue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRevenue(); ok {
		_spec.AddField(lead.FieldRevenue, field.TypeFloat64, value)
	}
	if _u.mutation.RevenueCleared() {
		_spec.ClearField(lead.FieldRevenue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(lead.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(lead.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastContacted(); ok {
		_spec.SetField(lead.FieldLastContacted, field.TypeTime, value)
	}
	if _u.mutation.LastContactedCleared() {
		_spec.ClearField(lead.FieldLastContacted, field.TypeTime)
	}
	if value, ok := _u.mutation.ConvertedAt(); ok {
		_spec.SetField(lead.FieldConvertedAt, field.TypeTime, value)
	}
	if _u.mutation.ConvertedAtCleared() {
		_spec.ClearField(lead.FieldConvertedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MetaLeadID(); ok {
		_spec.SetField(lead.FieldMetaLeadID, field.TypeString, value)
	}
	if _u.mutation.MetaLeadIDCleared() {
		_spec.ClearField(lead.FieldMetaLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.InstagramID(); ok {
		_spec.SetField(lead.FieldInstagramID, field.TypeString, value)
	}
	if _u.mutation.InstagramIDCleared() {
		_spec.ClearField(lead.FieldInstagramID, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookID(); ok {
		_spec.SetField(lead.FieldFacebookID, field.TypeString, value)
	}
	if _u.mutation.FacebookIDCleared() {
		_spec.ClearField(lead.FieldFacebookID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lead.ActivitiesTable,
			Columns: []string{lead.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
