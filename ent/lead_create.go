// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *LeadCreate) SetStage(v lead.Stage) *LeadCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStage(v *lead.Stage) *LeadCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v lead.Source) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *lead.Source) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *LeadCreate) SetOwner(v string) *LeadCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *LeadCreate) SetNillableOwner(v *string) *LeadCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetConversionProbability sets the "conversion_probability" field.
func (_c *LeadCreate) SetConversionProbability(v int) *LeadCreate {
	_c.mutation.SetConversionProbability(v)
	return _c
}

// SetNillableConversionProbability sets the "conversion_probability" field if the given value is not nil.
func (_c *LeadCreate) SetNillableConversionProbability(v *int) *LeadCreate {
	if v != nil {
		_c.SetConversionProbability(*v)
	}
	return _c
}

// SetRevenue sets the "revenue" field.
func (_c *LeadCreate) SetRevenue(v float64) *LeadCreate {
	_c.mutation.SetRevenue(v)
	return _c
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_c *LeadCreate) SetNillableRevenue(v *float64) *LeadCreate {
	if v != nil {
		_c.SetRevenue(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LeadCreate) SetNotes(v string) *LeadCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *LeadCreate) SetNillableNotes(v *string) *LeadCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *LeadCreate) SetArchived(v bool) *LeadCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *LeadCreate) SetNillableArchived(v *bool) *LeadCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetLastContacted sets the "last_contacted" field.
func (_c *LeadCreate) SetLastContacted(v time.Time) *LeadCreate {
	_c.mutation.SetLastContacted(v)
	return _c
}

// SetNillableLastContacted sets the "last_contacted" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLastContacted(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetLastContacted(*v)
	}
	return _c
}

// SetConvertedAt sets the "converted_at" field.
func (_c *LeadCreate) SetConvertedAt(v time.Time) *LeadCreate {
	_c.mutation.SetConvertedAt(v)
	return _c
}

// SetNillableConvertedAt sets the "converted_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableConvertedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetConvertedAt(*v)
	}
	return _c
}

// SetMetaLeadID sets the "meta_lead_id" field.
func (_c *LeadCreate) SetMetaLeadID(v string) *LeadCreate {
	_c.mutation.SetMetaLeadID(v)
	return _c
}

// SetNillableMetaLeadID sets the "meta_lead_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableMetaLeadID(v *string) *LeadCreate {
	if v != nil {
		_c.SetMetaLeadID(*v)
	}
	return _c
}

// SetInstagramID sets the "instagram_id" field.
func (_c *LeadCreate) SetInstagramID(v string) *LeadCreate {
	_c.mutation.SetInstagramID(v)
	return _c
}

// SetNillableInstagramID sets the "instagram_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableInstagramID(v *string) *LeadCreate {
	if v != nil {
		_c.SetInstagramID(*v)
	}
	return _c
}

// SetFacebookID sets the "facebook_id" field.
func (_c *LeadCreate) SetFacebookID(v string) *LeadCreate {
	_c.mutation.SetFacebookID(v)
	return _c
}

// SetNillableFacebookID sets the "facebook_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableFacebookID(v *string) *LeadCreate {
	if v != nil {
		_c.SetFacebookID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LeadCreate) SetUpdatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableUpdatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_c *LeadCreate) AddActivityIDs(ids ...int) *LeadCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_c *LeadCreate) AddActivities(v ...*Activity) *LeadCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := lead.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := lead.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.ConversionProbability(); !ok {
		v := lead.DefaultConversionProbability
		_c.mutation.SetConversionProbability(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := lead.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lead.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lead.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Lead.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := lead.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Lead.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Lead.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConversionProbability(); !ok {
		return &ValidationError{Name: "conversion_probability", err: errors.New(`ent: missing required field "Lead.conversion_probability"`)}
	}
	if v, ok := _c.mutation.ConversionProbability(); ok {
		if err := lead.ConversionProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "conversion_probability", err: fmt.Errorf(`ent: validator failed for field "Lead.conversion_probability": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Lead.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Lead.updated_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(lead.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(lead.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.ConversionProbability(); ok {
		_spec.SetField(lead.FieldConversionProbability, field.TypeInt, value)
		_node.ConversionProbability = value
	}
	if value, ok := _c.mutation.Revenue(); ok {
		_spec.SetField(lead.FieldRevenue, field.TypeFloat64, value)
		_node.Revenue = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(lead.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.LastContacted(); ok {
		_spec.SetField(lead.FieldLastContacted, field.TypeTime, value)
		_node.LastContacted = &value
	}
	if value, ok := _c.mutation.ConvertedAt(); ok {
		_spec.SetField(lead.FieldConvertedAt, field.TypeTime, value)
		_node.ConvertedAt = &value
	}
	if value, ok := _c.mutation.MetaLeadID(); ok {
		_spec.SetField(lead.FieldMetaLeadID, field.TypeString, value)
		_node.MetaLeadID = value
	}
	if value, ok := _c.mutation.InstagramID(); ok {
		_spec.SetField(lead.FieldInstagramID, field.TypeString, value)
		_node.InstagramID = value
	}
	if value, ok := _c.mutation.FacebookID(); ok {
		_spec.SetField(lead.FieldFacebookID, field.TypeString, value)
		_node.FacebookID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lead.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
