// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jfmartinez/leadpilot/ent/activity"
	"github.com/jfmartinez/leadpilot/ent/lead"
	"github.com/jfmartinez/leadpilot/ent/predicate"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ActivityUpdate) SetLeadID(v int) *ActivityUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableLeadID(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityUpdate) SetKind(v activity.Kind) *ActivityUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableKind(v *activity.Kind) *ActivityUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ActivityUpdate) SetBody(v string) *ActivityUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableBody(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *ActivityUpdate) SetLead(v *Lead) *ActivityUpdate {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *ActivityUpdate) ClearLead() *ActivityUpdate {
	_u.mutation.ClearLead()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := activity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Activity.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Activity.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := activity.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Activity.body": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.lead"`)
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activity.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(activity.FieldBody, field.TypeString, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *ActivityUpdateOne) SetLeadID(v int) *ActivityUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableLeadID(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityUpdateOne) SetKind(v activity.Kind) *ActivityUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableKind(v *activity.Kind) *ActivityUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ActivityUpdateOne) SetBody(v string) *ActivityUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableBody(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *ActivityUpdateOne) SetLead(v *Lead) *ActivityUpdateOne {
	return _u.SetLeadID(v.ID)
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *ActivityUpdateOne) ClearLead() *ActivityUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.LeadID(); ok {
		if err := activity.LeadIDValidator(v); err != nil {
			return &ValidationError{Name: "lead_id", err: fmt.Errorf(`ent: validator failed for field "Activity.lead_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := activity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Activity.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := activity.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Activity.body": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Activity.lead"`)
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activity.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(activity.FieldBody, field.TypeString, value)
	}
	if _u.mutation.LeadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activity.LeadTable,
			Columns: []string{activity.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
