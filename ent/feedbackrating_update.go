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
	"github.com/abhisek/vibetune/ent/feedbackrating"
	"github.com/abhisek/vibetune/ent/message"
	"github.com/abhisek/vibetune/ent/predicate"
	"github.com/abhisek/vibetune/ent/profile"
)

// FeedbackRatingUpdate is the builder for updating FeedbackRating entities.
type FeedbackRatingUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackRatingMutation
}

// Where appends a list predicates to the FeedbackRatingUpdate builder.
func (_u *FeedbackRatingUpdate) Where(ps ...predicate.FeedbackRating) *FeedbackRatingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *FeedbackRatingUpdate) SetMessageID(v string) *FeedbackRatingUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *FeedbackRatingUpdate) SetNillableMessageID(v *string) *FeedbackRatingUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *FeedbackRatingUpdate) SetProfileID(v string) *FeedbackRatingUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FeedbackRatingUpdate) SetNillableProfileID(v *string) *FeedbackRatingUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackRatingUpdate) SetRating(v int) *FeedbackRatingUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackRatingUpdate) SetNillableRating(v *int) *FeedbackRatingUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackRatingUpdate) AddRating(v int) *FeedbackRatingUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FeedbackRatingUpdate) SetCreatedAt(v time.Time) *FeedbackRatingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FeedbackRatingUpdate) SetNillableCreatedAt(v *time.Time) *FeedbackRatingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetMessage sets the "message" edge to the Message entity.
func (_u *FeedbackRatingUpdate) SetMessage(v *Message) *FeedbackRatingUpdate {
	return _u.SetMessageID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *FeedbackRatingUpdate) SetProfile(v *Profile) *FeedbackRatingUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the FeedbackRatingMutation object of the builder.
func (_u *FeedbackRatingUpdate) Mutation() *FeedbackRatingMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the Message entity.
func (_u *FeedbackRatingUpdate) ClearMessage() *FeedbackRatingUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *FeedbackRatingUpdate) ClearProfile() *FeedbackRatingUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackRatingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackRatingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackRatingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackRatingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackRatingUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedbackrating.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackRating.rating": %w`, err)}
		}
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackRating.message"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackRating.profile"`)
	}
	return nil
}

func (_u *FeedbackRatingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackrating.Table, feedbackrating.Columns, sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedbackrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedbackrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackrating.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.MessageTable,
			Columns: []string{feedbackrating.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.MessageTable,
			Columns: []string{feedbackrating.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.ProfileTable,
			Columns: []string{feedbackrating.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.ProfileTable,
			Columns: []string{feedbackrating.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackRatingUpdateOne is the builder for updating a single FeedbackRating entity.
type FeedbackRatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackRatingMutation
}

// SetMessageID sets the "message_id" field.
func (_u *FeedbackRatingUpdateOne) SetMessageID(v string) *FeedbackRatingUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *FeedbackRatingUpdateOne) SetNillableMessageID(v *string) *FeedbackRatingUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *FeedbackRatingUpdateOne) SetProfileID(v string) *FeedbackRatingUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FeedbackRatingUpdateOne) SetNillableProfileID(v *string) *FeedbackRatingUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackRatingUpdateOne) SetRating(v int) *FeedbackRatingUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackRatingUpdateOne) SetNillableRating(v *int) *FeedbackRatingUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackRatingUpdateOne) AddRating(v int) *FeedbackRatingUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FeedbackRatingUpdateOne) SetCreatedAt(v time.Time) *FeedbackRatingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FeedbackRatingUpdateOne) SetNillableCreatedAt(v *time.Time) *FeedbackRatingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetMessage sets the "message" edge to the Message entity.
func (_u *FeedbackRatingUpdateOne) SetMessage(v *Message) *FeedbackRatingUpdateOne {
	return _u.SetMessageID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *FeedbackRatingUpdateOne) SetProfile(v *Profile) *FeedbackRatingUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the FeedbackRatingMutation object of the builder.
func (_u *FeedbackRatingUpdateOne) Mutation() *FeedbackRatingMutation {
	return _u.mutation
}

// ClearMessage clears the "message" edge to the Message entity.
func (_u *FeedbackRatingUpdateOne) ClearMessage() *FeedbackRatingUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *FeedbackRatingUpdateOne) ClearProfile() *FeedbackRatingUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the FeedbackRatingUpdate builder.
func (_u *FeedbackRatingUpdateOne) Where(ps ...predicate.FeedbackRating) *FeedbackRatingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackRatingUpdateOne) Select(field string, fields ...string) *FeedbackRatingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackRating entity.
func (_u *FeedbackRatingUpdateOne) Save(ctx context.Context) (*FeedbackRating, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackRatingUpdateOne) SaveX(ctx context.Context) *FeedbackRating {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackRatingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackRatingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackRatingUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedbackrating.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackRating.rating": %w`, err)}
		}
	}
	if _u.mutation.MessageCleared() && len(_u.mutation.MessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackRating.message"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeedbackRating.profile"`)
	}
	return nil
}

func (_u *FeedbackRatingUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackRating, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackrating.Table, feedbackrating.Columns, sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackRating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackrating.FieldID)
		for _, f := range fields {
			if !feedbackrating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackrating.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedbackrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedbackrating.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackrating.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.MessageTable,
			Columns: []string{feedbackrating.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.MessageTable,
			Columns: []string{feedbackrating.MessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.ProfileTable,
			Columns: []string{feedbackrating.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedbackrating.ProfileTable,
			Columns: []string{feedbackrating.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FeedbackRating{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackrating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
