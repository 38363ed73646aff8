// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vibetune/ent/feedbackrating"
	"github.com/abhisek/vibetune/ent/message"
	"github.com/abhisek/vibetune/ent/profile"
)

// FeedbackRatingCreate is the builder for creating a FeedbackRating entity.
type FeedbackRatingCreate struct {
	config
	mutation *FeedbackRatingMutation
	hooks    []Hook
}

// SetMessageID sets the "message_id" field.
func (_c *FeedbackRatingCreate) SetMessageID(v string) *FeedbackRatingCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *FeedbackRatingCreate) SetProfileID(v string) *FeedbackRatingCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *FeedbackRatingCreate) SetRating(v int) *FeedbackRatingCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackRatingCreate) SetCreatedAt(v time.Time) *FeedbackRatingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackRatingCreate) SetNillableCreatedAt(v *time.Time) *FeedbackRatingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackRatingCreate) SetID(v string) *FeedbackRatingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMessage sets the "message" edge to the Message entity.
func (_c *FeedbackRatingCreate) SetMessage(v *Message) *FeedbackRatingCreate {
	return _c.SetMessageID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *FeedbackRatingCreate) SetProfile(v *Profile) *FeedbackRatingCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the FeedbackRatingMutation object of the builder.
func (_c *FeedbackRatingCreate) Mutation() *FeedbackRatingMutation {
	return _c.mutation
}

// Save creates the FeedbackRating in the database.
func (_c *FeedbackRatingCreate) Save(ctx context.Context) (*FeedbackRating, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackRatingCreate) SaveX(ctx context.Context) *FeedbackRating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackRatingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackRatingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackRatingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedbackrating.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackRatingCreate) check() error {
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "FeedbackRating.message_id"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "FeedbackRating.profile_id"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "FeedbackRating.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := feedbackrating.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackRating.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeedbackRating.created_at"`)}
	}
	if len(_c.mutation.MessageIDs()) == 0 {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required edge "FeedbackRating.message"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "FeedbackRating.profile"`)}
	}
	return nil
}

func (_c *FeedbackRatingCreate) sqlSave(ctx context.Context) (*FeedbackRating, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FeedbackRating.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackRatingCreate) createSpec() (*FeedbackRating, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackRating{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackrating.Table, sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(feedbackrating.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedbackrating.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MessageIDs(); len(nodes) > 0 {
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
		_node.MessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeedbackRatingCreateBulk is the builder for creating many FeedbackRating entities in bulk.
type FeedbackRatingCreateBulk struct {
	config
	err      error
	builders []*FeedbackRatingCreate
}

// Save creates the FeedbackRating entities in the database.
func (_c *FeedbackRatingCreateBulk) Save(ctx context.Context) ([]*FeedbackRating, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackRating, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackRatingMutation)
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
func (_c *FeedbackRatingCreateBulk) SaveX(ctx context.Context) []*FeedbackRating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackRatingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackRatingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
