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
	"github.com/abhisek/vibetune/ent/authsession"
	"github.com/abhisek/vibetune/ent/conversation"
	"github.com/abhisek/vibetune/ent/credential"
	"github.com/abhisek/vibetune/ent/feedbackrating"
	"github.com/abhisek/vibetune/ent/predicate"
	"github.com/abhisek/vibetune/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ProfileUpdate) SetUsername(v string) *ProfileUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableUsername(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdate) SetLevel(v profile.Level) *ProfileUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLevel(v *profile.Level) *ProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *ProfileUpdate) ClearLevel() *ProfileUpdate {
	_u.mutation.ClearLevel()
	return _u
}

// SetPlacementTestCompleted sets the "placement_test_completed" field.
func (_u *ProfileUpdate) SetPlacementTestCompleted(v bool) *ProfileUpdate {
	_u.mutation.SetPlacementTestCompleted(v)
	return _u
}

// SetNillablePlacementTestCompleted sets the "placement_test_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePlacementTestCompleted(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetPlacementTestCompleted(*v)
	}
	return _u
}

// SetLastLogin sets the "last_login" field.
func (_u *ProfileUpdate) SetLastLogin(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastLogin(v)
	return _u
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastLogin(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastLogin(*v)
	}
	return _u
}

// ClearLastLogin clears the value of the "last_login" field.
func (_u *ProfileUpdate) ClearLastLogin() *ProfileUpdate {
	_u.mutation.ClearLastLogin()
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *ProfileUpdate) SetDeviceID(v string) *ProfileUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDeviceID(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *ProfileUpdate) ClearDeviceID() *ProfileUpdate {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_u *ProfileUpdate) SetCredentialID(id int) *ProfileUpdate {
	_u.mutation.SetCredentialID(id)
	return _u
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCredentialID(id *int) *ProfileUpdate {
	if id != nil {
		_u = _u.SetCredentialID(*id)
	}
	return _u
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *ProfileUpdate) SetCredential(v *Credential) *ProfileUpdate {
	return _u.SetCredentialID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by IDs.
func (_u *ProfileUpdate) AddSessionIDs(ids ...string) *ProfileUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AuthSession entity.
func (_u *ProfileUpdate) AddSessions(v ...*AuthSession) *ProfileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *ProfileUpdate) AddConversationIDs(ids ...string) *ProfileUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *ProfileUpdate) AddConversations(v ...*Conversation) *ProfileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddRatingIDs adds the "ratings" edge to the FeedbackRating entity by IDs.
func (_u *ProfileUpdate) AddRatingIDs(ids ...string) *ProfileUpdate {
	_u.mutation.AddRatingIDs(ids...)
	return _u
}

// AddRatings adds the "ratings" edges to the FeedbackRating entity.
func (_u *ProfileUpdate) AddRatings(v ...*FeedbackRating) *ProfileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRatingIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *ProfileUpdate) ClearCredential() *ProfileUpdate {
	_u.mutation.ClearCredential()
	return _u
}

// ClearSessions clears all "sessions" edges to the AuthSession entity.
func (_u *ProfileUpdate) ClearSessions() *ProfileUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AuthSession entities by IDs.
func (_u *ProfileUpdate) RemoveSessionIDs(ids ...string) *ProfileUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AuthSession entities.
func (_u *ProfileUpdate) RemoveSessions(v ...*AuthSession) *ProfileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *ProfileUpdate) ClearConversations() *ProfileUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *ProfileUpdate) RemoveConversationIDs(ids ...string) *ProfileUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *ProfileUpdate) RemoveConversations(v ...*Conversation) *ProfileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearRatings clears all "ratings" edges to the FeedbackRating entity.
func (_u *ProfileUpdate) ClearRatings() *ProfileUpdate {
	_u.mutation.ClearRatings()
	return _u
}

// RemoveRatingIDs removes the "ratings" edge to FeedbackRating entities by IDs.
func (_u *ProfileUpdate) RemoveRatingIDs(ids ...string) *ProfileUpdate {
	_u.mutation.RemoveRatingIDs(ids...)
	return _u
}

// RemoveRatings removes "ratings" edges to FeedbackRating entities.
func (_u *ProfileUpdate) RemoveRatings(v ...*FeedbackRating) *ProfileUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRatingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := profile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Profile.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeEnum, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(profile.FieldLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.PlacementTestCompleted(); ok {
		_spec.SetField(profile.FieldPlacementTestCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLogin(); ok {
		_spec.SetField(profile.FieldLastLogin, field.TypeTime, value)
	}
	if _u.mutation.LastLoginCleared() {
		_spec.ClearField(profile.FieldLastLogin, field.TypeTime)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(profile.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(profile.FieldDeviceID, field.TypeString)
	}
	if _u.mutation.CredentialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.CredentialTable,
			Columns: []string{profile.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.CredentialTable,
			Columns: []string{profile.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SessionsTable,
			Columns: []string{profile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SessionsTable,
			Columns: []string{profile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SessionsTable,
			Columns: []string{profile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ConversationsTable,
			Columns: []string{profile.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ConversationsTable,
			Columns: []string{profile.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ConversationsTable,
			Columns: []string{profile.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RatingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.RatingsTable,
			Columns: []string{profile.RatingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRatingsIDs(); len(nodes) > 0 && !_u.mutation.RatingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.RatingsTable,
			Columns: []string{profile.RatingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RatingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.RatingsTable,
			Columns: []string{profile.RatingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUsername sets the "username" field.
func (_u *ProfileUpdateOne) SetUsername(v string) *ProfileUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableUsername(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdateOne) SetLevel(v profile.Level) *ProfileUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLevel(v *profile.Level) *ProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *ProfileUpdateOne) ClearLevel() *ProfileUpdateOne {
	_u.mutation.ClearLevel()
	return _u
}

// SetPlacementTestCompleted sets the "placement_test_completed" field.
func (_u *ProfileUpdateOne) SetPlacementTestCompleted(v bool) *ProfileUpdateOne {
	_u.mutation.SetPlacementTestCompleted(v)
	return _u
}

// SetNillablePlacementTestCompleted sets the "placement_test_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePlacementTestCompleted(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetPlacementTestCompleted(*v)
	}
	return _u
}

// SetLastLogin sets the "last_login" field.
func (_u *ProfileUpdateOne) SetLastLogin(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastLogin(v)
	return _u
}

// SetNillableLastLogin sets the "last_login" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastLogin(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastLogin(*v)
	}
	return _u
}

// ClearLastLogin clears the value of the "last_login" field.
func (_u *ProfileUpdateOne) ClearLastLogin() *ProfileUpdateOne {
	_u.mutation.ClearLastLogin()
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *ProfileUpdateOne) SetDeviceID(v string) *ProfileUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDeviceID(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *ProfileUpdateOne) ClearDeviceID() *ProfileUpdateOne {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetCredentialID sets the "credential" edge to the Credential entity by ID.
func (_u *ProfileUpdateOne) SetCredentialID(id int) *ProfileUpdateOne {
	_u.mutation.SetCredentialID(id)
	return _u
}

// SetNillableCredentialID sets the "credential" edge to the Credential entity by ID if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCredentialID(id *int) *ProfileUpdateOne {
	if id != nil {
		_u = _u.SetCredentialID(*id)
	}
	return _u
}

// SetCredential sets the "credential" edge to the Credential entity.
func (_u *ProfileUpdateOne) SetCredential(v *Credential) *ProfileUpdateOne {
	return _u.SetCredentialID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AuthSession entity by IDs.
func (_u *ProfileUpdateOne) AddSessionIDs(ids ...string) *ProfileUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AuthSession entity.
func (_u *ProfileUpdateOne) AddSessions(v ...*AuthSession) *ProfileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *ProfileUpdateOne) AddConversationIDs(ids ...string) *ProfileUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *ProfileUpdateOne) AddConversations(v ...*Conversation) *ProfileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddRatingIDs adds the "ratings" edge to the FeedbackRating entity by IDs.
func (_u *ProfileUpdateOne) AddRatingIDs(ids ...string) *ProfileUpdateOne {
	_u.mutation.AddRatingIDs(ids...)
	return _u
}

// AddRatings adds the "ratings" edges to the FeedbackRating entity.
func (_u *ProfileUpdateOne) AddRatings(v ...*FeedbackRating) *ProfileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRatingIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearCredential clears the "credential" edge to the Credential entity.
func (_u *ProfileUpdateOne) ClearCredential() *ProfileUpdateOne {
	_u.mutation.ClearCredential()
	return _u
}

// ClearSessions clears all "sessions" edges to the AuthSession entity.
func (_u *ProfileUpdateOne) ClearSessions() *ProfileUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AuthSession entities by IDs.
func (_u *ProfileUpdateOne) RemoveSessionIDs(ids ...string) *ProfileUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AuthSession entities.
func (_u *ProfileUpdateOne) RemoveSessions(v ...*AuthSession) *ProfileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *ProfileUpdateOne) ClearConversations() *ProfileUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *ProfileUpdateOne) RemoveConversationIDs(ids ...string) *ProfileUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *ProfileUpdateOne) RemoveConversations(v ...*Conversation) *ProfileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearRatings clears all "ratings" edges to the FeedbackRating entity.
func (_u *ProfileUpdateOne) ClearRatings() *ProfileUpdateOne {
	_u.mutation.ClearRatings()
	return _u
}

// RemoveRatingIDs removes the "ratings" edge to FeedbackRating entities by IDs.
func (_u *ProfileUpdateOne) RemoveRatingIDs(ids ...string) *ProfileUpdateOne {
	_u.mutation.RemoveRatingIDs(ids...)
	return _u
}

// RemoveRatings removes "ratings" edges to FeedbackRating entities.
func (_u *ProfileUpdateOne) RemoveRatings(v ...*FeedbackRating) *ProfileUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRatingIDs(ids...)
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := profile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Profile.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(profile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeEnum, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(profile.FieldLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.PlacementTestCompleted(); ok {
		_spec.SetField(profile.FieldPlacementTestCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLogin(); ok {
		_spec.SetField(profile.FieldLastLogin, field.TypeTime, value)
	}
	if _u.mutation.LastLoginCleared() {
		_spec.ClearField(profile.FieldLastLogin, field.TypeTime)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(profile.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(profile.FieldDeviceID, field.TypeString)
	}
	if _u.mutation.CredentialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.CredentialTable,
			Columns: []string{profile.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CredentialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   profile.CredentialTable,
			Columns: []string{profile.CredentialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credential.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SessionsTable,
			Columns: []string{profile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SessionsTable,
			Columns: []string{profile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SessionsTable,
			Columns: []string{profile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ConversationsTable,
			Columns: []string{profile.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ConversationsTable,
			Columns: []string{profile.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ConversationsTable,
			Columns: []string{profile.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RatingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.RatingsTable,
			Columns: []string{profile.RatingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRatingsIDs(); len(nodes) > 0 && !_u.mutation.RatingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.RatingsTable,
			Columns: []string{profile.RatingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RatingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.RatingsTable,
			Columns: []string{profile.RatingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedbackrating.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
