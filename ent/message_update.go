// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/vibetune/ent/conversation"
	"github.com/abhisek/vibetune/ent/feedbackrating"
	"github.com/abhisek/vibetune/ent/message"
	"github.com/abhisek/vibetune/ent/predicate"
	"github.com/abhisek/vibetune/internal/model"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageUpdate) SetConversationID(v string) *MessageUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableConversationID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *MessageUpdate) SetSender(v message.Sender) *MessageUpdate {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSender(v *message.Sender) *MessageUpdate {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *MessageUpdate) SetType(v message.Type) *MessageUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableType(v *message.Type) *MessageUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *MessageUpdate) SetAudioURL(v string) *MessageUpdate {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableAudioURL(v *string) *MessageUpdate {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *MessageUpdate) ClearAudioURL() *MessageUpdate {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetProsodyFeedback sets the "prosody_feedback" field.
func (_u *MessageUpdate) SetProsodyFeedback(v *model.ProsodyFeedback) *MessageUpdate {
	_u.mutation.SetProsodyFeedback(v)
	return _u
}

// ClearProsodyFeedback clears the value of the "prosody_feedback" field.
func (_u *MessageUpdate) ClearProsodyFeedback() *MessageUpdate {
	_u.mutation.ClearProsodyFeedback()
	return _u
}

// SetGuidance sets the "guidance" field.
func (_u *MessageUpdate) SetGuidance(v string) *MessageUpdate {
	_u.mutation.SetGuidance(v)
	return _u
}

// SetNillableGuidance sets the "guidance" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableGuidance(v *string) *MessageUpdate {
	if v != nil {
		_u.SetGuidance(*v)
	}
	return _u
}

// ClearGuidance clears the value of the "guidance" field.
func (_u *MessageUpdate) ClearGuidance() *MessageUpdate {
	_u.mutation.ClearGuidance()
	return _u
}

// SetVocabSuggestions sets the "vocab_suggestions" field.
func (_u *MessageUpdate) SetVocabSuggestions(v []string) *MessageUpdate {
	_u.mutation.SetVocabSuggestions(v)
	return _u
}

// AppendVocabSuggestions appends value to the "vocab_suggestions" field.
func (_u *MessageUpdate) AppendVocabSuggestions(v []string) *MessageUpdate {
	_u.mutation.AppendVocabSuggestions(v)
	return _u
}

// ClearVocabSuggestions clears the value of the "vocab_suggestions" field.
func (_u *MessageUpdate) ClearVocabSuggestions() *MessageUpdate {
	_u.mutation.ClearVocabSuggestions()
	return _u
}

// SetRetryOfMessageID sets the "retry_of_message_id" field.
func (_u *MessageUpdate) SetRetryOfMessageID(v string) *MessageUpdate {
	_u.mutation.SetRetryOfMessageID(v)
	return _u
}

// SetNillableRetryOfMessageID sets the "retry_of_message_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRetryOfMessageID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetRetryOfMessageID(*v)
	}
	return _u
}

// ClearRetryOfMessageID clears the value of the "retry_of_message_id" field.
func (_u *MessageUpdate) ClearRetryOfMessageID() *MessageUpdate {
	_u.mutation.ClearRetryOfMessageID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MessageUpdate) SetVersion(v int) *MessageUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableVersion(v *int) *MessageUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MessageUpdate) AddVersion(v int) *MessageUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MessageUpdate) SetCreatedAt(v time.Time) *MessageUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableCreatedAt(v *time.Time) *MessageUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *MessageUpdate) SetDeviceID(v string) *MessageUpdate {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDeviceID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *MessageUpdate) ClearDeviceID() *MessageUpdate {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *MessageUpdate) SetConversation(v *Conversation) *MessageUpdate {
	return _u.SetConversationID(v.ID)
}

// SetRetryOfID sets the "retry_of" edge to the Message entity by ID.
func (_u *MessageUpdate) SetRetryOfID(id string) *MessageUpdate {
	_u.mutation.SetRetryOfID(id)
	return _u
}

// SetNillableRetryOfID sets the "retry_of" edge to the Message entity by ID if the given value is not nil.
func (_u *MessageUpdate) SetNillableRetryOfID(id *string) *MessageUpdate {
	if id != nil {
		_u = _u.SetRetryOfID(*id)
	}
	return _u
}

// SetRetryOf sets the "retry_of" edge to the Message entity.
func (_u *MessageUpdate) SetRetryOf(v *Message) *MessageUpdate {
	return _u.SetRetryOfID(v.ID)
}

// AddRetryIDs adds the "retries" edge to the Message entity by IDs.
func (_u *MessageUpdate) AddRetryIDs(ids ...string) *MessageUpdate {
	_u.mutation.AddRetryIDs(ids...)
	return _u
}

// AddRetries adds the "retries" edges to the Message entity.
func (_u *MessageUpdate) AddRetries(v ...*Message) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRetryIDs(ids...)
}

// AddRatingIDs adds the "ratings" edge to the FeedbackRating entity by IDs.
func (_u *MessageUpdate) AddRatingIDs(ids ...string) *MessageUpdate {
	_u.mutation.AddRatingIDs(ids...)
	return _u
}

// AddRatings adds the "ratings" edges to the FeedbackRating entity.
func (_u *MessageUpdate) AddRatings(v ...*FeedbackRating) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRatingIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *MessageUpdate) ClearConversation() *MessageUpdate {
	_u.mutation.ClearConversation()
	return _u
}

// ClearRetryOf clears the "retry_of" edge to the Message entity.
func (_u *MessageUpdate) ClearRetryOf() *MessageUpdate {
	_u.mutation.ClearRetryOf()
	return _u
}

// ClearRetries clears all "retries" edges to the Message entity.
func (_u *MessageUpdate) ClearRetries() *MessageUpdate {
	_u.mutation.ClearRetries()
	return _u
}

// RemoveRetryIDs removes the "retries" edge to Message entities by IDs.
func (_u *MessageUpdate) RemoveRetryIDs(ids ...string) *MessageUpdate {
	_u.mutation.RemoveRetryIDs(ids...)
	return _u
}

// RemoveRetries removes "retries" edges to Message entities.
func (_u *MessageUpdate) RemoveRetries(v ...*Message) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRetryIDs(ids...)
}

// ClearRatings clears all "ratings" edges to the FeedbackRating entity.
func (_u *MessageUpdate) ClearRatings() *MessageUpdate {
	_u.mutation.ClearRatings()
	return _u
}

// RemoveRatingIDs removes the "ratings" edge to FeedbackRating entities by IDs.
func (_u *MessageUpdate) RemoveRatingIDs(ids ...string) *MessageUpdate {
	_u.mutation.RemoveRatingIDs(ids...)
	return _u
}

// RemoveRatings removes "ratings" edges to FeedbackRating entities.
func (_u *MessageUpdate) RemoveRatings(v ...*FeedbackRating) *MessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRatingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Sender(); ok {
		if err := message.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`ent: validator failed for field "Message.sender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := message.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Message.type": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(message.FieldSender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(message.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(message.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(message.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.ProsodyFeedback(); ok {
		_spec.SetField(message.FieldProsodyFeedback, field.TypeJSON, value)
	}
	if _u.mutation.ProsodyFeedbackCleared() {
		_spec.ClearField(message.FieldProsodyFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.Guidance(); ok {
		_spec.SetField(message.FieldGuidance, field.TypeString, value)
	}
	if _u.mutation.GuidanceCleared() {
		_spec.ClearField(message.FieldGuidance, field.TypeString)
	}
	if value, ok := _u.mutation.VocabSuggestions(); ok {
		_spec.SetField(message.FieldVocabSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVocabSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldVocabSuggestions, value)
		})
	}
	if _u.mutation.VocabSuggestionsCleared() {
		_spec.ClearField(message.FieldVocabSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(message.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(message.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(message.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(message.FieldDeviceID, field.TypeString)
	}
	if _u.mutation.ConversationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
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
	if _u.mutation.RetryOfCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.RetryOfTable,
			Columns: []string{message.RetryOfColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RetryOfIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.RetryOfTable,
			Columns: []string{message.RetryOfColumn},
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
	if _u.mutation.RetriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RetriesTable,
			Columns: []string{message.RetriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRetriesIDs(); len(nodes) > 0 && !_u.mutation.RetriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RetriesTable,
			Columns: []string{message.RetriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RetriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RetriesTable,
			Columns: []string{message.RetriesColumn},
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
	if _u.mutation.RatingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RatingsTable,
			Columns: []string{message.RatingsColumn},
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
			Table:   message.RatingsTable,
			Columns: []string{message.RatingsColumn},
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
			Table:   message.RatingsTable,
			Columns: []string{message.RatingsColumn},
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
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *MessageUpdateOne) SetConversationID(v string) *MessageUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableConversationID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetSender sets the "sender" field.
func (_u *MessageUpdateOne) SetSender(v message.Sender) *MessageUpdateOne {
	_u.mutation.SetSender(v)
	return _u
}

// SetNillableSender sets the "sender" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSender(v *message.Sender) *MessageUpdateOne {
	if v != nil {
		_u.SetSender(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *MessageUpdateOne) SetType(v message.Type) *MessageUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableType(v *message.Type) *MessageUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *MessageUpdateOne) SetAudioURL(v string) *MessageUpdateOne {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableAudioURL(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *MessageUpdateOne) ClearAudioURL() *MessageUpdateOne {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetProsodyFeedback sets the "prosody_feedback" field.
func (_u *MessageUpdateOne) SetProsodyFeedback(v *model.ProsodyFeedback) *MessageUpdateOne {
	_u.mutation.SetProsodyFeedback(v)
	return _u
}

// ClearProsodyFeedback clears the value of the "prosody_feedback" field.
func (_u *MessageUpdateOne) ClearProsodyFeedback() *MessageUpdateOne {
	_u.mutation.ClearProsodyFeedback()
	return _u
}

// SetGuidance sets the "guidance" field.
func (_u *MessageUpdateOne) SetGuidance(v string) *MessageUpdateOne {
	_u.mutation.SetGuidance(v)
	return _u
}

// SetNillableGuidance sets the "guidance" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableGuidance(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetGuidance(*v)
	}
	return _u
}

// ClearGuidance clears the value of the "guidance" field.
func (_u *MessageUpdateOne) ClearGuidance() *MessageUpdateOne {
	_u.mutation.ClearGuidance()
	return _u
}

// SetVocabSuggestions sets the "vocab_suggestions" field.
func (_u *MessageUpdateOne) SetVocabSuggestions(v []string) *MessageUpdateOne {
	_u.mutation.SetVocabSuggestions(v)
	return _u
}

// AppendVocabSuggestions appends value to the "vocab_suggestions" field.
func (_u *MessageUpdateOne) AppendVocabSuggestions(v []string) *MessageUpdateOne {
	_u.mutation.AppendVocabSuggestions(v)
	return _u
}

// ClearVocabSuggestions clears the value of the "vocab_suggestions" field.
func (_u *MessageUpdateOne) ClearVocabSuggestions() *MessageUpdateOne {
	_u.mutation.ClearVocabSuggestions()
	return _u
}

// SetRetryOfMessageID sets the "retry_of_message_id" field.
func (_u *MessageUpdateOne) SetRetryOfMessageID(v string) *MessageUpdateOne {
	_u.mutation.SetRetryOfMessageID(v)
	return _u
}

// SetNillableRetryOfMessageID sets the "retry_of_message_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRetryOfMessageID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetRetryOfMessageID(*v)
	}
	return _u
}

// ClearRetryOfMessageID clears the value of the "retry_of_message_id" field.
func (_u *MessageUpdateOne) ClearRetryOfMessageID() *MessageUpdateOne {
	_u.mutation.ClearRetryOfMessageID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *MessageUpdateOne) SetVersion(v int) *MessageUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableVersion(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MessageUpdateOne) AddVersion(v int) *MessageUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MessageUpdateOne) SetCreatedAt(v time.Time) *MessageUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableCreatedAt(v *time.Time) *MessageUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDeviceID sets the "device_id" field.
func (_u *MessageUpdateOne) SetDeviceID(v string) *MessageUpdateOne {
	_u.mutation.SetDeviceID(v)
	return _u
}

// SetNillableDeviceID sets the "device_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDeviceID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetDeviceID(*v)
	}
	return _u
}

// ClearDeviceID clears the value of the "device_id" field.
func (_u *MessageUpdateOne) ClearDeviceID() *MessageUpdateOne {
	_u.mutation.ClearDeviceID()
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *MessageUpdateOne) SetConversation(v *Conversation) *MessageUpdateOne {
	return _u.SetConversationID(v.ID)
}

// SetRetryOfID sets the "retry_of" edge to the Message entity by ID.
func (_u *MessageUpdateOne) SetRetryOfID(id string) *MessageUpdateOne {
	_u.mutation.SetRetryOfID(id)
	return _u
}

// SetNillableRetryOfID sets the "retry_of" edge to the Message entity by ID if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRetryOfID(id *string) *MessageUpdateOne {
	if id != nil {
		_u = _u.SetRetryOfID(*id)
	}
	return _u
}

// SetRetryOf sets the "retry_of" edge to the Message entity.
func (_u *MessageUpdateOne) SetRetryOf(v *Message) *MessageUpdateOne {
	return _u.SetRetryOfID(v.ID)
}

// AddRetryIDs adds the "retries" edge to the Message entity by IDs.
func (_u *MessageUpdateOne) AddRetryIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.AddRetryIDs(ids...)
	return _u
}

// AddRetries adds the "retries" edges to the Message entity.
func (_u *MessageUpdateOne) AddRetries(v ...*Message) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRetryIDs(ids...)
}

// AddRatingIDs adds the "ratings" edge to the FeedbackRating entity by IDs.
func (_u *MessageUpdateOne) AddRatingIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.AddRatingIDs(ids...)
	return _u
}

// AddRatings adds the "ratings" edges to the FeedbackRating entity.
func (_u *MessageUpdateOne) AddRatings(v ...*FeedbackRating) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRatingIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *MessageUpdateOne) ClearConversation() *MessageUpdateOne {
	_u.mutation.ClearConversation()
	return _u
}

// ClearRetryOf clears the "retry_of" edge to the Message entity.
func (_u *MessageUpdateOne) ClearRetryOf() *MessageUpdateOne {
	_u.mutation.ClearRetryOf()
	return _u
}

// ClearRetries clears all "retries" edges to the Message entity.
func (_u *MessageUpdateOne) ClearRetries() *MessageUpdateOne {
	_u.mutation.ClearRetries()
	return _u
}

// RemoveRetryIDs removes the "retries" edge to Message entities by IDs.
func (_u *MessageUpdateOne) RemoveRetryIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.RemoveRetryIDs(ids...)
	return _u
}

// RemoveRetries removes "retries" edges to Message entities.
func (_u *MessageUpdateOne) RemoveRetries(v ...*Message) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRetryIDs(ids...)
}

// ClearRatings clears all "ratings" edges to the FeedbackRating entity.
func (_u *MessageUpdateOne) ClearRatings() *MessageUpdateOne {
	_u.mutation.ClearRatings()
	return _u
}

// RemoveRatingIDs removes the "ratings" edge to FeedbackRating entities by IDs.
func (_u *MessageUpdateOne) RemoveRatingIDs(ids ...string) *MessageUpdateOne {
	_u.mutation.RemoveRatingIDs(ids...)
	return _u
}

// RemoveRatings removes "ratings" edges to FeedbackRating entities.
func (_u *MessageUpdateOne) RemoveRatings(v ...*FeedbackRating) *MessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRatingIDs(ids...)
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Sender(); ok {
		if err := message.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`ent: validator failed for field "Message.sender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := message.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Message.type": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.conversation"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.Sender(); ok {
		_spec.SetField(message.FieldSender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(message.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(message.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(message.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.ProsodyFeedback(); ok {
		_spec.SetField(message.FieldProsodyFeedback, field.TypeJSON, value)
	}
	if _u.mutation.ProsodyFeedbackCleared() {
		_spec.ClearField(message.FieldProsodyFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.Guidance(); ok {
		_spec.SetField(message.FieldGuidance, field.TypeString, value)
	}
	if _u.mutation.GuidanceCleared() {
		_spec.ClearField(message.FieldGuidance, field.TypeString)
	}
	if value, ok := _u.mutation.VocabSuggestions(); ok {
		_spec.SetField(message.FieldVocabSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVocabSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldVocabSuggestions, value)
		})
	}
	if _u.mutation.VocabSuggestionsCleared() {
		_spec.ClearField(message.FieldVocabSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(message.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(message.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeviceID(); ok {
		_spec.SetField(message.FieldDeviceID, field.TypeString, value)
	}
	if _u.mutation.DeviceIDCleared() {
		_spec.ClearField(message.FieldDeviceID, field.TypeString)
	}
	if _u.mutation.ConversationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ConversationTable,
			Columns: []string{message.ConversationColumn},
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
	if _u.mutation.RetryOfCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.RetryOfTable,
			Columns: []string{message.RetryOfColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RetryOfIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.RetryOfTable,
			Columns: []string{message.RetryOfColumn},
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
	if _u.mutation.RetriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RetriesTable,
			Columns: []string{message.RetriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRetriesIDs(); len(nodes) > 0 && !_u.mutation.RetriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RetriesTable,
			Columns: []string{message.RetriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RetriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RetriesTable,
			Columns: []string{message.RetriesColumn},
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
	if _u.mutation.RatingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RatingsTable,
			Columns: []string{message.RatingsColumn},
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
			Table:   message.RatingsTable,
			Columns: []string{message.RatingsColumn},
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
			Table:   message.RatingsTable,
			Columns: []string{message.RatingsColumn},
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
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
