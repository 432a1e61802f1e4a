// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mkale/studyloop/ent/predicate"
	"github.com/mkale/studyloop/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionEventUpdate) SetStudentID(v string) *SessionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStudentID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdate) SetTopic(v string) *SessionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopic(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetHintRequests sets the "hint_requests" field.
func (_u *SessionEventUpdate) SetHintRequests(v int) *SessionEventUpdate {
	_u.mutation.ResetHintRequests()
	_u.mutation.SetHintRequests(v)
	return _u
}

// SetNillableHintRequests sets the "hint_requests" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableHintRequests(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetHintRequests(*v)
	}
	return _u
}

// AddHintRequests adds value to the "hint_requests" field.
func (_u *SessionEventUpdate) AddHintRequests(v int) *SessionEventUpdate {
	_u.mutation.AddHintRequests(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *SessionEventUpdate) SetQuestionsAsked(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestionsAsked(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *SessionEventUpdate) AddQuestionsAsked(v int) *SessionEventUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetCopyPasteCount sets the "copy_paste_count" field.
func (_u *SessionEventUpdate) SetCopyPasteCount(v int) *SessionEventUpdate {
	_u.mutation.ResetCopyPasteCount()
	_u.mutation.SetCopyPasteCount(v)
	return _u
}

// SetNillableCopyPasteCount sets the "copy_paste_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCopyPasteCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCopyPasteCount(*v)
	}
	return _u
}

// AddCopyPasteCount adds value to the "copy_paste_count" field.
func (_u *SessionEventUpdate) AddCopyPasteCount(v int) *SessionEventUpdate {
	_u.mutation.AddCopyPasteCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetSignals sets the "signals" field.
func (_u *SessionEventUpdate) SetSignals(v []string) *SessionEventUpdate {
	_u.mutation.SetSignals(v)
	return _u
}

// AppendSignals appends value to the "signals" field.
func (_u *SessionEventUpdate) AppendSignals(v []string) *SessionEventUpdate {
	_u.mutation.AppendSignals(v)
	return _u
}

// ClearSignals clears the value of the "signals" field.
func (_u *SessionEventUpdate) ClearSignals() *SessionEventUpdate {
	_u.mutation.ClearSignals()
	return _u
}

// SetInterventionOffered sets the "intervention_offered" field.
func (_u *SessionEventUpdate) SetInterventionOffered(v bool) *SessionEventUpdate {
	_u.mutation.SetInterventionOffered(v)
	return _u
}

// SetNillableInterventionOffered sets the "intervention_offered" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInterventionOffered(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetInterventionOffered(*v)
	}
	return _u
}

// SetInterventionAccepted sets the "intervention_accepted" field.
func (_u *SessionEventUpdate) SetInterventionAccepted(v bool) *SessionEventUpdate {
	_u.mutation.SetInterventionAccepted(v)
	return _u
}

// SetNillableInterventionAccepted sets the "intervention_accepted" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInterventionAccepted(v *bool) *SessionEventUpdate {
	if v != nil {
		_u.SetInterventionAccepted(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := sessionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sessionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintRequests(); ok {
		_spec.SetField(sessionevent.FieldHintRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintRequests(); ok {
		_spec.AddField(sessionevent.FieldHintRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CopyPasteCount(); ok {
		_spec.SetField(sessionevent.FieldCopyPasteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCopyPasteCount(); ok {
		_spec.AddField(sessionevent.FieldCopyPasteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Signals(); ok {
		_spec.SetField(sessionevent.FieldSignals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldSignals, value)
		})
	}
	if _u.mutation.SignalsCleared() {
		_spec.ClearField(sessionevent.FieldSignals, field.TypeJSON)
	}
	if value, ok := _u.mutation.InterventionOffered(); ok {
		_spec.SetField(sessionevent.FieldInterventionOffered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InterventionAccepted(); ok {
		_spec.SetField(sessionevent.FieldInterventionAccepted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionEventUpdateOne) SetStudentID(v string) *SessionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStudentID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdateOne) SetTopic(v string) *SessionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopic(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetHintRequests sets the "hint_requests" field.
func (_u *SessionEventUpdateOne) SetHintRequests(v int) *SessionEventUpdateOne {
	_u.mutation.ResetHintRequests()
	_u.mutation.SetHintRequests(v)
	return _u
}

// SetNillableHintRequests sets the "hint_requests" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableHintRequests(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetHintRequests(*v)
	}
	return _u
}

// AddHintRequests adds value to the "hint_requests" field.
func (_u *SessionEventUpdateOne) AddHintRequests(v int) *SessionEventUpdateOne {
	_u.mutation.AddHintRequests(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *SessionEventUpdateOne) SetQuestionsAsked(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestionsAsked(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *SessionEventUpdateOne) AddQuestionsAsked(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetCopyPasteCount sets the "copy_paste_count" field.
func (_u *SessionEventUpdateOne) SetCopyPasteCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCopyPasteCount()
	_u.mutation.SetCopyPasteCount(v)
	return _u
}

// SetNillableCopyPasteCount sets the "copy_paste_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCopyPasteCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCopyPasteCount(*v)
	}
	return _u
}

// AddCopyPasteCount adds value to the "copy_paste_count" field.
func (_u *SessionEventUpdateOne) AddCopyPasteCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddCopyPasteCount(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetSignals sets the "signals" field.
func (_u *SessionEventUpdateOne) SetSignals(v []string) *SessionEventUpdateOne {
	_u.mutation.SetSignals(v)
	return _u
}

// AppendSignals appends value to the "signals" field.
func (_u *SessionEventUpdateOne) AppendSignals(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendSignals(v)
	return _u
}

// ClearSignals clears the value of the "signals" field.
func (_u *SessionEventUpdateOne) ClearSignals() *SessionEventUpdateOne {
	_u.mutation.ClearSignals()
	return _u
}

// SetInterventionOffered sets the "intervention_offered" field.
func (_u *SessionEventUpdateOne) SetInterventionOffered(v bool) *SessionEventUpdateOne {
	_u.mutation.SetInterventionOffered(v)
	return _u
}

// SetNillableInterventionOffered sets the "intervention_offered" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInterventionOffered(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInterventionOffered(*v)
	}
	return _u
}

// SetInterventionAccepted sets the "intervention_accepted" field.
func (_u *SessionEventUpdateOne) SetInterventionAccepted(v bool) *SessionEventUpdateOne {
	_u.mutation.SetInterventionAccepted(v)
	return _u
}

// SetNillableInterventionAccepted sets the "intervention_accepted" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInterventionAccepted(v *bool) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInterventionAccepted(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := sessionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sessionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintRequests(); ok {
		_spec.SetField(sessionevent.FieldHintRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintRequests(); ok {
		_spec.AddField(sessionevent.FieldHintRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CopyPasteCount(); ok {
		_spec.SetField(sessionevent.FieldCopyPasteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCopyPasteCount(); ok {
		_spec.AddField(sessionevent.FieldCopyPasteCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Signals(); ok {
		_spec.SetField(sessionevent.FieldSignals, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignals(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldSignals, value)
		})
	}
	if _u.mutation.SignalsCleared() {
		_spec.ClearField(sessionevent.FieldSignals, field.TypeJSON)
	}
	if value, ok := _u.mutation.InterventionOffered(); ok {
		_spec.SetField(sessionevent.FieldInterventionOffered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InterventionAccepted(); ok {
		_spec.SetField(sessionevent.FieldInterventionAccepted, field.TypeBool, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
