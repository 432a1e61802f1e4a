// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mkale/studyloop/ent/predicate"
	"github.com/mkale/studyloop/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ReviewEventUpdate) SetStudentID(v string) *ReviewEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStudentID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdate) SetItemID(v string) *ReviewEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ReviewEventUpdate) SetTopic(v string) *ReviewEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTopic(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ReviewEventUpdate) SetOutcome(v string) *ReviewEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableOutcome(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetResponseTimeSecs sets the "response_time_secs" field.
func (_u *ReviewEventUpdate) SetResponseTimeSecs(v float64) *ReviewEventUpdate {
	_u.mutation.ResetResponseTimeSecs()
	_u.mutation.SetResponseTimeSecs(v)
	return _u
}

// SetNillableResponseTimeSecs sets the "response_time_secs" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableResponseTimeSecs(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetResponseTimeSecs(*v)
	}
	return _u
}

// AddResponseTimeSecs adds value to the "response_time_secs" field.
func (_u *ReviewEventUpdate) AddResponseTimeSecs(v float64) *ReviewEventUpdate {
	_u.mutation.AddResponseTimeSecs(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdate) SetIntervalDays(v float64) *ReviewEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalDays(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdate) AddIntervalDays(v float64) *ReviewEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewEventUpdate) SetEaseFactor(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEaseFactor(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewEventUpdate) AddEaseFactor(v float64) *ReviewEventUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewEventUpdate) SetRepetitions(v int) *ReviewEventUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRepetitions(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewEventUpdate) AddRepetitions(v int) *ReviewEventUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ReviewEventUpdate) SetMasteryScore(v float64) *ReviewEventUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableMasteryScore(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ReviewEventUpdate) AddMasteryScore(v float64) *ReviewEventUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := reviewevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := reviewevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := reviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(reviewevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(reviewevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseTimeSecs(); ok {
		_spec.SetField(reviewevent.FieldResponseTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeSecs(); ok {
		_spec.AddField(reviewevent.FieldResponseTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(reviewevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(reviewevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *ReviewEventUpdateOne) SetStudentID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStudentID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdateOne) SetItemID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ReviewEventUpdateOne) SetTopic(v string) *ReviewEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTopic(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ReviewEventUpdateOne) SetOutcome(v string) *ReviewEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableOutcome(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetResponseTimeSecs sets the "response_time_secs" field.
func (_u *ReviewEventUpdateOne) SetResponseTimeSecs(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetResponseTimeSecs()
	_u.mutation.SetResponseTimeSecs(v)
	return _u
}

// SetNillableResponseTimeSecs sets the "response_time_secs" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableResponseTimeSecs(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeSecs(*v)
	}
	return _u
}

// AddResponseTimeSecs adds value to the "response_time_secs" field.
func (_u *ReviewEventUpdateOne) AddResponseTimeSecs(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddResponseTimeSecs(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdateOne) SetIntervalDays(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalDays(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdateOne) AddIntervalDays(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewEventUpdateOne) SetEaseFactor(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEaseFactor(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewEventUpdateOne) AddEaseFactor(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewEventUpdateOne) SetRepetitions(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRepetitions(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewEventUpdateOne) AddRepetitions(v int) *ReviewEventUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ReviewEventUpdateOne) SetMasteryScore(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableMasteryScore(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ReviewEventUpdateOne) AddMasteryScore(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := reviewevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := reviewevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := reviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(reviewevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(reviewevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseTimeSecs(); ok {
		_spec.SetField(reviewevent.FieldResponseTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeSecs(); ok {
		_spec.AddField(reviewevent.FieldResponseTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewevent.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(reviewevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(reviewevent.FieldMasteryScore, field.TypeFloat64, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
