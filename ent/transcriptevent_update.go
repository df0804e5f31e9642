// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/classroom/ent/predicate"
	"github.com/abhisek/classroom/ent/transcriptevent"
)

// TranscriptEventUpdate is the builder for updating TranscriptEvent entities.
type TranscriptEventUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptEventMutation
}

// Where appends a list predicates to the TranscriptEventUpdate builder.
func (_u *TranscriptEventUpdate) Where(ps ...predicate.TranscriptEvent) *TranscriptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TranscriptEventUpdate) SetSessionID(v string) *TranscriptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TranscriptEventUpdate) SetNillableSessionID(v *string) *TranscriptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *TranscriptEventUpdate) SetStage(v string) *TranscriptEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *TranscriptEventUpdate) SetNillableStage(v *string) *TranscriptEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetSpeaker sets the "speaker" field.
func (_u *TranscriptEventUpdate) SetSpeaker(v string) *TranscriptEventUpdate {
	_u.mutation.SetSpeaker(v)
	return _u
}

// SetNillableSpeaker sets the "speaker" field if the given value is not nil.
func (_u *TranscriptEventUpdate) SetNillableSpeaker(v *string) *TranscriptEventUpdate {
	if v != nil {
		_u.SetSpeaker(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TranscriptEventUpdate) SetKind(v string) *TranscriptEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TranscriptEventUpdate) SetNillableKind(v *string) *TranscriptEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *TranscriptEventUpdate) SetText(v string) *TranscriptEventUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptEventUpdate) SetNillableText(v *string) *TranscriptEventUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the TranscriptEventMutation object of the builder.
func (_u *TranscriptEventUpdate) Mutation() *TranscriptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := transcriptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TranscriptEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptevent.Table, transcriptevent.Columns, sqlgraph.NewFieldSpec(transcriptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(transcriptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(transcriptevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speaker(); ok {
		_spec.SetField(transcriptevent.FieldSpeaker, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(transcriptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcriptevent.FieldText, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptEventUpdateOne is the builder for updating a single TranscriptEvent entity.
type TranscriptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TranscriptEventUpdateOne) SetSessionID(v string) *TranscriptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TranscriptEventUpdateOne) SetNillableSessionID(v *string) *TranscriptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *TranscriptEventUpdateOne) SetStage(v string) *TranscriptEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *TranscriptEventUpdateOne) SetNillableStage(v *string) *TranscriptEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetSpeaker sets the "speaker" field.
func (_u *TranscriptEventUpdateOne) SetSpeaker(v string) *TranscriptEventUpdateOne {
	_u.mutation.SetSpeaker(v)
	return _u
}

// SetNillableSpeaker sets the "speaker" field if the given value is not nil.
func (_u *TranscriptEventUpdateOne) SetNillableSpeaker(v *string) *TranscriptEventUpdateOne {
	if v != nil {
		_u.SetSpeaker(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TranscriptEventUpdateOne) SetKind(v string) *TranscriptEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TranscriptEventUpdateOne) SetNillableKind(v *string) *TranscriptEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *TranscriptEventUpdateOne) SetText(v string) *TranscriptEventUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptEventUpdateOne) SetNillableText(v *string) *TranscriptEventUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// Mutation returns the TranscriptEventMutation object of the builder.
func (_u *TranscriptEventUpdateOne) Mutation() *TranscriptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptEventUpdate builder.
func (_u *TranscriptEventUpdateOne) Where(ps ...predicate.TranscriptEvent) *TranscriptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptEventUpdateOne) Select(field string, fields ...string) *TranscriptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptEvent entity.
func (_u *TranscriptEventUpdateOne) Save(ctx context.Context) (*TranscriptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptEventUpdateOne) SaveX(ctx context.Context) *TranscriptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := transcriptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TranscriptEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptEventUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptevent.Table, transcriptevent.Columns, sqlgraph.NewFieldSpec(transcriptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptevent.FieldID)
		for _, f := range fields {
			if !transcriptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptevent.FieldID {
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
		_spec.SetField(transcriptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(transcriptevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Speaker(); ok {
		_spec.SetField(transcriptevent.FieldSpeaker, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(transcriptevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcriptevent.FieldText, field.TypeString, value)
	}
	_node = &TranscriptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
