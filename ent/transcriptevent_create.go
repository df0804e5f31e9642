// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/classroom/ent/transcriptevent"
)

// TranscriptEventCreate is the builder for creating a TranscriptEvent entity.
type TranscriptEventCreate struct {
	config
	mutation *TranscriptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TranscriptEventCreate) SetSequence(v int64) *TranscriptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TranscriptEventCreate) SetTimestamp(v time.Time) *TranscriptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TranscriptEventCreate) SetNillableTimestamp(v *time.Time) *TranscriptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TranscriptEventCreate) SetSessionID(v string) *TranscriptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *TranscriptEventCreate) SetStage(v string) *TranscriptEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetSpeaker sets the "speaker" field.
func (_c *TranscriptEventCreate) SetSpeaker(v string) *TranscriptEventCreate {
	_c.mutation.SetSpeaker(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TranscriptEventCreate) SetKind(v string) *TranscriptEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetText sets the "text" field.
func (_c *TranscriptEventCreate) SetText(v string) *TranscriptEventCreate {
	_c.mutation.SetText(v)
	return _c
}

// Mutation returns the TranscriptEventMutation object of the builder.
func (_c *TranscriptEventCreate) Mutation() *TranscriptEventMutation {
	return _c.mutation
}

// Save creates the TranscriptEvent in the database.
func (_c *TranscriptEventCreate) Save(ctx context.Context) (*TranscriptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptEventCreate) SaveX(ctx context.Context) *TranscriptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := transcriptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TranscriptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TranscriptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TranscriptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := transcriptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TranscriptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "TranscriptEvent.stage"`)}
	}
	if _, ok := _c.mutation.Speaker(); !ok {
		return &ValidationError{Name: "speaker", err: errors.New(`ent: missing required field "TranscriptEvent.speaker"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TranscriptEvent.kind"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "TranscriptEvent.text"`)}
	}
	return nil
}

func (_c *TranscriptEventCreate) sqlSave(ctx context.Context) (*TranscriptEvent, error) {
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

func (_c *TranscriptEventCreate) createSpec() (*TranscriptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptevent.Table, sqlgraph.NewFieldSpec(transcriptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(transcriptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(transcriptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(transcriptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(transcriptevent.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Speaker(); ok {
		_spec.SetField(transcriptevent.FieldSpeaker, field.TypeString, value)
		_node.Speaker = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(transcriptevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(transcriptevent.FieldText, field.TypeString, value)
		_node.Text = value
	}
	return _node, _spec
}

// TranscriptEventCreateBulk is the builder for creating many TranscriptEvent entities in bulk.
type TranscriptEventCreateBulk struct {
	config
	err      error
	builders []*TranscriptEventCreate
}

// Save creates the TranscriptEvent entities in the database.
func (_c *TranscriptEventCreateBulk) Save(ctx context.Context) ([]*TranscriptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptEventMutation)
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
func (_c *TranscriptEventCreateBulk) SaveX(ctx context.Context) []*TranscriptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
