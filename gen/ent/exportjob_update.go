// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/calebmartins/exportq/gen/ent/exportjob"
	"github.com/calebmartins/exportq/gen/ent/predicate"
)

// ExportJobUpdate is the builder for updating ExportJob entities.
type ExportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExportJobMutation
}

// Where appends a list predicates to the ExportJobUpdate builder.
func (_u *ExportJobUpdate) Where(ps ...predicate.ExportJob) *ExportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExportJobUpdate) SetPriority(v int) *ExportJobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExportJobUpdate) SetNillablePriority(v *int) *ExportJobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExportJobUpdate) AddPriority(v int) *ExportJobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExportJobUpdate) SetStatus(v string) *ExportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExportJobUpdate) SetNillableStatus(v *string) *ExportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExportJobUpdate) SetPayload(v json.RawMessage) *ExportJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ExportJobUpdate) AppendPayload(v json.RawMessage) *ExportJobUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ExportJobUpdate) ClearPayload() *ExportJobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetResult sets the "result" field.
func (_u *ExportJobUpdate) SetResult(v json.RawMessage) *ExportJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExportJobUpdate) AppendResult(v json.RawMessage) *ExportJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExportJobUpdate) ClearResult() *ExportJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExportJobUpdate) SetRetryCount(v int) *ExportJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExportJobUpdate) SetNillableRetryCount(v *int) *ExportJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExportJobUpdate) AddRetryCount(v int) *ExportJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ExportJobUpdate) SetLastError(v string) *ExportJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ExportJobUpdate) SetNillableLastError(v *string) *ExportJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ExportJobUpdate) ClearLastError() *ExportJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExportJobUpdate) SetStartedAt(v time.Time) *ExportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExportJobUpdate) SetNillableStartedAt(v *time.Time) *ExportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExportJobUpdate) ClearStartedAt() *ExportJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExportJobUpdate) SetFinishedAt(v time.Time) *ExportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExportJobUpdate) SetNillableFinishedAt(v *time.Time) *ExportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExportJobUpdate) ClearFinishedAt() *ExportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ExportJobMutation object of the builder.
func (_u *ExportJobUpdate) Mutation() *ExportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := exportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exportjob.Table, exportjob.Columns, sqlgraph.NewFieldSpec(exportjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(exportjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(exportjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exportjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(exportjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exportjob.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(exportjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(exportjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exportjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(exportjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(exportjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(exportjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(exportjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(exportjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(exportjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(exportjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(exportjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(exportjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exportjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExportJobUpdateOne is the builder for updating a single ExportJob entity.
type ExportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExportJobMutation
}

// SetPriority sets the "priority" field.
func (_u *ExportJobUpdateOne) SetPriority(v int) *ExportJobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExportJobUpdateOne) SetNillablePriority(v *int) *ExportJobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExportJobUpdateOne) AddPriority(v int) *ExportJobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExportJobUpdateOne) SetStatus(v string) *ExportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExportJobUpdateOne) SetNillableStatus(v *string) *ExportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExportJobUpdateOne) SetPayload(v json.RawMessage) *ExportJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ExportJobUpdateOne) AppendPayload(v json.RawMessage) *ExportJobUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ExportJobUpdateOne) ClearPayload() *ExportJobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetResult sets the "result" field.
func (_u *ExportJobUpdateOne) SetResult(v json.RawMessage) *ExportJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExportJobUpdateOne) AppendResult(v json.RawMessage) *ExportJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ExportJobUpdateOne) ClearResult() *ExportJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ExportJobUpdateOne) SetRetryCount(v int) *ExportJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ExportJobUpdateOne) SetNillableRetryCount(v *int) *ExportJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ExportJobUpdateOne) AddRetryCount(v int) *ExportJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ExportJobUpdateOne) SetLastError(v string) *ExportJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ExportJobUpdateOne) SetNillableLastError(v *string) *ExportJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ExportJobUpdateOne) ClearLastError() *ExportJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExportJobUpdateOne) SetStartedAt(v time.Time) *ExportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExportJobUpdateOne) ClearStartedAt() *ExportJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExportJobUpdateOne) SetFinishedAt(v time.Time) *ExportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExportJobUpdateOne) ClearFinishedAt() *ExportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ExportJobMutation object of the builder.
func (_u *ExportJobUpdateOne) Mutation() *ExportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExportJobUpdate builder.
func (_u *ExportJobUpdateOne) Where(ps ...predicate.ExportJob) *ExportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExportJobUpdateOne) Select(field string, fields ...string) *ExportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExportJob entity.
func (_u *ExportJobUpdateOne) Save(ctx context.Context) (*ExportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportJobUpdateOne) SaveX(ctx context.Context) *ExportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := exportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportJobUpdateOne) sqlSave(ctx context.Context) (_node *ExportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exportjob.Table, exportjob.Columns, sqlgraph.NewFieldSpec(exportjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exportjob.FieldID)
		for _, f := range fields {
			if !exportjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exportjob.FieldID {
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
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(exportjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(exportjob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exportjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(exportjob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exportjob.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(exportjob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(exportjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exportjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(exportjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(exportjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(exportjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(exportjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(exportjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(exportjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(exportjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(exportjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(exportjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &ExportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exportjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
