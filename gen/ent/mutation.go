// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/calebmartins/exportq/gen/ent/exportjob"
	"github.com/calebmartins/exportq/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExportJob = "ExportJob"
)

// ExportJobMutation represents an operation that mutates the ExportJob nodes in the graph.
type ExportJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	priority       *int
	addpriority    *int
	status         *string
	payload        *json.RawMessage
	appendpayload  json.RawMessage
	result         *json.RawMessage
	appendresult   json.RawMessage
	retry_count    *int
	addretry_count *int
	last_error     *string
	created_at     *time.Time
	started_at     *time.Time
	finished_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ExportJob, error)
	predicates     []predicate.ExportJob
}

var _ ent.Mutation = (*ExportJobMutation)(nil)

// exportjobOption allows management of the mutation configuration using functional options.
type exportjobOption func(*ExportJobMutation)

// newExportJobMutation creates new mutation for the ExportJob entity.
func newExportJobMutation(c config, op Op, opts ...exportjobOption) *ExportJobMutation {
	m := &ExportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExportJobID sets the ID field of the mutation.
func withExportJobID(id uuid.UUID) exportjobOption {
	return func(m *ExportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExportJob
		)
		m.oldValue = func(ctx context.Context) (*ExportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExportJob sets the old ExportJob of the mutation.
func withExportJob(node *ExportJob) exportjobOption {
	return func(m *ExportJobMutation) {
		m.oldValue = func(context.Context) (*ExportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExportJob entities.
func (m *ExportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPriority sets the "priority" field.
func (m *ExportJobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ExportJobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ExportJobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ExportJobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ExportJobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *ExportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExportJobMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *ExportJobMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ExportJobMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *ExportJobMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *ExportJobMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *ExportJobMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[exportjob.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ExportJobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[exportjob.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ExportJobMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, exportjob.FieldPayload)
}

// SetResult sets the "result" field.
func (m *ExportJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ExportJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *ExportJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ExportJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ExportJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[exportjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ExportJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[exportjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ExportJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, exportjob.FieldResult)
}

// SetRetryCount sets the "retry_count" field.
func (m *ExportJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ExportJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ExportJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ExportJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ExportJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastError sets the "last_error" field.
func (m *ExportJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ExportJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ExportJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[exportjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ExportJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[exportjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ExportJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, exportjob.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExportJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExportJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExportJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExportJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[exportjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExportJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[exportjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExportJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, exportjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExportJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExportJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExportJob entity.
// If the ExportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExportJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[exportjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExportJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[exportjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExportJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, exportjob.FieldFinishedAt)
}

// Where appends a list predicates to the ExportJobMutation builder.
func (m *ExportJobMutation) Where(ps ...predicate.ExportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExportJob).
func (m *ExportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExportJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.priority != nil {
		fields = append(fields, exportjob.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, exportjob.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, exportjob.FieldPayload)
	}
	if m.result != nil {
		fields = append(fields, exportjob.FieldResult)
	}
	if m.retry_count != nil {
		fields = append(fields, exportjob.FieldRetryCount)
	}
	if m.last_error != nil {
		fields = append(fields, exportjob.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, exportjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, exportjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, exportjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exportjob.FieldPriority:
		return m.Priority()
	case exportjob.FieldStatus:
		return m.Status()
	case exportjob.FieldPayload:
		return m.Payload()
	case exportjob.FieldResult:
		return m.Result()
	case exportjob.FieldRetryCount:
		return m.RetryCount()
	case exportjob.FieldLastError:
		return m.LastError()
	case exportjob.FieldCreatedAt:
		return m.CreatedAt()
	case exportjob.FieldStartedAt:
		return m.StartedAt()
	case exportjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exportjob.FieldPriority:
		return m.OldPriority(ctx)
	case exportjob.FieldStatus:
		return m.OldStatus(ctx)
	case exportjob.FieldPayload:
		return m.OldPayload(ctx)
	case exportjob.FieldResult:
		return m.OldResult(ctx)
	case exportjob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case exportjob.FieldLastError:
		return m.OldLastError(ctx)
	case exportjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exportjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case exportjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exportjob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case exportjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case exportjob.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case exportjob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case exportjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case exportjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case exportjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exportjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case exportjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExportJobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, exportjob.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, exportjob.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exportjob.FieldPriority:
		return m.AddedPriority()
	case exportjob.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exportjob.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case exportjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ExportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exportjob.FieldPayload) {
		fields = append(fields, exportjob.FieldPayload)
	}
	if m.FieldCleared(exportjob.FieldResult) {
		fields = append(fields, exportjob.FieldResult)
	}
	if m.FieldCleared(exportjob.FieldLastError) {
		fields = append(fields, exportjob.FieldLastError)
	}
	if m.FieldCleared(exportjob.FieldStartedAt) {
		fields = append(fields, exportjob.FieldStartedAt)
	}
	if m.FieldCleared(exportjob.FieldFinishedAt) {
		fields = append(fields, exportjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExportJobMutation) ClearField(name string) error {
	switch name {
	case exportjob.FieldPayload:
		m.ClearPayload()
		return nil
	case exportjob.FieldResult:
		m.ClearResult()
		return nil
	case exportjob.FieldLastError:
		m.ClearLastError()
		return nil
	case exportjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case exportjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExportJobMutation) ResetField(name string) error {
	switch name {
	case exportjob.FieldPriority:
		m.ResetPriority()
		return nil
	case exportjob.FieldStatus:
		m.ResetStatus()
		return nil
	case exportjob.FieldPayload:
		m.ResetPayload()
		return nil
	case exportjob.FieldResult:
		m.ResetResult()
		return nil
	case exportjob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case exportjob.FieldLastError:
		m.ResetLastError()
		return nil
	case exportjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exportjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case exportjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExportJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExportJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExportJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExportJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExportJob edge %s", name)
}
