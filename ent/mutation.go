// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/saramhq/aegis/ent/predicate"
	"github.com/saramhq/aegis/ent/renderjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRenderJob = "RenderJob"
)

// RenderJobMutation represents an operation that mutates the RenderJob nodes in the graph.
type RenderJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	video_id             *string
	script_id            *string
	status               *renderjob.Status
	step                 *renderjob.Step
	progress             *int
	addprogress          *int
	message              *string
	error_code           *string
	error_message        *string
	assets               *map[string]string
	render_spec_snapshot *map[string]interface{}
	created_by           *string
	created_at           *time.Time
	updated_at           *time.Time
	started_at           *time.Time
	finished_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*RenderJob, error)
	predicates           []predicate.RenderJob
}

var _ ent.Mutation = (*RenderJobMutation)(nil)

// renderjobOption allows management of the mutation configuration using functional options.
type renderjobOption func(*RenderJobMutation)

// newRenderJobMutation creates new mutation for the RenderJob entity.
func newRenderJobMutation(c config, op Op, opts ...renderjobOption) *RenderJobMutation {
	m := &RenderJobMutation{
		config:        c,
		op:            op,
		typ:           TypeRenderJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRenderJobID sets the ID field of the mutation.
func withRenderJobID(id string) renderjobOption {
	return func(m *RenderJobMutation) {
		var (
			err   error
			once  sync.Once
			value *RenderJob
		)
		m.oldValue = func(ctx context.Context) (*RenderJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RenderJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRenderJob sets the old RenderJob of the mutation.
func withRenderJob(node *RenderJob) renderjobOption {
	return func(m *RenderJobMutation) {
		m.oldValue = func(context.Context) (*RenderJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RenderJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RenderJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RenderJob entities.
func (m *RenderJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RenderJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RenderJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RenderJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVideoID sets the "video_id" field.
func (m *RenderJobMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *RenderJobMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *RenderJobMutation) ResetVideoID() {
	m.video_id = nil
}

// SetScriptID sets the "script_id" field.
func (m *RenderJobMutation) SetScriptID(s string) {
	m.script_id = &s
}

// ScriptID returns the value of the "script_id" field in the mutation.
func (m *RenderJobMutation) ScriptID() (r string, exists bool) {
	v := m.script_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptID returns the old "script_id" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldScriptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptID: %w", err)
	}
	return oldValue.ScriptID, nil
}

// ResetScriptID resets all changes to the "script_id" field.
func (m *RenderJobMutation) ResetScriptID() {
	m.script_id = nil
}

// SetStatus sets the "status" field.
func (m *RenderJobMutation) SetStatus(r renderjob.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RenderJobMutation) Status() (r renderjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldStatus(ctx context.Context) (v renderjob.Status, err error) {
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
func (m *RenderJobMutation) ResetStatus() {
	m.status = nil
}

// SetStep sets the "step" field.
func (m *RenderJobMutation) SetStep(r renderjob.Step) {
	m.step = &r
}

// Step returns the value of the "step" field in the mutation.
func (m *RenderJobMutation) Step() (r renderjob.Step, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldStep(ctx context.Context) (v *renderjob.Step, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ClearStep clears the value of the "step" field.
func (m *RenderJobMutation) ClearStep() {
	m.step = nil
	m.clearedFields[renderjob.FieldStep] = struct{}{}
}

// StepCleared returns if the "step" field was cleared in this mutation.
func (m *RenderJobMutation) StepCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldStep]
	return ok
}

// ResetStep resets all changes to the "step" field.
func (m *RenderJobMutation) ResetStep() {
	m.step = nil
	delete(m.clearedFields, renderjob.FieldStep)
}

// SetProgress sets the "progress" field.
func (m *RenderJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *RenderJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *RenderJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *RenderJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *RenderJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetMessage sets the "message" field.
func (m *RenderJobMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *RenderJobMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *RenderJobMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[renderjob.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *RenderJobMutation) MessageCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *RenderJobMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, renderjob.FieldMessage)
}

// SetErrorCode sets the "error_code" field.
func (m *RenderJobMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *RenderJobMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *RenderJobMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[renderjob.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *RenderJobMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *RenderJobMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, renderjob.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *RenderJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RenderJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RenderJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[renderjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RenderJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RenderJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, renderjob.FieldErrorMessage)
}

// SetAssets sets the "assets" field.
func (m *RenderJobMutation) SetAssets(value map[string]string) {
	m.assets = &value
}

// Assets returns the value of the "assets" field in the mutation.
func (m *RenderJobMutation) Assets() (r map[string]string, exists bool) {
	v := m.assets
	if v == nil {
		return
	}
	return *v, true
}

// OldAssets returns the old "assets" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldAssets(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssets: %w", err)
	}
	return oldValue.Assets, nil
}

// ClearAssets clears the value of the "assets" field.
func (m *RenderJobMutation) ClearAssets() {
	m.assets = nil
	m.clearedFields[renderjob.FieldAssets] = struct{}{}
}

// AssetsCleared returns if the "assets" field was cleared in this mutation.
func (m *RenderJobMutation) AssetsCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldAssets]
	return ok
}

// ResetAssets resets all changes to the "assets" field.
func (m *RenderJobMutation) ResetAssets() {
	m.assets = nil
	delete(m.clearedFields, renderjob.FieldAssets)
}

// SetRenderSpecSnapshot sets the "render_spec_snapshot" field.
func (m *RenderJobMutation) SetRenderSpecSnapshot(value map[string]interface{}) {
	m.render_spec_snapshot = &value
}

// RenderSpecSnapshot returns the value of the "render_spec_snapshot" field in the mutation.
func (m *RenderJobMutation) RenderSpecSnapshot() (r map[string]interface{}, exists bool) {
	v := m.render_spec_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldRenderSpecSnapshot returns the old "render_spec_snapshot" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldRenderSpecSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRenderSpecSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRenderSpecSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRenderSpecSnapshot: %w", err)
	}
	return oldValue.RenderSpecSnapshot, nil
}

// ClearRenderSpecSnapshot clears the value of the "render_spec_snapshot" field.
func (m *RenderJobMutation) ClearRenderSpecSnapshot() {
	m.render_spec_snapshot = nil
	m.clearedFields[renderjob.FieldRenderSpecSnapshot] = struct{}{}
}

// RenderSpecSnapshotCleared returns if the "render_spec_snapshot" field was cleared in this mutation.
func (m *RenderJobMutation) RenderSpecSnapshotCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldRenderSpecSnapshot]
	return ok
}

// ResetRenderSpecSnapshot resets all changes to the "render_spec_snapshot" field.
func (m *RenderJobMutation) ResetRenderSpecSnapshot() {
	m.render_spec_snapshot = nil
	delete(m.clearedFields, renderjob.FieldRenderSpecSnapshot)
}

// SetCreatedBy sets the "created_by" field.
func (m *RenderJobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RenderJobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *RenderJobMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[renderjob.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *RenderJobMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RenderJobMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, renderjob.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *RenderJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RenderJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RenderJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RenderJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RenderJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RenderJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RenderJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RenderJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *RenderJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[renderjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RenderJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RenderJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, renderjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RenderJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RenderJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the RenderJob entity.
// If the RenderJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RenderJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *RenderJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[renderjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RenderJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[renderjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RenderJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, renderjob.FieldFinishedAt)
}

// Where appends a list predicates to the RenderJobMutation builder.
func (m *RenderJobMutation) Where(ps ...predicate.RenderJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RenderJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RenderJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RenderJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RenderJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RenderJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RenderJob).
func (m *RenderJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RenderJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.video_id != nil {
		fields = append(fields, renderjob.FieldVideoID)
	}
	if m.script_id != nil {
		fields = append(fields, renderjob.FieldScriptID)
	}
	if m.status != nil {
		fields = append(fields, renderjob.FieldStatus)
	}
	if m.step != nil {
		fields = append(fields, renderjob.FieldStep)
	}
	if m.progress != nil {
		fields = append(fields, renderjob.FieldProgress)
	}
	if m.message != nil {
		fields = append(fields, renderjob.FieldMessage)
	}
	if m.error_code != nil {
		fields = append(fields, renderjob.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, renderjob.FieldErrorMessage)
	}
	if m.assets != nil {
		fields = append(fields, renderjob.FieldAssets)
	}
	if m.render_spec_snapshot != nil {
		fields = append(fields, renderjob.FieldRenderSpecSnapshot)
	}
	if m.created_by != nil {
		fields = append(fields, renderjob.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, renderjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, renderjob.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, renderjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, renderjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RenderJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case renderjob.FieldVideoID:
		return m.VideoID()
	case renderjob.FieldScriptID:
		return m.ScriptID()
	case renderjob.FieldStatus:
		return m.Status()
	case renderjob.FieldStep:
		return m.Step()
	case renderjob.FieldProgress:
		return m.Progress()
	case renderjob.FieldMessage:
		return m.Message()
	case renderjob.FieldErrorCode:
		return m.ErrorCode()
	case renderjob.FieldErrorMessage:
		return m.ErrorMessage()
	case renderjob.FieldAssets:
		return m.Assets()
	case renderjob.FieldRenderSpecSnapshot:
		return m.RenderSpecSnapshot()
	case renderjob.FieldCreatedBy:
		return m.CreatedBy()
	case renderjob.FieldCreatedAt:
		return m.CreatedAt()
	case renderjob.FieldUpdatedAt:
		return m.UpdatedAt()
	case renderjob.FieldStartedAt:
		return m.StartedAt()
	case renderjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RenderJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case renderjob.FieldVideoID:
		return m.OldVideoID(ctx)
	case renderjob.FieldScriptID:
		return m.OldScriptID(ctx)
	case renderjob.FieldStatus:
		return m.OldStatus(ctx)
	case renderjob.FieldStep:
		return m.OldStep(ctx)
	case renderjob.FieldProgress:
		return m.OldProgress(ctx)
	case renderjob.FieldMessage:
		return m.OldMessage(ctx)
	case renderjob.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case renderjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case renderjob.FieldAssets:
		return m.OldAssets(ctx)
	case renderjob.FieldRenderSpecSnapshot:
		return m.OldRenderSpecSnapshot(ctx)
	case renderjob.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case renderjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case renderjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case renderjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case renderjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RenderJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RenderJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case renderjob.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case renderjob.FieldScriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptID(v)
		return nil
	case renderjob.FieldStatus:
		v, ok := value.(renderjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case renderjob.FieldStep:
		v, ok := value.(renderjob.Step)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case renderjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case renderjob.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case renderjob.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case renderjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case renderjob.FieldAssets:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssets(v)
		return nil
	case renderjob.FieldRenderSpecSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRenderSpecSnapshot(v)
		return nil
	case renderjob.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case renderjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case renderjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case renderjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case renderjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RenderJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RenderJobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, renderjob.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RenderJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case renderjob.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RenderJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case renderjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown RenderJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RenderJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(renderjob.FieldStep) {
		fields = append(fields, renderjob.FieldStep)
	}
	if m.FieldCleared(renderjob.FieldMessage) {
		fields = append(fields, renderjob.FieldMessage)
	}
	if m.FieldCleared(renderjob.FieldErrorCode) {
		fields = append(fields, renderjob.FieldErrorCode)
	}
	if m.FieldCleared(renderjob.FieldErrorMessage) {
		fields = append(fields, renderjob.FieldErrorMessage)
	}
	if m.FieldCleared(renderjob.FieldAssets) {
		fields = append(fields, renderjob.FieldAssets)
	}
	if m.FieldCleared(renderjob.FieldRenderSpecSnapshot) {
		fields = append(fields, renderjob.FieldRenderSpecSnapshot)
	}
	if m.FieldCleared(renderjob.FieldCreatedBy) {
		fields = append(fields, renderjob.FieldCreatedBy)
	}
	if m.FieldCleared(renderjob.FieldStartedAt) {
		fields = append(fields, renderjob.FieldStartedAt)
	}
	if m.FieldCleared(renderjob.FieldFinishedAt) {
		fields = append(fields, renderjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RenderJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RenderJobMutation) ClearField(name string) error {
	switch name {
	case renderjob.FieldStep:
		m.ClearStep()
		return nil
	case renderjob.FieldMessage:
		m.ClearMessage()
		return nil
	case renderjob.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case renderjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case renderjob.FieldAssets:
		m.ClearAssets()
		return nil
	case renderjob.FieldRenderSpecSnapshot:
		m.ClearRenderSpecSnapshot()
		return nil
	case renderjob.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case renderjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case renderjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown RenderJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RenderJobMutation) ResetField(name string) error {
	switch name {
	case renderjob.FieldVideoID:
		m.ResetVideoID()
		return nil
	case renderjob.FieldScriptID:
		m.ResetScriptID()
		return nil
	case renderjob.FieldStatus:
		m.ResetStatus()
		return nil
	case renderjob.FieldStep:
		m.ResetStep()
		return nil
	case renderjob.FieldProgress:
		m.ResetProgress()
		return nil
	case renderjob.FieldMessage:
		m.ResetMessage()
		return nil
	case renderjob.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case renderjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case renderjob.FieldAssets:
		m.ResetAssets()
		return nil
	case renderjob.FieldRenderSpecSnapshot:
		m.ResetRenderSpecSnapshot()
		return nil
	case renderjob.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case renderjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case renderjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case renderjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case renderjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown RenderJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RenderJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RenderJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RenderJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RenderJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RenderJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RenderJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RenderJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RenderJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RenderJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RenderJob edge %s", name)
}
