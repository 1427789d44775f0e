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
	"github.com/saramhq/aegis/ent/predicate"
	"github.com/saramhq/aegis/ent/renderjob"
)

// RenderJobUpdate is the builder for updating RenderJob entities.
type RenderJobUpdate struct {
	config
	hooks    []Hook
	mutation *RenderJobMutation
}

// Where appends a list predicates to the RenderJobUpdate builder.
func (_u *RenderJobUpdate) Where(ps ...predicate.RenderJob) *RenderJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *RenderJobUpdate) SetVideoID(v string) *RenderJobUpdate {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableVideoID(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetScriptID sets the "script_id" field.
func (_u *RenderJobUpdate) SetScriptID(v string) *RenderJobUpdate {
	_u.mutation.SetScriptID(v)
	return _u
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableScriptID(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetScriptID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RenderJobUpdate) SetStatus(v renderjob.Status) *RenderJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableStatus(v *renderjob.Status) *RenderJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *RenderJobUpdate) SetStep(v renderjob.Step) *RenderJobUpdate {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableStep(v *renderjob.Step) *RenderJobUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// ClearStep clears the value of the "step" field.
func (_u *RenderJobUpdate) ClearStep() *RenderJobUpdate {
	_u.mutation.ClearStep()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *RenderJobUpdate) SetProgress(v int) *RenderJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableProgress(v *int) *RenderJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *RenderJobUpdate) AddProgress(v int) *RenderJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *RenderJobUpdate) SetMessage(v string) *RenderJobUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableMessage(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *RenderJobUpdate) ClearMessage() *RenderJobUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RenderJobUpdate) SetErrorCode(v string) *RenderJobUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableErrorCode(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RenderJobUpdate) ClearErrorCode() *RenderJobUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RenderJobUpdate) SetErrorMessage(v string) *RenderJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableErrorMessage(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RenderJobUpdate) ClearErrorMessage() *RenderJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAssets sets the "assets" field.
func (_u *RenderJobUpdate) SetAssets(v map[string]string) *RenderJobUpdate {
	_u.mutation.SetAssets(v)
	return _u
}

// ClearAssets clears the value of the "assets" field.
func (_u *RenderJobUpdate) ClearAssets() *RenderJobUpdate {
	_u.mutation.ClearAssets()
	return _u
}

// SetRenderSpecSnapshot sets the "render_spec_snapshot" field.
func (_u *RenderJobUpdate) SetRenderSpecSnapshot(v map[string]interface{}) *RenderJobUpdate {
	_u.mutation.SetRenderSpecSnapshot(v)
	return _u
}

// ClearRenderSpecSnapshot clears the value of the "render_spec_snapshot" field.
func (_u *RenderJobUpdate) ClearRenderSpecSnapshot() *RenderJobUpdate {
	_u.mutation.ClearRenderSpecSnapshot()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RenderJobUpdate) SetCreatedBy(v string) *RenderJobUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableCreatedBy(v *string) *RenderJobUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *RenderJobUpdate) ClearCreatedBy() *RenderJobUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RenderJobUpdate) SetUpdatedAt(v time.Time) *RenderJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RenderJobUpdate) SetStartedAt(v time.Time) *RenderJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableStartedAt(v *time.Time) *RenderJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RenderJobUpdate) ClearStartedAt() *RenderJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RenderJobUpdate) SetFinishedAt(v time.Time) *RenderJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RenderJobUpdate) SetNillableFinishedAt(v *time.Time) *RenderJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RenderJobUpdate) ClearFinishedAt() *RenderJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the RenderJobMutation object of the builder.
func (_u *RenderJobUpdate) Mutation() *RenderJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RenderJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RenderJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RenderJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RenderJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RenderJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := renderjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RenderJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := renderjob.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "RenderJob.step": %w`, err)}
		}
	}
	return nil
}

func (_u *RenderJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(renderjob.Table, renderjob.Columns, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(renderjob.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptID(); ok {
		_spec.SetField(renderjob.FieldScriptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(renderjob.FieldStep, field.TypeEnum, value)
	}
	if _u.mutation.StepCleared() {
		_spec.ClearField(renderjob.FieldStep, field.TypeEnum)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(renderjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(renderjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(renderjob.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(renderjob.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(renderjob.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(renderjob.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(renderjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(renderjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Assets(); ok {
		_spec.SetField(renderjob.FieldAssets, field.TypeJSON, value)
	}
	if _u.mutation.AssetsCleared() {
		_spec.ClearField(renderjob.FieldAssets, field.TypeJSON)
	}
	if value, ok := _u.mutation.RenderSpecSnapshot(); ok {
		_spec.SetField(renderjob.FieldRenderSpecSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.RenderSpecSnapshotCleared() {
		_spec.ClearField(renderjob.FieldRenderSpecSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(renderjob.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(renderjob.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(renderjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(renderjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(renderjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(renderjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(renderjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{renderjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RenderJobUpdateOne is the builder for updating a single RenderJob entity.
type RenderJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RenderJobMutation
}

// SetVideoID sets the "video_id" field.
func (_u *RenderJobUpdateOne) SetVideoID(v string) *RenderJobUpdateOne {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableVideoID(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetScriptID sets the "script_id" field.
func (_u *RenderJobUpdateOne) SetScriptID(v string) *RenderJobUpdateOne {
	_u.mutation.SetScriptID(v)
	return _u
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableScriptID(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetScriptID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RenderJobUpdateOne) SetStatus(v renderjob.Status) *RenderJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableStatus(v *renderjob.Status) *RenderJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *RenderJobUpdateOne) SetStep(v renderjob.Step) *RenderJobUpdateOne {
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableStep(v *renderjob.Step) *RenderJobUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// ClearStep clears the value of the "step" field.
func (_u *RenderJobUpdateOne) ClearStep() *RenderJobUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *RenderJobUpdateOne) SetProgress(v int) *RenderJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableProgress(v *int) *RenderJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *RenderJobUpdateOne) AddProgress(v int) *RenderJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *RenderJobUpdateOne) SetMessage(v string) *RenderJobUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableMessage(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *RenderJobUpdateOne) ClearMessage() *RenderJobUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RenderJobUpdateOne) SetErrorCode(v string) *RenderJobUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableErrorCode(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RenderJobUpdateOne) ClearErrorCode() *RenderJobUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RenderJobUpdateOne) SetErrorMessage(v string) *RenderJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableErrorMessage(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RenderJobUpdateOne) ClearErrorMessage() *RenderJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAssets sets the "assets" field.
func (_u *RenderJobUpdateOne) SetAssets(v map[string]string) *RenderJobUpdateOne {
	_u.mutation.SetAssets(v)
	return _u
}

// ClearAssets clears the value of the "assets" field.
func (_u *RenderJobUpdateOne) ClearAssets() *RenderJobUpdateOne {
	_u.mutation.ClearAssets()
	return _u
}

// SetRenderSpecSnapshot sets the "render_spec_snapshot" field.
func (_u *RenderJobUpdateOne) SetRenderSpecSnapshot(v map[string]interface{}) *RenderJobUpdateOne {
	_u.mutation.SetRenderSpecSnapshot(v)
	return _u
}

// ClearRenderSpecSnapshot clears the value of the "render_spec_snapshot" field.
func (_u *RenderJobUpdateOne) ClearRenderSpecSnapshot() *RenderJobUpdateOne {
	_u.mutation.ClearRenderSpecSnapshot()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RenderJobUpdateOne) SetCreatedBy(v string) *RenderJobUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableCreatedBy(v *string) *RenderJobUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *RenderJobUpdateOne) ClearCreatedBy() *RenderJobUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RenderJobUpdateOne) SetUpdatedAt(v time.Time) *RenderJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RenderJobUpdateOne) SetStartedAt(v time.Time) *RenderJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableStartedAt(v *time.Time) *RenderJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RenderJobUpdateOne) ClearStartedAt() *RenderJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RenderJobUpdateOne) SetFinishedAt(v time.Time) *RenderJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RenderJobUpdateOne) SetNillableFinishedAt(v *time.Time) *RenderJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RenderJobUpdateOne) ClearFinishedAt() *RenderJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the RenderJobMutation object of the builder.
func (_u *RenderJobUpdateOne) Mutation() *RenderJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the RenderJobUpdate builder.
func (_u *RenderJobUpdateOne) Where(ps ...predicate.RenderJob) *RenderJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RenderJobUpdateOne) Select(field string, fields ...string) *RenderJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RenderJob entity.
func (_u *RenderJobUpdateOne) Save(ctx context.Context) (*RenderJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RenderJobUpdateOne) SaveX(ctx context.Context) *RenderJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RenderJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RenderJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RenderJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := renderjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RenderJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Step(); ok {
		if err := renderjob.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "RenderJob.step": %w`, err)}
		}
	}
	return nil
}

func (_u *RenderJobUpdateOne) sqlSave(ctx context.Context) (_node *RenderJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(renderjob.Table, renderjob.Columns, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RenderJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, renderjob.FieldID)
		for _, f := range fields {
			if !renderjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != renderjob.FieldID {
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
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(renderjob.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptID(); ok {
		_spec.SetField(renderjob.FieldScriptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(renderjob.FieldStep, field.TypeEnum, value)
	}
	if _u.mutation.StepCleared() {
		_spec.ClearField(renderjob.FieldStep, field.TypeEnum)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(renderjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(renderjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(renderjob.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(renderjob.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(renderjob.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(renderjob.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(renderjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(renderjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Assets(); ok {
		_spec.SetField(renderjob.FieldAssets, field.TypeJSON, value)
	}
	if _u.mutation.AssetsCleared() {
		_spec.ClearField(renderjob.FieldAssets, field.TypeJSON)
	}
	if value, ok := _u.mutation.RenderSpecSnapshot(); ok {
		_spec.SetField(renderjob.FieldRenderSpecSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.RenderSpecSnapshotCleared() {
		_spec.ClearField(renderjob.FieldRenderSpecSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(renderjob.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(renderjob.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(renderjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(renderjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(renderjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(renderjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(renderjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &RenderJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{renderjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
