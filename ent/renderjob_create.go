// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/saramhq/aegis/ent/renderjob"
)

// RenderJobCreate is the builder for creating a RenderJob entity.
type RenderJobCreate struct {
	config
	mutation *RenderJobMutation
	hooks    []Hook
}

// SetVideoID sets the "video_id" field.
func (_c *RenderJobCreate) SetVideoID(v string) *RenderJobCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetScriptID sets the "script_id" field.
func (_c *RenderJobCreate) SetScriptID(v string) *RenderJobCreate {
	_c.mutation.SetScriptID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RenderJobCreate) SetStatus(v renderjob.Status) *RenderJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableStatus(v *renderjob.Status) *RenderJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStep sets the "step" field.
func (_c *RenderJobCreate) SetStep(v renderjob.Step) *RenderJobCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableStep(v *renderjob.Step) *RenderJobCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *RenderJobCreate) SetProgress(v int) *RenderJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableProgress(v *int) *RenderJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *RenderJobCreate) SetMessage(v string) *RenderJobCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableMessage(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *RenderJobCreate) SetErrorCode(v string) *RenderJobCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableErrorCode(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RenderJobCreate) SetErrorMessage(v string) *RenderJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableErrorMessage(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAssets sets the "assets" field.
func (_c *RenderJobCreate) SetAssets(v map[string]string) *RenderJobCreate {
	_c.mutation.SetAssets(v)
	return _c
}

// SetRenderSpecSnapshot sets the "render_spec_snapshot" field.
func (_c *RenderJobCreate) SetRenderSpecSnapshot(v map[string]interface{}) *RenderJobCreate {
	_c.mutation.SetRenderSpecSnapshot(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *RenderJobCreate) SetCreatedBy(v string) *RenderJobCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableCreatedBy(v *string) *RenderJobCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RenderJobCreate) SetCreatedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableCreatedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RenderJobCreate) SetUpdatedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableUpdatedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RenderJobCreate) SetStartedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableStartedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RenderJobCreate) SetFinishedAt(v time.Time) *RenderJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RenderJobCreate) SetNillableFinishedAt(v *time.Time) *RenderJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RenderJobCreate) SetID(v string) *RenderJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RenderJobMutation object of the builder.
func (_c *RenderJobCreate) Mutation() *RenderJobMutation {
	return _c.mutation
}

// Save creates the RenderJob in the database.
func (_c *RenderJobCreate) Save(ctx context.Context) (*RenderJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RenderJobCreate) SaveX(ctx context.Context) *RenderJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RenderJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RenderJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RenderJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := renderjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := renderjob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := renderjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := renderjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RenderJobCreate) check() error {
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "RenderJob.video_id"`)}
	}
	if _, ok := _c.mutation.ScriptID(); !ok {
		return &ValidationError{Name: "script_id", err: errors.New(`ent: missing required field "RenderJob.script_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RenderJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := renderjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RenderJob.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Step(); ok {
		if err := renderjob.StepValidator(v); err != nil {
			return &ValidationError{Name: "step", err: fmt.Errorf(`ent: validator failed for field "RenderJob.step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "RenderJob.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RenderJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RenderJob.updated_at"`)}
	}
	return nil
}

func (_c *RenderJobCreate) sqlSave(ctx context.Context) (*RenderJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RenderJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RenderJobCreate) createSpec() (*RenderJob, *sqlgraph.CreateSpec) {
	var (
		_node = &RenderJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(renderjob.Table, sqlgraph.NewFieldSpec(renderjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(renderjob.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.ScriptID(); ok {
		_spec.SetField(renderjob.FieldScriptID, field.TypeString, value)
		_node.ScriptID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(renderjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(renderjob.FieldStep, field.TypeEnum, value)
		_node.Step = &value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(renderjob.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(renderjob.FieldMessage, field.TypeString, value)
		_node.Message = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(renderjob.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(renderjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Assets(); ok {
		_spec.SetField(renderjob.FieldAssets, field.TypeJSON, value)
		_node.Assets = value
	}
	if value, ok := _c.mutation.RenderSpecSnapshot(); ok {
		_spec.SetField(renderjob.FieldRenderSpecSnapshot, field.TypeJSON, value)
		_node.RenderSpecSnapshot = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(renderjob.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(renderjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(renderjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(renderjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(renderjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// RenderJobCreateBulk is the builder for creating many RenderJob entities in bulk.
type RenderJobCreateBulk struct {
	config
	err      error
	builders []*RenderJobCreate
}

// Save creates the RenderJob entities in the database.
func (_c *RenderJobCreateBulk) Save(ctx context.Context) ([]*RenderJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RenderJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RenderJobMutation)
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
func (_c *RenderJobCreateBulk) SaveX(ctx context.Context) []*RenderJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RenderJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RenderJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
