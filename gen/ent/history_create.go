// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ulieet/NeuroSoft/gen/ent/history"
	"github.com/ulieet/NeuroSoft/gen/ent/patient"
	"github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

// HistoryCreate is the builder for creating a History entity.
type HistoryCreate struct {
	config
	mutation *HistoryMutation
	hooks    []Hook
}

// SetPatientID sets the "patient_id" field.
func (_c *HistoryCreate) SetPatientID(v uuid.UUID) *HistoryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *HistoryCreate) SetNillablePatientID(v *uuid.UUID) *HistoryCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *HistoryCreate) SetFileName(v string) *HistoryCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *HistoryCreate) SetFormat(v string) *HistoryCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *HistoryCreate) SetStatus(v string) *HistoryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableStatus(v *string) *HistoryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *HistoryCreate) SetFingerprint(v string) *HistoryCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetSourceHash sets the "source_hash" field.
func (_c *HistoryCreate) SetSourceHash(v string) *HistoryCreate {
	_c.mutation.SetSourceHash(v)
	return _c
}

// SetDraft sets the "draft" field.
func (_c *HistoryCreate) SetDraft(v map[string]interface{}) *HistoryCreate {
	_c.mutation.SetDraft(v)
	return _c
}

// SetValidated sets the "validated" field.
func (_c *HistoryCreate) SetValidated(v map[string]interface{}) *HistoryCreate {
	_c.mutation.SetValidated(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *HistoryCreate) SetImportedAt(v time.Time) *HistoryCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableImportedAt(v *time.Time) *HistoryCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *HistoryCreate) SetValidatedAt(v time.Time) *HistoryCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableValidatedAt(v *time.Time) *HistoryCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HistoryCreate) SetUpdatedAt(v time.Time) *HistoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableUpdatedAt(v *time.Time) *HistoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HistoryCreate) SetID(v uuid.UUID) *HistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HistoryCreate) SetNillableID(v *uuid.UUID) *HistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *HistoryCreate) SetPatient(v *Patient) *HistoryCreate {
	return _c.SetPatientID(v.ID)
}

// AddFileIDs adds the "files" edge to the SourceFile entity by IDs.
func (_c *HistoryCreate) AddFileIDs(ids ...uuid.UUID) *HistoryCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the SourceFile entity.
func (_c *HistoryCreate) AddFiles(v ...*SourceFile) *HistoryCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the HistoryMutation object of the builder.
func (_c *HistoryCreate) Mutation() *HistoryMutation {
	return _c.mutation
}

// Save creates the History in the database.
func (_c *HistoryCreate) Save(ctx context.Context) (*History, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HistoryCreate) SaveX(ctx context.Context) *History {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HistoryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := history.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := history.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := history.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := history.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HistoryCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "History.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := history.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "History.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "History.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := history.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "History.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "History.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := history.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "History.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "History.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := history.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "History.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceHash(); !ok {
		return &ValidationError{Name: "source_hash", err: errors.New(`ent: missing required field "History.source_hash"`)}
	}
	if v, ok := _c.mutation.SourceHash(); ok {
		if err := history.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "History.source_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "History.imported_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "History.updated_at"`)}
	}
	return nil
}

func (_c *HistoryCreate) sqlSave(ctx context.Context) (*History, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HistoryCreate) createSpec() (*History, *sqlgraph.CreateSpec) {
	var (
		_node = &History{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(history.Table, sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(history.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(history.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(history.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(history.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.SourceHash(); ok {
		_spec.SetField(history.FieldSourceHash, field.TypeString, value)
		_node.SourceHash = value
	}
	if value, ok := _c.mutation.Draft(); ok {
		_spec.SetField(history.FieldDraft, field.TypeJSON, value)
		_node.Draft = value
	}
	if value, ok := _c.mutation.Validated(); ok {
		_spec.SetField(history.FieldValidated, field.TypeJSON, value)
		_node.Validated = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(history.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(history.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(history.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   history.PatientTable,
			Columns: []string{history.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   history.FilesTable,
			Columns: []string{history.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HistoryCreateBulk is the builder for creating many History entities in bulk.
type HistoryCreateBulk struct {
	config
	err      error
	builders []*HistoryCreate
}

// Save creates the History entities in the database.
func (_c *HistoryCreateBulk) Save(ctx context.Context) ([]*History, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*History, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HistoryMutation)
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
func (_c *HistoryCreateBulk) SaveX(ctx context.Context) []*History {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
