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
	"github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

// SourceFileCreate is the builder for creating a SourceFile entity.
type SourceFileCreate struct {
	config
	mutation *SourceFileMutation
	hooks    []Hook
}

// SetHistoryID sets the "history_id" field.
func (_c *SourceFileCreate) SetHistoryID(v uuid.UUID) *SourceFileCreate {
	_c.mutation.SetHistoryID(v)
	return _c
}

// SetStoredPath sets the "stored_path" field.
func (_c *SourceFileCreate) SetStoredPath(v string) *SourceFileCreate {
	_c.mutation.SetStoredPath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SourceFileCreate) SetContentHash(v []byte) *SourceFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SourceFileCreate) SetFilename(v string) *SourceFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *SourceFileCreate) SetFileExt(v string) *SourceFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *SourceFileCreate) SetFileSize(v int) *SourceFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetPages sets the "pages" field.
func (_c *SourceFileCreate) SetPages(v int) *SourceFileCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillablePages(v *int) *SourceFileCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SourceFileCreate) SetUploadedAt(v time.Time) *SourceFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableUploadedAt(v *time.Time) *SourceFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceFileCreate) SetID(v uuid.UUID) *SourceFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SourceFileCreate) SetNillableID(v *uuid.UUID) *SourceFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetHistory sets the "history" edge to the History entity.
func (_c *SourceFileCreate) SetHistory(v *History) *SourceFileCreate {
	return _c.SetHistoryID(v.ID)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_c *SourceFileCreate) Mutation() *SourceFileMutation {
	return _c.mutation
}

// Save creates the SourceFile in the database.
func (_c *SourceFileCreate) Save(ctx context.Context) (*SourceFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceFileCreate) SaveX(ctx context.Context) *SourceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceFileCreate) defaults() {
	if _, ok := _c.mutation.Pages(); !ok {
		v := sourcefile.DefaultPages
		_c.mutation.SetPages(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := sourcefile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sourcefile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceFileCreate) check() error {
	if _, ok := _c.mutation.HistoryID(); !ok {
		return &ValidationError{Name: "history_id", err: errors.New(`ent: missing required field "SourceFile.history_id"`)}
	}
	if _, ok := _c.mutation.StoredPath(); !ok {
		return &ValidationError{Name: "stored_path", err: errors.New(`ent: missing required field "SourceFile.stored_path"`)}
	}
	if v, ok := _c.mutation.StoredPath(); ok {
		if err := sourcefile.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.stored_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SourceFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := sourcefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SourceFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "SourceFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "SourceFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := sourcefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "SourceFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "SourceFile.pages"`)}
	}
	if v, ok := _c.mutation.Pages(); ok {
		if err := sourcefile.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "SourceFile.pages": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "SourceFile.uploaded_at"`)}
	}
	if len(_c.mutation.HistoryIDs()) == 0 {
		return &ValidationError{Name: "history", err: errors.New(`ent: missing required edge "SourceFile.history"`)}
	}
	return nil
}

func (_c *SourceFileCreate) sqlSave(ctx context.Context) (*SourceFile, error) {
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

func (_c *SourceFileCreate) createSpec() (*SourceFile, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcefile.Table, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.StoredPath(); ok {
		_spec.SetField(sourcefile.FieldStoredPath, field.TypeString, value)
		_node.StoredPath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(sourcefile.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcefile.HistoryTable,
			Columns: []string{sourcefile.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HistoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SourceFileCreateBulk is the builder for creating many SourceFile entities in bulk.
type SourceFileCreateBulk struct {
	config
	err      error
	builders []*SourceFileCreate
}

// Save creates the SourceFile entities in the database.
func (_c *SourceFileCreateBulk) Save(ctx context.Context) ([]*SourceFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceFileMutation)
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
func (_c *SourceFileCreateBulk) SaveX(ctx context.Context) []*SourceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
