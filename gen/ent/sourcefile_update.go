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
	"github.com/google/uuid"
	"github.com/ulieet/NeuroSoft/gen/ent/history"
	"github.com/ulieet/NeuroSoft/gen/ent/predicate"
	"github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

// SourceFileUpdate is the builder for updating SourceFile entities.
type SourceFileUpdate struct {
	config
	hooks    []Hook
	mutation *SourceFileMutation
}

// Where appends a list predicates to the SourceFileUpdate builder.
func (_u *SourceFileUpdate) Where(ps ...predicate.SourceFile) *SourceFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHistoryID sets the "history_id" field.
func (_u *SourceFileUpdate) SetHistoryID(v uuid.UUID) *SourceFileUpdate {
	_u.mutation.SetHistoryID(v)
	return _u
}

// SetNillableHistoryID sets the "history_id" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableHistoryID(v *uuid.UUID) *SourceFileUpdate {
	if v != nil {
		_u.SetHistoryID(*v)
	}
	return _u
}

// SetStoredPath sets the "stored_path" field.
func (_u *SourceFileUpdate) SetStoredPath(v string) *SourceFileUpdate {
	_u.mutation.SetStoredPath(v)
	return _u
}

// SetNillableStoredPath sets the "stored_path" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableStoredPath(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetStoredPath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceFileUpdate) SetContentHash(v []byte) *SourceFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SourceFileUpdate) SetFilename(v string) *SourceFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFilename(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *SourceFileUpdate) SetFileExt(v string) *SourceFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFileExt(v *string) *SourceFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SourceFileUpdate) SetFileSize(v int) *SourceFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableFileSize(v *int) *SourceFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SourceFileUpdate) AddFileSize(v int) *SourceFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *SourceFileUpdate) SetPages(v int) *SourceFileUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillablePages(v *int) *SourceFileUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *SourceFileUpdate) AddPages(v int) *SourceFileUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SourceFileUpdate) SetUploadedAt(v time.Time) *SourceFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SourceFileUpdate) SetNillableUploadedAt(v *time.Time) *SourceFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetHistory sets the "history" edge to the History entity.
func (_u *SourceFileUpdate) SetHistory(v *History) *SourceFileUpdate {
	return _u.SetHistoryID(v.ID)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_u *SourceFileUpdate) Mutation() *SourceFileMutation {
	return _u.mutation
}

// ClearHistory clears the "history" edge to the History entity.
func (_u *SourceFileUpdate) ClearHistory() *SourceFileUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceFileUpdate) check() error {
	if v, ok := _u.mutation.StoredPath(); ok {
		if err := sourcefile.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.stored_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := sourcefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SourceFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := sourcefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pages(); ok {
		if err := sourcefile.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "SourceFile.pages": %w`, err)}
		}
	}
	if _u.mutation.HistoryCleared() && len(_u.mutation.HistoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceFile.history"`)
	}
	return nil
}

func (_u *SourceFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcefile.Table, sourcefile.Columns, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoredPath(); ok {
		_spec.SetField(sourcefile.FieldStoredPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(sourcefile.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(sourcefile.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceFileUpdateOne is the builder for updating a single SourceFile entity.
type SourceFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceFileMutation
}

// SetHistoryID sets the "history_id" field.
func (_u *SourceFileUpdateOne) SetHistoryID(v uuid.UUID) *SourceFileUpdateOne {
	_u.mutation.SetHistoryID(v)
	return _u
}

// SetNillableHistoryID sets the "history_id" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableHistoryID(v *uuid.UUID) *SourceFileUpdateOne {
	if v != nil {
		_u.SetHistoryID(*v)
	}
	return _u
}

// SetStoredPath sets the "stored_path" field.
func (_u *SourceFileUpdateOne) SetStoredPath(v string) *SourceFileUpdateOne {
	_u.mutation.SetStoredPath(v)
	return _u
}

// SetNillableStoredPath sets the "stored_path" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableStoredPath(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetStoredPath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceFileUpdateOne) SetContentHash(v []byte) *SourceFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SourceFileUpdateOne) SetFilename(v string) *SourceFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFilename(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *SourceFileUpdateOne) SetFileExt(v string) *SourceFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFileExt(v *string) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SourceFileUpdateOne) SetFileSize(v int) *SourceFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableFileSize(v *int) *SourceFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SourceFileUpdateOne) AddFileSize(v int) *SourceFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *SourceFileUpdateOne) SetPages(v int) *SourceFileUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillablePages(v *int) *SourceFileUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *SourceFileUpdateOne) AddPages(v int) *SourceFileUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SourceFileUpdateOne) SetUploadedAt(v time.Time) *SourceFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SourceFileUpdateOne) SetNillableUploadedAt(v *time.Time) *SourceFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetHistory sets the "history" edge to the History entity.
func (_u *SourceFileUpdateOne) SetHistory(v *History) *SourceFileUpdateOne {
	return _u.SetHistoryID(v.ID)
}

// Mutation returns the SourceFileMutation object of the builder.
func (_u *SourceFileUpdateOne) Mutation() *SourceFileMutation {
	return _u.mutation
}

// ClearHistory clears the "history" edge to the History entity.
func (_u *SourceFileUpdateOne) ClearHistory() *SourceFileUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// Where appends a list predicates to the SourceFileUpdate builder.
func (_u *SourceFileUpdateOne) Where(ps ...predicate.SourceFile) *SourceFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceFileUpdateOne) Select(field string, fields ...string) *SourceFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceFile entity.
func (_u *SourceFileUpdateOne) Save(ctx context.Context) (*SourceFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceFileUpdateOne) SaveX(ctx context.Context) *SourceFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceFileUpdateOne) check() error {
	if v, ok := _u.mutation.StoredPath(); ok {
		if err := sourcefile.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "SourceFile.stored_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := sourcefile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SourceFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := sourcefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SourceFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := sourcefile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sourcefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SourceFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pages(); ok {
		if err := sourcefile.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "SourceFile.pages": %w`, err)}
		}
	}
	if _u.mutation.HistoryCleared() && len(_u.mutation.HistoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceFile.history"`)
	}
	return nil
}

func (_u *SourceFileUpdateOne) sqlSave(ctx context.Context) (_node *SourceFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcefile.Table, sourcefile.Columns, sqlgraph.NewFieldSpec(sourcefile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcefile.FieldID)
		for _, f := range fields {
			if !sourcefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcefile.FieldID {
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
	if value, ok := _u.mutation.StoredPath(); ok {
		_spec.SetField(sourcefile.FieldStoredPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcefile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sourcefile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(sourcefile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sourcefile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(sourcefile.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(sourcefile.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sourcefile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SourceFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
