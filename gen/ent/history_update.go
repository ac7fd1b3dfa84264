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
	"github.com/ulieet/NeuroSoft/gen/ent/patient"
	"github.com/ulieet/NeuroSoft/gen/ent/predicate"
	"github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

// HistoryUpdate is the builder for updating History entities.
type HistoryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryMutation
}

// Where appends a list predicates to the HistoryUpdate builder.
func (_u *HistoryUpdate) Where(ps ...predicate.History) *HistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *HistoryUpdate) SetPatientID(v uuid.UUID) *HistoryUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillablePatientID(v *uuid.UUID) *HistoryUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *HistoryUpdate) ClearPatientID() *HistoryUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *HistoryUpdate) SetFileName(v string) *HistoryUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableFileName(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *HistoryUpdate) SetFormat(v string) *HistoryUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableFormat(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HistoryUpdate) SetStatus(v string) *HistoryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableStatus(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *HistoryUpdate) SetFingerprint(v string) *HistoryUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableFingerprint(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *HistoryUpdate) SetSourceHash(v string) *HistoryUpdate {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableSourceHash(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetDraft sets the "draft" field.
func (_u *HistoryUpdate) SetDraft(v map[string]interface{}) *HistoryUpdate {
	_u.mutation.SetDraft(v)
	return _u
}

// ClearDraft clears the value of the "draft" field.
func (_u *HistoryUpdate) ClearDraft() *HistoryUpdate {
	_u.mutation.ClearDraft()
	return _u
}

// SetValidated sets the "validated" field.
func (_u *HistoryUpdate) SetValidated(v map[string]interface{}) *HistoryUpdate {
	_u.mutation.SetValidated(v)
	return _u
}

// ClearValidated clears the value of the "validated" field.
func (_u *HistoryUpdate) ClearValidated() *HistoryUpdate {
	_u.mutation.ClearValidated()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *HistoryUpdate) SetValidatedAt(v time.Time) *HistoryUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableValidatedAt(v *time.Time) *HistoryUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *HistoryUpdate) ClearValidatedAt() *HistoryUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HistoryUpdate) SetUpdatedAt(v time.Time) *HistoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *HistoryUpdate) SetPatient(v *Patient) *HistoryUpdate {
	return _u.SetPatientID(v.ID)
}

// AddFileIDs adds the "files" edge to the SourceFile entity by IDs.
func (_u *HistoryUpdate) AddFileIDs(ids ...uuid.UUID) *HistoryUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the SourceFile entity.
func (_u *HistoryUpdate) AddFiles(v ...*SourceFile) *HistoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the HistoryMutation object of the builder.
func (_u *HistoryUpdate) Mutation() *HistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *HistoryUpdate) ClearPatient() *HistoryUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearFiles clears all "files" edges to the SourceFile entity.
func (_u *HistoryUpdate) ClearFiles() *HistoryUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to SourceFile entities by IDs.
func (_u *HistoryUpdate) RemoveFileIDs(ids ...uuid.UUID) *HistoryUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to SourceFile entities.
func (_u *HistoryUpdate) RemoveFiles(v ...*SourceFile) *HistoryUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HistoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := history.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := history.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "History.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := history.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "History.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := history.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "History.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := history.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "History.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceHash(); ok {
		if err := history.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "History.source_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(history.Table, history.Columns, sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(history.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(history.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(history.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(history.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(history.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(history.FieldDraft, field.TypeJSON, value)
	}
	if _u.mutation.DraftCleared() {
		_spec.ClearField(history.FieldDraft, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(history.FieldValidated, field.TypeJSON, value)
	}
	if _u.mutation.ValidatedCleared() {
		_spec.ClearField(history.FieldValidated, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(history.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(history.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(history.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{history.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryUpdateOne is the builder for updating a single History entity.
type HistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *HistoryUpdateOne) SetPatientID(v uuid.UUID) *HistoryUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillablePatientID(v *uuid.UUID) *HistoryUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *HistoryUpdateOne) ClearPatientID() *HistoryUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *HistoryUpdateOne) SetFileName(v string) *HistoryUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableFileName(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *HistoryUpdateOne) SetFormat(v string) *HistoryUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableFormat(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HistoryUpdateOne) SetStatus(v string) *HistoryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableStatus(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *HistoryUpdateOne) SetFingerprint(v string) *HistoryUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableFingerprint(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *HistoryUpdateOne) SetSourceHash(v string) *HistoryUpdateOne {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableSourceHash(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetDraft sets the "draft" field.
func (_u *HistoryUpdateOne) SetDraft(v map[string]interface{}) *HistoryUpdateOne {
	_u.mutation.SetDraft(v)
	return _u
}

// ClearDraft clears the value of the "draft" field.
func (_u *HistoryUpdateOne) ClearDraft() *HistoryUpdateOne {
	_u.mutation.ClearDraft()
	return _u
}

// SetValidated sets the "validated" field.
func (_u *HistoryUpdateOne) SetValidated(v map[string]interface{}) *HistoryUpdateOne {
	_u.mutation.SetValidated(v)
	return _u
}

// ClearValidated clears the value of the "validated" field.
func (_u *HistoryUpdateOne) ClearValidated() *HistoryUpdateOne {
	_u.mutation.ClearValidated()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *HistoryUpdateOne) SetValidatedAt(v time.Time) *HistoryUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableValidatedAt(v *time.Time) *HistoryUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *HistoryUpdateOne) ClearValidatedAt() *HistoryUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HistoryUpdateOne) SetUpdatedAt(v time.Time) *HistoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *HistoryUpdateOne) SetPatient(v *Patient) *HistoryUpdateOne {
	return _u.SetPatientID(v.ID)
}

// AddFileIDs adds the "files" edge to the SourceFile entity by IDs.
func (_u *HistoryUpdateOne) AddFileIDs(ids ...uuid.UUID) *HistoryUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the SourceFile entity.
func (_u *HistoryUpdateOne) AddFiles(v ...*SourceFile) *HistoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the HistoryMutation object of the builder.
func (_u *HistoryUpdateOne) Mutation() *HistoryMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *HistoryUpdateOne) ClearPatient() *HistoryUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearFiles clears all "files" edges to the SourceFile entity.
func (_u *HistoryUpdateOne) ClearFiles() *HistoryUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to SourceFile entities by IDs.
func (_u *HistoryUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *HistoryUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to SourceFile entities.
func (_u *HistoryUpdateOne) RemoveFiles(v ...*SourceFile) *HistoryUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the HistoryUpdate builder.
func (_u *HistoryUpdateOne) Where(ps ...predicate.History) *HistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryUpdateOne) Select(field string, fields ...string) *HistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated History entity.
func (_u *HistoryUpdateOne) Save(ctx context.Context) (*History, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryUpdateOne) SaveX(ctx context.Context) *History {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HistoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := history.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := history.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "History.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := history.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "History.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := history.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "History.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := history.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "History.fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceHash(); ok {
		if err := history.SourceHashValidator(v); err != nil {
			return &ValidationError{Name: "source_hash", err: fmt.Errorf(`ent: validator failed for field "History.source_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryUpdateOne) sqlSave(ctx context.Context) (_node *History, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(history.Table, history.Columns, sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "History.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, history.FieldID)
		for _, f := range fields {
			if !history.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != history.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(history.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(history.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(history.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(history.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(history.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Draft(); ok {
		_spec.SetField(history.FieldDraft, field.TypeJSON, value)
	}
	if _u.mutation.DraftCleared() {
		_spec.ClearField(history.FieldDraft, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(history.FieldValidated, field.TypeJSON, value)
	}
	if _u.mutation.ValidatedCleared() {
		_spec.ClearField(history.FieldValidated, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(history.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(history.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(history.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &History{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{history.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
