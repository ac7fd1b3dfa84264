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
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PatientUpdate) SetName(v string) *PatientUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDNI sets the "dni" field.
func (_u *PatientUpdate) SetDNI(v string) *PatientUpdate {
	_u.mutation.SetDNI(v)
	return _u
}

// SetNillableDNI sets the "dni" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDNI(v *string) *PatientUpdate {
	if v != nil {
		_u.SetDNI(*v)
	}
	return _u
}

// ClearDNI clears the value of the "dni" field.
func (_u *PatientUpdate) ClearDNI() *PatientUpdate {
	_u.mutation.ClearDNI()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdate) SetBirthDate(v string) *PatientUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBirthDate(v *string) *PatientUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientUpdate) ClearBirthDate() *PatientUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetInsurer sets the "insurer" field.
func (_u *PatientUpdate) SetInsurer(v string) *PatientUpdate {
	_u.mutation.SetInsurer(v)
	return _u
}

// SetNillableInsurer sets the "insurer" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsurer(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsurer(*v)
	}
	return _u
}

// ClearInsurer clears the value of the "insurer" field.
func (_u *PatientUpdate) ClearInsurer() *PatientUpdate {
	_u.mutation.ClearInsurer()
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *PatientUpdate) SetMemberID(v string) *PatientUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMemberID(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *PatientUpdate) ClearMemberID() *PatientUpdate {
	_u.mutation.ClearMemberID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PatientUpdate) SetCreatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableCreatedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddHistoryIDs adds the "histories" edge to the History entity by IDs.
func (_u *PatientUpdate) AddHistoryIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistories adds the "histories" edges to the History entity.
func (_u *PatientUpdate) AddHistories(v ...*History) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearHistories clears all "histories" edges to the History entity.
func (_u *PatientUpdate) ClearHistories() *PatientUpdate {
	_u.mutation.ClearHistories()
	return _u
}

// RemoveHistoryIDs removes the "histories" edge to History entities by IDs.
func (_u *PatientUpdate) RemoveHistoryIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistories removes "histories" edges to History entities.
func (_u *PatientUpdate) RemoveHistories(v ...*History) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := patient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Patient.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(patient.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DNI(); ok {
		_spec.SetField(patient.FieldDNI, field.TypeString, value)
	}
	if _u.mutation.DNICleared() {
		_spec.ClearField(patient.FieldDNI, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeString, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patient.FieldBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.Insurer(); ok {
		_spec.SetField(patient.FieldInsurer, field.TypeString, value)
	}
	if _u.mutation.InsurerCleared() {
		_spec.ClearField(patient.FieldInsurer, field.TypeString)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(patient.FieldMemberID, field.TypeString, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(patient.FieldMemberID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoriesTable,
			Columns: []string{patient.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoriesIDs(); len(nodes) > 0 && !_u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoriesTable,
			Columns: []string{patient.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoriesTable,
			Columns: []string{patient.HistoriesColumn},
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
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetName sets the "name" field.
func (_u *PatientUpdateOne) SetName(v string) *PatientUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDNI sets the "dni" field.
func (_u *PatientUpdateOne) SetDNI(v string) *PatientUpdateOne {
	_u.mutation.SetDNI(v)
	return _u
}

// SetNillableDNI sets the "dni" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDNI(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetDNI(*v)
	}
	return _u
}

// ClearDNI clears the value of the "dni" field.
func (_u *PatientUpdateOne) ClearDNI() *PatientUpdateOne {
	_u.mutation.ClearDNI()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdateOne) SetBirthDate(v string) *PatientUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBirthDate(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientUpdateOne) ClearBirthDate() *PatientUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetInsurer sets the "insurer" field.
func (_u *PatientUpdateOne) SetInsurer(v string) *PatientUpdateOne {
	_u.mutation.SetInsurer(v)
	return _u
}

// SetNillableInsurer sets the "insurer" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsurer(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsurer(*v)
	}
	return _u
}

// ClearInsurer clears the value of the "insurer" field.
func (_u *PatientUpdateOne) ClearInsurer() *PatientUpdateOne {
	_u.mutation.ClearInsurer()
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *PatientUpdateOne) SetMemberID(v string) *PatientUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMemberID(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *PatientUpdateOne) ClearMemberID() *PatientUpdateOne {
	_u.mutation.ClearMemberID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PatientUpdateOne) SetCreatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableCreatedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddHistoryIDs adds the "histories" edge to the History entity by IDs.
func (_u *PatientUpdateOne) AddHistoryIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistories adds the "histories" edges to the History entity.
func (_u *PatientUpdateOne) AddHistories(v ...*History) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearHistories clears all "histories" edges to the History entity.
func (_u *PatientUpdateOne) ClearHistories() *PatientUpdateOne {
	_u.mutation.ClearHistories()
	return _u
}

// RemoveHistoryIDs removes the "histories" edge to History entities by IDs.
func (_u *PatientUpdateOne) RemoveHistoryIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistories removes "histories" edges to History entities.
func (_u *PatientUpdateOne) RemoveHistories(v ...*History) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := patient.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Patient.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(patient.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DNI(); ok {
		_spec.SetField(patient.FieldDNI, field.TypeString, value)
	}
	if _u.mutation.DNICleared() {
		_spec.ClearField(patient.FieldDNI, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeString, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patient.FieldBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.Insurer(); ok {
		_spec.SetField(patient.FieldInsurer, field.TypeString, value)
	}
	if _u.mutation.InsurerCleared() {
		_spec.ClearField(patient.FieldInsurer, field.TypeString)
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(patient.FieldMemberID, field.TypeString, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(patient.FieldMemberID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoriesTable,
			Columns: []string{patient.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoriesIDs(); len(nodes) > 0 && !_u.mutation.HistoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoriesTable,
			Columns: []string{patient.HistoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(history.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoriesTable,
			Columns: []string{patient.HistoriesColumn},
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
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
