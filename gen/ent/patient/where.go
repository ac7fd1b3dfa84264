// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ulieet/NeuroSoft/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldName, v))
}

// DNI applies equality check predicate on the "dni" field. It's identical to DNIEQ.
func DNI(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDNI, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// Insurer applies equality check predicate on the "insurer" field. It's identical to InsurerEQ.
func Insurer(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsurer, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMemberID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldName, v))
}

// DNIEQ applies the EQ predicate on the "dni" field.
func DNIEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDNI, v))
}

// DNINEQ applies the NEQ predicate on the "dni" field.
func DNINEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDNI, v))
}

// DNIIn applies the In predicate on the "dni" field.
func DNIIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDNI, vs...))
}

// DNINotIn applies the NotIn predicate on the "dni" field.
func DNINotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDNI, vs...))
}

// DNIGT applies the GT predicate on the "dni" field.
func DNIGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDNI, v))
}

// DNIGTE applies the GTE predicate on the "dni" field.
func DNIGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDNI, v))
}

// DNILT applies the LT predicate on the "dni" field.
func DNILT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDNI, v))
}

// DNILTE applies the LTE predicate on the "dni" field.
func DNILTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDNI, v))
}

// DNIContains applies the Contains predicate on the "dni" field.
func DNIContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldDNI, v))
}

// DNIHasPrefix applies the HasPrefix predicate on the "dni" field.
func DNIHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldDNI, v))
}

// DNIHasSuffix applies the HasSuffix predicate on the "dni" field.
func DNIHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldDNI, v))
}

// DNIIsNil applies the IsNil predicate on the "dni" field.
func DNIIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDNI))
}

// DNINotNil applies the NotNil predicate on the "dni" field.
func DNINotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDNI))
}

// DNIEqualFold applies the EqualFold predicate on the "dni" field.
func DNIEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldDNI, v))
}

// DNIContainsFold applies the ContainsFold predicate on the "dni" field.
func DNIContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldDNI, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateContains applies the Contains predicate on the "birth_date" field.
func BirthDateContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldBirthDate, v))
}

// BirthDateHasPrefix applies the HasPrefix predicate on the "birth_date" field.
func BirthDateHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldBirthDate, v))
}

// BirthDateHasSuffix applies the HasSuffix predicate on the "birth_date" field.
func BirthDateHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBirthDate))
}

// BirthDateEqualFold applies the EqualFold predicate on the "birth_date" field.
func BirthDateEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldBirthDate, v))
}

// BirthDateContainsFold applies the ContainsFold predicate on the "birth_date" field.
func BirthDateContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldBirthDate, v))
}

// InsurerEQ applies the EQ predicate on the "insurer" field.
func InsurerEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInsurer, v))
}

// InsurerNEQ applies the NEQ predicate on the "insurer" field.
func InsurerNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInsurer, v))
}

// InsurerIn applies the In predicate on the "insurer" field.
func InsurerIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInsurer, vs...))
}

// InsurerNotIn applies the NotIn predicate on the "insurer" field.
func InsurerNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInsurer, vs...))
}

// InsurerGT applies the GT predicate on the "insurer" field.
func InsurerGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInsurer, v))
}

// InsurerGTE applies the GTE predicate on the "insurer" field.
func InsurerGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInsurer, v))
}

// InsurerLT applies the LT predicate on the "insurer" field.
func InsurerLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInsurer, v))
}

// InsurerLTE applies the LTE predicate on the "insurer" field.
func InsurerLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInsurer, v))
}

// InsurerContains applies the Contains predicate on the "insurer" field.
func InsurerContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInsurer, v))
}

// InsurerHasPrefix applies the HasPrefix predicate on the "insurer" field.
func InsurerHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInsurer, v))
}

// InsurerHasSuffix applies the HasSuffix predicate on the "insurer" field.
func InsurerHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInsurer, v))
}

// InsurerIsNil applies the IsNil predicate on the "insurer" field.
func InsurerIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInsurer))
}

// InsurerNotNil applies the NotNil predicate on the "insurer" field.
func InsurerNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInsurer))
}

// InsurerEqualFold applies the EqualFold predicate on the "insurer" field.
func InsurerEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInsurer, v))
}

// InsurerContainsFold applies the ContainsFold predicate on the "insurer" field.
func InsurerContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInsurer, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMemberID, v))
}

// MemberIDContains applies the Contains predicate on the "member_id" field.
func MemberIDContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMemberID, v))
}

// MemberIDHasPrefix applies the HasPrefix predicate on the "member_id" field.
func MemberIDHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMemberID, v))
}

// MemberIDHasSuffix applies the HasSuffix predicate on the "member_id" field.
func MemberIDHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMemberID, v))
}

// MemberIDIsNil applies the IsNil predicate on the "member_id" field.
func MemberIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMemberID))
}

// MemberIDNotNil applies the NotNil predicate on the "member_id" field.
func MemberIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMemberID))
}

// MemberIDEqualFold applies the EqualFold predicate on the "member_id" field.
func MemberIDEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMemberID, v))
}

// MemberIDContainsFold applies the ContainsFold predicate on the "member_id" field.
func MemberIDContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMemberID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasHistories applies the HasEdge predicate on the "histories" edge.
func HasHistories() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HistoriesTable, HistoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHistoriesWith applies the HasEdge predicate on the "histories" edge with a given conditions (other predicates).
func HasHistoriesWith(preds ...predicate.History) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newHistoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
