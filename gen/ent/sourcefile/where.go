// Code generated by ent, DO NOT EDIT.

package sourcefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ulieet/NeuroSoft/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldID, id))
}

// HistoryID applies equality check predicate on the "history_id" field. It's identical to HistoryIDEQ.
func HistoryID(v uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldHistoryID, v))
}

// StoredPath applies equality check predicate on the "stored_path" field. It's identical to StoredPathEQ.
func StoredPath(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldStoredPath, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldContentHash, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileSize, v))
}

// Pages applies equality check predicate on the "pages" field. It's identical to PagesEQ.
func Pages(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldPages, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldUploadedAt, v))
}

// HistoryIDEQ applies the EQ predicate on the "history_id" field.
func HistoryIDEQ(v uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldHistoryID, v))
}

// HistoryIDNEQ applies the NEQ predicate on the "history_id" field.
func HistoryIDNEQ(v uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldHistoryID, v))
}

// HistoryIDIn applies the In predicate on the "history_id" field.
func HistoryIDIn(vs ...uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldHistoryID, vs...))
}

// HistoryIDNotIn applies the NotIn predicate on the "history_id" field.
func HistoryIDNotIn(vs ...uuid.UUID) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldHistoryID, vs...))
}

// StoredPathEQ applies the EQ predicate on the "stored_path" field.
func StoredPathEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldStoredPath, v))
}

// StoredPathNEQ applies the NEQ predicate on the "stored_path" field.
func StoredPathNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldStoredPath, v))
}

// StoredPathIn applies the In predicate on the "stored_path" field.
func StoredPathIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldStoredPath, vs...))
}

// StoredPathNotIn applies the NotIn predicate on the "stored_path" field.
func StoredPathNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldStoredPath, vs...))
}

// StoredPathGT applies the GT predicate on the "stored_path" field.
func StoredPathGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldStoredPath, v))
}

// StoredPathGTE applies the GTE predicate on the "stored_path" field.
func StoredPathGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldStoredPath, v))
}

// StoredPathLT applies the LT predicate on the "stored_path" field.
func StoredPathLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldStoredPath, v))
}

// StoredPathLTE applies the LTE predicate on the "stored_path" field.
func StoredPathLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldStoredPath, v))
}

// StoredPathContains applies the Contains predicate on the "stored_path" field.
func StoredPathContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldStoredPath, v))
}

// StoredPathHasPrefix applies the HasPrefix predicate on the "stored_path" field.
func StoredPathHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldStoredPath, v))
}

// StoredPathHasSuffix applies the HasSuffix predicate on the "stored_path" field.
func StoredPathHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldStoredPath, v))
}

// StoredPathEqualFold applies the EqualFold predicate on the "stored_path" field.
func StoredPathEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldStoredPath, v))
}

// StoredPathContainsFold applies the ContainsFold predicate on the "stored_path" field.
func StoredPathContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldStoredPath, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldContentHash, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldFileSize, v))
}

// PagesEQ applies the EQ predicate on the "pages" field.
func PagesEQ(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldPages, v))
}

// PagesNEQ applies the NEQ predicate on the "pages" field.
func PagesNEQ(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldPages, v))
}

// PagesIn applies the In predicate on the "pages" field.
func PagesIn(vs ...int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldPages, vs...))
}

// PagesNotIn applies the NotIn predicate on the "pages" field.
func PagesNotIn(vs ...int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldPages, vs...))
}

// PagesGT applies the GT predicate on the "pages" field.
func PagesGT(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldPages, v))
}

// PagesGTE applies the GTE predicate on the "pages" field.
func PagesGTE(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldPages, v))
}

// PagesLT applies the LT predicate on the "pages" field.
func PagesLT(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldPages, v))
}

// PagesLTE applies the LTE predicate on the "pages" field.
func PagesLTE(v int) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldPages, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.SourceFile {
	return predicate.SourceFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasHistory applies the HasEdge predicate on the "history" edge.
func HasHistory() predicate.SourceFile {
	return predicate.SourceFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HistoryTable, HistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHistoryWith applies the HasEdge predicate on the "history" edge with a given conditions (other predicates).
func HasHistoryWith(preds ...predicate.History) predicate.SourceFile {
	return predicate.SourceFile(func(s *sql.Selector) {
		step := newHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceFile) predicate.SourceFile {
	return predicate.SourceFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceFile) predicate.SourceFile {
	return predicate.SourceFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceFile) predicate.SourceFile {
	return predicate.SourceFile(sql.NotPredicates(p))
}
