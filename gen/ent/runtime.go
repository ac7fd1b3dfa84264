// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/ulieet/NeuroSoft/db/ent/schema"
	"github.com/ulieet/NeuroSoft/gen/ent/history"
	"github.com/ulieet/NeuroSoft/gen/ent/patient"
	"github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	historyFields := schema.History{}.Fields()
	_ = historyFields
	// historyDescFileName is the schema descriptor for file_name field.
	historyDescFileName := historyFields[2].Descriptor()
	// history.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	history.FileNameValidator = historyDescFileName.Validators[0].(func(string) error)
	// historyDescFormat is the schema descriptor for format field.
	historyDescFormat := historyFields[3].Descriptor()
	// history.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	history.FormatValidator = historyDescFormat.Validators[0].(func(string) error)
	// historyDescStatus is the schema descriptor for status field.
	historyDescStatus := historyFields[4].Descriptor()
	// history.DefaultStatus holds the default value on creation for the status field.
	history.DefaultStatus = historyDescStatus.Default.(string)
	// history.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	history.StatusValidator = historyDescStatus.Validators[0].(func(string) error)
	// historyDescFingerprint is the schema descriptor for fingerprint field.
	historyDescFingerprint := historyFields[5].Descriptor()
	// history.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	history.FingerprintValidator = historyDescFingerprint.Validators[0].(func(string) error)
	// historyDescSourceHash is the schema descriptor for source_hash field.
	historyDescSourceHash := historyFields[6].Descriptor()
	// history.SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	history.SourceHashValidator = historyDescSourceHash.Validators[0].(func(string) error)
	// historyDescImportedAt is the schema descriptor for imported_at field.
	historyDescImportedAt := historyFields[9].Descriptor()
	// history.DefaultImportedAt holds the default value on creation for the imported_at field.
	history.DefaultImportedAt = historyDescImportedAt.Default.(func() time.Time)
	// historyDescUpdatedAt is the schema descriptor for updated_at field.
	historyDescUpdatedAt := historyFields[11].Descriptor()
	// history.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	history.DefaultUpdatedAt = historyDescUpdatedAt.Default.(func() time.Time)
	// history.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	history.UpdateDefaultUpdatedAt = historyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// historyDescID is the schema descriptor for id field.
	historyDescID := historyFields[0].Descriptor()
	// history.DefaultID holds the default value on creation for the id field.
	history.DefaultID = historyDescID.Default.(func() uuid.UUID)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescName is the schema descriptor for name field.
	patientDescName := patientFields[1].Descriptor()
	// patient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	patient.NameValidator = patientDescName.Validators[0].(func(string) error)
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[6].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientFields[7].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientFields[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	sourcefileFields := schema.SourceFile{}.Fields()
	_ = sourcefileFields
	// sourcefileDescStoredPath is the schema descriptor for stored_path field.
	sourcefileDescStoredPath := sourcefileFields[2].Descriptor()
	// sourcefile.StoredPathValidator is a validator for the "stored_path" field. It is called by the builders before save.
	sourcefile.StoredPathValidator = sourcefileDescStoredPath.Validators[0].(func(string) error)
	// sourcefileDescContentHash is the schema descriptor for content_hash field.
	sourcefileDescContentHash := sourcefileFields[3].Descriptor()
	// sourcefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	sourcefile.ContentHashValidator = sourcefileDescContentHash.Validators[0].(func([]byte) error)
	// sourcefileDescFilename is the schema descriptor for filename field.
	sourcefileDescFilename := sourcefileFields[4].Descriptor()
	// sourcefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sourcefile.FilenameValidator = sourcefileDescFilename.Validators[0].(func(string) error)
	// sourcefileDescFileExt is the schema descriptor for file_ext field.
	sourcefileDescFileExt := sourcefileFields[5].Descriptor()
	// sourcefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	sourcefile.FileExtValidator = sourcefileDescFileExt.Validators[0].(func(string) error)
	// sourcefileDescFileSize is the schema descriptor for file_size field.
	sourcefileDescFileSize := sourcefileFields[6].Descriptor()
	// sourcefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sourcefile.FileSizeValidator = sourcefileDescFileSize.Validators[0].(func(int) error)
	// sourcefileDescPages is the schema descriptor for pages field.
	sourcefileDescPages := sourcefileFields[7].Descriptor()
	// sourcefile.DefaultPages holds the default value on creation for the pages field.
	sourcefile.DefaultPages = sourcefileDescPages.Default.(int)
	// sourcefile.PagesValidator is a validator for the "pages" field. It is called by the builders before save.
	sourcefile.PagesValidator = sourcefileDescPages.Validators[0].(func(int) error)
	// sourcefileDescUploadedAt is the schema descriptor for uploaded_at field.
	sourcefileDescUploadedAt := sourcefileFields[8].Descriptor()
	// sourcefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sourcefile.DefaultUploadedAt = sourcefileDescUploadedAt.Default.(func() time.Time)
	// sourcefileDescID is the schema descriptor for id field.
	sourcefileDescID := sourcefileFields[0].Descriptor()
	// sourcefile.DefaultID holds the default value on creation for the id field.
	sourcefile.DefaultID = sourcefileDescID.Default.(func() uuid.UUID)
}
