// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HistoriesColumns holds the columns for the "histories" table.
	HistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDIENTE_VALIDACION"},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "source_hash", Type: field.TypeString},
		{Name: "draft", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "validated", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "imported_at", Type: field.TypeTime},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
	}
	// HistoriesTable holds the schema information for the "histories" table.
	HistoriesTable = &schema.Table{
		Name:       "histories",
		Columns:    HistoriesColumns,
		PrimaryKey: []*schema.Column{HistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "histories_patients_histories",
				Columns:    []*schema.Column{HistoriesColumns[11]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "history_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{HistoriesColumns[4]},
			},
			{
				Name:    "history_status_imported_at",
				Unique:  false,
				Columns: []*schema.Column{HistoriesColumns[3], HistoriesColumns[8]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "dni", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeString, Nullable: true},
		{Name: "insurer", Type: field.TypeString, Nullable: true},
		{Name: "member_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_dni",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[2]},
			},
		},
	}
	// SourceFilesColumns holds the columns for the "source_files" table.
	SourceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "stored_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "history_id", Type: field.TypeUUID},
	}
	// SourceFilesTable holds the schema information for the "source_files" table.
	SourceFilesTable = &schema.Table{
		Name:       "source_files",
		Columns:    SourceFilesColumns,
		PrimaryKey: []*schema.Column{SourceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_files_histories_files",
				Columns:    []*schema.Column{SourceFilesColumns[8]},
				RefColumns: []*schema.Column{HistoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SourceFilesColumns[2]},
			},
			{
				Name:    "sourcefile_history_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SourceFilesColumns[8], SourceFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HistoriesTable,
		PatientsTable,
		SourceFilesTable,
	}
)

func init() {
	HistoriesTable.ForeignKeys[0].RefTable = PatientsTable
	HistoriesTable.Annotation = &entsql.Annotation{
		Table: "histories",
	}
	PatientsTable.Annotation = &entsql.Annotation{
		Table: "patients",
	}
	SourceFilesTable.ForeignKeys[0].RefTable = HistoriesTable
	SourceFilesTable.Annotation = &entsql.Annotation{
		Table: "source_files",
	}
}
