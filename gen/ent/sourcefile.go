// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ulieet/NeuroSoft/gen/ent/history"
	"github.com/ulieet/NeuroSoft/gen/ent/sourcefile"
)

// SourceFile is the model entity for the SourceFile schema.
type SourceFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// HistoryID holds the value of the "history_id" field.
	HistoryID uuid.UUID `json:"history_id,omitempty"`
	// StoredPath holds the value of the "stored_path" field.
	StoredPath string `json:"stored_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// Pages holds the value of the "pages" field.
	Pages int `json:"pages,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceFileQuery when eager-loading is set.
	Edges        SourceFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceFileEdges holds the relations/edges for other nodes in the graph.
type SourceFileEdges struct {
	// History holds the value of the history edge.
	History *History `json:"history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HistoryOrErr returns the History value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceFileEdges) HistoryOrErr() (*History, error) {
	if e.History != nil {
		return e.History, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: history.Label}
	}
	return nil, &NotLoadedError{edge: "history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcefile.FieldContentHash:
			values[i] = new([]byte)
		case sourcefile.FieldFileSize, sourcefile.FieldPages:
			values[i] = new(sql.NullInt64)
		case sourcefile.FieldStoredPath, sourcefile.FieldFilename, sourcefile.FieldFileExt:
			values[i] = new(sql.NullString)
		case sourcefile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case sourcefile.FieldID, sourcefile.FieldHistoryID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceFile fields.
func (_m *SourceFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcefile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sourcefile.FieldHistoryID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field history_id", values[i])
			} else if value != nil {
				_m.HistoryID = *value
			}
		case sourcefile.FieldStoredPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stored_path", values[i])
			} else if value.Valid {
				_m.StoredPath = value.String
			}
		case sourcefile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case sourcefile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case sourcefile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case sourcefile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case sourcefile.FieldPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value.Valid {
				_m.Pages = int(value.Int64)
			}
		case sourcefile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceFile.
// This includes values selected through modifiers, order, etc.
func (_m *SourceFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHistory queries the "history" edge of the SourceFile entity.
func (_m *SourceFile) QueryHistory() *HistoryQuery {
	return NewSourceFileClient(_m.config).QueryHistory(_m)
}

// Update returns a builder for updating this SourceFile.
// Note that you need to call SourceFile.Unwrap() before calling this method if this SourceFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceFile) Update() *SourceFileUpdateOne {
	return NewSourceFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceFile) Unwrap() *SourceFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceFile) String() string {
	var builder strings.Builder
	builder.WriteString("SourceFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("history_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HistoryID))
	builder.WriteString(", ")
	builder.WriteString("stored_path=")
	builder.WriteString(_m.StoredPath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pages))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceFiles is a parsable slice of SourceFile.
type SourceFiles []*SourceFile
