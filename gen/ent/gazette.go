// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
)

// Gazette is the model entity for the Gazette schema.
type Gazette struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// GazetteNumber holds the value of the "gazette_number" field.
	GazetteNumber int `json:"gazette_number,omitempty"`
	// PublicationDate holds the value of the "publication_date" field.
	PublicationDate time.Time `json:"publication_date,omitempty"`
	// Issn holds the value of the "issn" field.
	Issn *string `json:"issn,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GazetteQuery when eager-loading is set.
	Edges        GazetteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GazetteEdges holds the relations/edges for other nodes in the graph.
type GazetteEdges struct {
	// Notices holds the value of the notices edge.
	Notices []*Notice `json:"notices,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NoticesOrErr returns the Notices value or an error if the edge
// was not loaded in eager-loading.
func (e GazetteEdges) NoticesOrErr() ([]*Notice, error) {
	if e.loadedTypes[0] {
		return e.Notices, nil
	}
	return nil, &NotLoadedError{edge: "notices"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e GazetteEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Gazette) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gazette.FieldContentHash:
			values[i] = new([]byte)
		case gazette.FieldGazetteNumber, gazette.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case gazette.FieldIssn, gazette.FieldSourcePath, gazette.FieldFilename:
			values[i] = new(sql.NullString)
		case gazette.FieldPublicationDate, gazette.FieldCreatedAt, gazette.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case gazette.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Gazette fields.
func (_m *Gazette) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gazette.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case gazette.FieldGazetteNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gazette_number", values[i])
			} else if value.Valid {
				_m.GazetteNumber = int(value.Int64)
			}
		case gazette.FieldPublicationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field publication_date", values[i])
			} else if value.Valid {
				_m.PublicationDate = value.Time
			}
		case gazette.FieldIssn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issn", values[i])
			} else if value.Valid {
				_m.Issn = new(string)
				*_m.Issn = value.String
			}
		case gazette.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case gazette.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case gazette.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case gazette.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case gazette.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gazette.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Gazette.
// This includes values selected through modifiers, order, etc.
func (_m *Gazette) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNotices queries the "notices" edge of the Gazette entity.
func (_m *Gazette) QueryNotices() *NoticeQuery {
	return NewGazetteClient(_m.config).QueryNotices(_m)
}

// QueryJobs queries the "jobs" edge of the Gazette entity.
func (_m *Gazette) QueryJobs() *ExtractJobQuery {
	return NewGazetteClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Gazette.
// Note that you need to call Gazette.Unwrap() before calling this method if this Gazette
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Gazette) Update() *GazetteUpdateOne {
	return NewGazetteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Gazette entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Gazette) Unwrap() *Gazette {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Gazette is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Gazette) String() string {
	var builder strings.Builder
	builder.WriteString("Gazette(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("gazette_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.GazetteNumber))
	builder.WriteString(", ")
	builder.WriteString("publication_date=")
	builder.WriteString(_m.PublicationDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Issn; v != nil {
		builder.WriteString("issn=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Gazettes is a parsable slice of Gazette.
type Gazettes []*Gazette
