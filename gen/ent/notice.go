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
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
)

// Notice is the model entity for the Notice schema.
type Notice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// GazetteID holds the value of the "gazette_id" field.
	GazetteID uuid.UUID `json:"gazette_id,omitempty"`
	// NoticeNumber holds the value of the "notice_number" field.
	NoticeNumber int `json:"notice_number,omitempty"`
	// MajorType holds the value of the "major_type" field.
	MajorType string `json:"major_type,omitempty"`
	// MinorType holds the value of the "minor_type" field.
	MinorType string `json:"minor_type,omitempty"`
	// Page holds the value of the "page" field.
	Page *int `json:"page,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NoticeQuery when eager-loading is set.
	Edges        NoticeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NoticeEdges holds the relations/edges for other nodes in the graph.
type NoticeEdges struct {
	// Gazette holds the value of the gazette edge.
	Gazette *Gazette `json:"gazette,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GazetteOrErr returns the Gazette value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NoticeEdges) GazetteOrErr() (*Gazette, error) {
	if e.Gazette != nil {
		return e.Gazette, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: gazette.Label}
	}
	return nil, &NotLoadedError{edge: "gazette"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Notice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notice.FieldNoticeNumber, notice.FieldPage:
			values[i] = new(sql.NullInt64)
		case notice.FieldMajorType, notice.FieldMinorType, notice.FieldDescription:
			values[i] = new(sql.NullString)
		case notice.FieldCreatedAt, notice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notice.FieldID, notice.FieldGazetteID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Notice fields.
func (_m *Notice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notice.FieldGazetteID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field gazette_id", values[i])
			} else if value != nil {
				_m.GazetteID = *value
			}
		case notice.FieldNoticeNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field notice_number", values[i])
			} else if value.Valid {
				_m.NoticeNumber = int(value.Int64)
			}
		case notice.FieldMajorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field major_type", values[i])
			} else if value.Valid {
				_m.MajorType = value.String
			}
		case notice.FieldMinorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field minor_type", values[i])
			} else if value.Valid {
				_m.MinorType = value.String
			}
		case notice.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = new(int)
				*_m.Page = int(value.Int64)
			}
		case notice.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case notice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notice.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Notice.
// This includes values selected through modifiers, order, etc.
func (_m *Notice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGazette queries the "gazette" edge of the Notice entity.
func (_m *Notice) QueryGazette() *GazetteQuery {
	return NewNoticeClient(_m.config).QueryGazette(_m)
}

// Update returns a builder for updating this Notice.
// Note that you need to call Notice.Unwrap() before calling this method if this Notice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Notice) Update() *NoticeUpdateOne {
	return NewNoticeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Notice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Notice) Unwrap() *Notice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Notice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Notice) String() string {
	var builder strings.Builder
	builder.WriteString("Notice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("gazette_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GazetteID))
	builder.WriteString(", ")
	builder.WriteString("notice_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoticeNumber))
	builder.WriteString(", ")
	builder.WriteString("major_type=")
	builder.WriteString(_m.MajorType)
	builder.WriteString(", ")
	builder.WriteString("minor_type=")
	builder.WriteString(_m.MinorType)
	builder.WriteString(", ")
	if v := _m.Page; v != nil {
		builder.WriteString("page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Notices is a parsable slice of Notice.
type Notices []*Notice
