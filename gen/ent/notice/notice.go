// Code generated by ent, DO NOT EDIT.

package notice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notice type in the database.
	Label = "notice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGazetteID holds the string denoting the gazette_id field in the database.
	FieldGazetteID = "gazette_id"
	// FieldNoticeNumber holds the string denoting the notice_number field in the database.
	FieldNoticeNumber = "notice_number"
	// FieldMajorType holds the string denoting the major_type field in the database.
	FieldMajorType = "major_type"
	// FieldMinorType holds the string denoting the minor_type field in the database.
	FieldMinorType = "minor_type"
	// FieldPage holds the string denoting the page field in the database.
	FieldPage = "page"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeGazette holds the string denoting the gazette edge name in mutations.
	EdgeGazette = "gazette"
	// Table holds the table name of the notice in the database.
	Table = "notices"
	// GazetteTable is the table that holds the gazette relation/edge.
	GazetteTable = "notices"
	// GazetteInverseTable is the table name for the Gazette entity.
	// It exists in this package in order to avoid circular dependency with the "gazette" package.
	GazetteInverseTable = "gazettes"
	// GazetteColumn is the table column denoting the gazette relation/edge.
	GazetteColumn = "gazette_id"
)

// Columns holds all SQL columns for notice fields.
var Columns = []string{
	FieldID,
	FieldGazetteID,
	FieldNoticeNumber,
	FieldMajorType,
	FieldMinorType,
	FieldPage,
	FieldDescription,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NoticeNumberValidator is a validator for the "notice_number" field. It is called by the builders before save.
	NoticeNumberValidator func(int) error
	// MajorTypeValidator is a validator for the "major_type" field. It is called by the builders before save.
	MajorTypeValidator func(string) error
	// MinorTypeValidator is a validator for the "minor_type" field. It is called by the builders before save.
	MinorTypeValidator func(string) error
	// PageValidator is a validator for the "page" field. It is called by the builders before save.
	PageValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Notice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGazetteID orders the results by the gazette_id field.
func ByGazetteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGazetteID, opts...).ToFunc()
}

// ByNoticeNumber orders the results by the notice_number field.
func ByNoticeNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoticeNumber, opts...).ToFunc()
}

// ByMajorType orders the results by the major_type field.
func ByMajorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajorType, opts...).ToFunc()
}

// ByMinorType orders the results by the minor_type field.
func ByMinorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinorType, opts...).ToFunc()
}

// ByPage orders the results by the page field.
func ByPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPage, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByGazetteField orders the results by gazette field.
func ByGazetteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGazetteStep(), sql.OrderByField(field, opts...))
	}
}
func newGazetteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GazetteInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GazetteTable, GazetteColumn),
	)
}
