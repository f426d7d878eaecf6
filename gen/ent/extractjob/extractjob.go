// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractjob type in the database.
	Label = "extract_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGazetteID holds the string denoting the gazette_id field in the database.
	FieldGazetteID = "gazette_id"
	// FieldNoticeNumber holds the string denoting the notice_number field in the database.
	FieldNoticeNumber = "notice_number"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldOcrMethod holds the string denoting the ocr_method field in the database.
	FieldOcrMethod = "ocr_method"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldOcrText holds the string denoting the ocr_text field in the database.
	FieldOcrText = "ocr_text"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// EdgeGazette holds the string denoting the gazette edge name in mutations.
	EdgeGazette = "gazette"
	// Table holds the table name of the extractjob in the database.
	Table = "extract_job"
	// GazetteTable is the table that holds the gazette relation/edge.
	GazetteTable = "extract_job"
	// GazetteInverseTable is the table name for the Gazette entity.
	// It exists in this package in order to avoid circular dependency with the "gazette" package.
	GazetteInverseTable = "gazettes"
	// GazetteColumn is the table column denoting the gazette relation/edge.
	GazetteColumn = "gazette_id"
)

// Columns holds all SQL columns for extractjob fields.
var Columns = []string{
	FieldID,
	FieldGazetteID,
	FieldNoticeNumber,
	FieldFormat,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldOcrMethod,
	FieldOcrConfidence,
	FieldOcrText,
	FieldModelName,
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
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractJob queries.
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

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByOcrMethod orders the results by the ocr_method field.
func ByOcrMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrMethod, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByOcrText orders the results by the ocr_text field.
func ByOcrText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrText, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
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
