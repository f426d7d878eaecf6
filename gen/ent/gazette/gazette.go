// Code generated by ent, DO NOT EDIT.

package gazette

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the gazette type in the database.
	Label = "gazette"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGazetteNumber holds the string denoting the gazette_number field in the database.
	FieldGazetteNumber = "gazette_number"
	// FieldPublicationDate holds the string denoting the publication_date field in the database.
	FieldPublicationDate = "publication_date"
	// FieldIssn holds the string denoting the issn field in the database.
	FieldIssn = "issn"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeNotices holds the string denoting the notices edge name in mutations.
	EdgeNotices = "notices"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the gazette in the database.
	Table = "gazettes"
	// NoticesTable is the table that holds the notices relation/edge.
	NoticesTable = "notices"
	// NoticesInverseTable is the table name for the Notice entity.
	// It exists in this package in order to avoid circular dependency with the "notice" package.
	NoticesInverseTable = "notices"
	// NoticesColumn is the table column denoting the notices relation/edge.
	NoticesColumn = "gazette_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_job"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "gazette_id"
)

// Columns holds all SQL columns for gazette fields.
var Columns = []string{
	FieldID,
	FieldGazetteNumber,
	FieldPublicationDate,
	FieldIssn,
	FieldSourcePath,
	FieldFilename,
	FieldContentHash,
	FieldFileSize,
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
	// GazetteNumberValidator is a validator for the "gazette_number" field. It is called by the builders before save.
	GazetteNumberValidator func(int) error
	// IssnValidator is a validator for the "issn" field. It is called by the builders before save.
	IssnValidator func(string) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Gazette queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGazetteNumber orders the results by the gazette_number field.
func ByGazetteNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGazetteNumber, opts...).ToFunc()
}

// ByPublicationDate orders the results by the publication_date field.
func ByPublicationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationDate, opts...).ToFunc()
}

// ByIssn orders the results by the issn field.
func ByIssn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssn, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNoticesCount orders the results by notices count.
func ByNoticesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNoticesStep(), opts...)
	}
}

// ByNotices orders the results by notices terms.
func ByNotices(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNoticesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNoticesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NoticesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NoticesTable, NoticesColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
