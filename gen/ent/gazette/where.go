// Code generated by ent, DO NOT EDIT.

package gazette

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldID, id))
}

// GazetteNumber applies equality check predicate on the "gazette_number" field. It's identical to GazetteNumberEQ.
func GazetteNumber(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldGazetteNumber, v))
}

// PublicationDate applies equality check predicate on the "publication_date" field. It's identical to PublicationDateEQ.
func PublicationDate(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldPublicationDate, v))
}

// Issn applies equality check predicate on the "issn" field. It's identical to IssnEQ.
func Issn(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldIssn, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldSourcePath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldFilename, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldContentHash, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldFileSize, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldUpdatedAt, v))
}

// GazetteNumberEQ applies the EQ predicate on the "gazette_number" field.
func GazetteNumberEQ(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldGazetteNumber, v))
}

// GazetteNumberNEQ applies the NEQ predicate on the "gazette_number" field.
func GazetteNumberNEQ(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldGazetteNumber, v))
}

// GazetteNumberIn applies the In predicate on the "gazette_number" field.
func GazetteNumberIn(vs ...int) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldGazetteNumber, vs...))
}

// GazetteNumberNotIn applies the NotIn predicate on the "gazette_number" field.
func GazetteNumberNotIn(vs ...int) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldGazetteNumber, vs...))
}

// GazetteNumberGT applies the GT predicate on the "gazette_number" field.
func GazetteNumberGT(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldGazetteNumber, v))
}

// GazetteNumberGTE applies the GTE predicate on the "gazette_number" field.
func GazetteNumberGTE(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldGazetteNumber, v))
}

// GazetteNumberLT applies the LT predicate on the "gazette_number" field.
func GazetteNumberLT(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldGazetteNumber, v))
}

// GazetteNumberLTE applies the LTE predicate on the "gazette_number" field.
func GazetteNumberLTE(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldGazetteNumber, v))
}

// PublicationDateEQ applies the EQ predicate on the "publication_date" field.
func PublicationDateEQ(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldPublicationDate, v))
}

// PublicationDateNEQ applies the NEQ predicate on the "publication_date" field.
func PublicationDateNEQ(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldPublicationDate, v))
}

// PublicationDateIn applies the In predicate on the "publication_date" field.
func PublicationDateIn(vs ...time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldPublicationDate, vs...))
}

// PublicationDateNotIn applies the NotIn predicate on the "publication_date" field.
func PublicationDateNotIn(vs ...time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldPublicationDate, vs...))
}

// PublicationDateGT applies the GT predicate on the "publication_date" field.
func PublicationDateGT(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldPublicationDate, v))
}

// PublicationDateGTE applies the GTE predicate on the "publication_date" field.
func PublicationDateGTE(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldPublicationDate, v))
}

// PublicationDateLT applies the LT predicate on the "publication_date" field.
func PublicationDateLT(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldPublicationDate, v))
}

// PublicationDateLTE applies the LTE predicate on the "publication_date" field.
func PublicationDateLTE(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldPublicationDate, v))
}

// IssnEQ applies the EQ predicate on the "issn" field.
func IssnEQ(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldIssn, v))
}

// IssnNEQ applies the NEQ predicate on the "issn" field.
func IssnNEQ(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldIssn, v))
}

// IssnIn applies the In predicate on the "issn" field.
func IssnIn(vs ...string) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldIssn, vs...))
}

// IssnNotIn applies the NotIn predicate on the "issn" field.
func IssnNotIn(vs ...string) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldIssn, vs...))
}

// IssnGT applies the GT predicate on the "issn" field.
func IssnGT(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldIssn, v))
}

// IssnGTE applies the GTE predicate on the "issn" field.
func IssnGTE(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldIssn, v))
}

// IssnLT applies the LT predicate on the "issn" field.
func IssnLT(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldIssn, v))
}

// IssnLTE applies the LTE predicate on the "issn" field.
func IssnLTE(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldIssn, v))
}

// IssnContains applies the Contains predicate on the "issn" field.
func IssnContains(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldContains(FieldIssn, v))
}

// IssnHasPrefix applies the HasPrefix predicate on the "issn" field.
func IssnHasPrefix(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldHasPrefix(FieldIssn, v))
}

// IssnHasSuffix applies the HasSuffix predicate on the "issn" field.
func IssnHasSuffix(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldHasSuffix(FieldIssn, v))
}

// IssnIsNil applies the IsNil predicate on the "issn" field.
func IssnIsNil() predicate.Gazette {
	return predicate.Gazette(sql.FieldIsNull(FieldIssn))
}

// IssnNotNil applies the NotNil predicate on the "issn" field.
func IssnNotNil() predicate.Gazette {
	return predicate.Gazette(sql.FieldNotNull(FieldIssn))
}

// IssnEqualFold applies the EqualFold predicate on the "issn" field.
func IssnEqualFold(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEqualFold(FieldIssn, v))
}

// IssnContainsFold applies the ContainsFold predicate on the "issn" field.
func IssnContainsFold(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldContainsFold(FieldIssn, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldContainsFold(FieldSourcePath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Gazette {
	return predicate.Gazette(sql.FieldContainsFold(FieldFilename, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldContentHash, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldFileSize, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Gazette {
	return predicate.Gazette(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNotices applies the HasEdge predicate on the "notices" edge.
func HasNotices() predicate.Gazette {
	return predicate.Gazette(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NoticesTable, NoticesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNoticesWith applies the HasEdge predicate on the "notices" edge with a given conditions (other predicates).
func HasNoticesWith(preds ...predicate.Notice) predicate.Gazette {
	return predicate.Gazette(func(s *sql.Selector) {
		step := newNoticesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Gazette {
	return predicate.Gazette(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Gazette {
	return predicate.Gazette(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Gazette) predicate.Gazette {
	return predicate.Gazette(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Gazette) predicate.Gazette {
	return predicate.Gazette(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Gazette) predicate.Gazette {
	return predicate.Gazette(sql.NotPredicates(p))
}
