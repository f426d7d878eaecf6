// Code generated by ent, DO NOT EDIT.

package notice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldID, id))
}

// GazetteID applies equality check predicate on the "gazette_id" field. It's identical to GazetteIDEQ.
func GazetteID(v uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldGazetteID, v))
}

// NoticeNumber applies equality check predicate on the "notice_number" field. It's identical to NoticeNumberEQ.
func NoticeNumber(v int) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldNoticeNumber, v))
}

// MajorType applies equality check predicate on the "major_type" field. It's identical to MajorTypeEQ.
func MajorType(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldMajorType, v))
}

// MinorType applies equality check predicate on the "minor_type" field. It's identical to MinorTypeEQ.
func MinorType(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldMinorType, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPage, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUpdatedAt, v))
}

// GazetteIDEQ applies the EQ predicate on the "gazette_id" field.
func GazetteIDEQ(v uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldGazetteID, v))
}

// GazetteIDNEQ applies the NEQ predicate on the "gazette_id" field.
func GazetteIDNEQ(v uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldGazetteID, v))
}

// GazetteIDIn applies the In predicate on the "gazette_id" field.
func GazetteIDIn(vs ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldGazetteID, vs...))
}

// GazetteIDNotIn applies the NotIn predicate on the "gazette_id" field.
func GazetteIDNotIn(vs ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldGazetteID, vs...))
}

// NoticeNumberEQ applies the EQ predicate on the "notice_number" field.
func NoticeNumberEQ(v int) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldNoticeNumber, v))
}

// NoticeNumberNEQ applies the NEQ predicate on the "notice_number" field.
func NoticeNumberNEQ(v int) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldNoticeNumber, v))
}

// NoticeNumberIn applies the In predicate on the "notice_number" field.
func NoticeNumberIn(vs ...int) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldNoticeNumber, vs...))
}

// NoticeNumberNotIn applies the NotIn predicate on the "notice_number" field.
func NoticeNumberNotIn(vs ...int) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldNoticeNumber, vs...))
}

// NoticeNumberGT applies the GT predicate on the "notice_number" field.
func NoticeNumberGT(v int) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldNoticeNumber, v))
}

// NoticeNumberGTE applies the GTE predicate on the "notice_number" field.
func NoticeNumberGTE(v int) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldNoticeNumber, v))
}

// NoticeNumberLT applies the LT predicate on the "notice_number" field.
func NoticeNumberLT(v int) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldNoticeNumber, v))
}

// NoticeNumberLTE applies the LTE predicate on the "notice_number" field.
func NoticeNumberLTE(v int) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldNoticeNumber, v))
}

// MajorTypeEQ applies the EQ predicate on the "major_type" field.
func MajorTypeEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldMajorType, v))
}

// MajorTypeNEQ applies the NEQ predicate on the "major_type" field.
func MajorTypeNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldMajorType, v))
}

// MajorTypeIn applies the In predicate on the "major_type" field.
func MajorTypeIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldMajorType, vs...))
}

// MajorTypeNotIn applies the NotIn predicate on the "major_type" field.
func MajorTypeNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldMajorType, vs...))
}

// MajorTypeGT applies the GT predicate on the "major_type" field.
func MajorTypeGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldMajorType, v))
}

// MajorTypeGTE applies the GTE predicate on the "major_type" field.
func MajorTypeGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldMajorType, v))
}

// MajorTypeLT applies the LT predicate on the "major_type" field.
func MajorTypeLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldMajorType, v))
}

// MajorTypeLTE applies the LTE predicate on the "major_type" field.
func MajorTypeLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldMajorType, v))
}

// MajorTypeContains applies the Contains predicate on the "major_type" field.
func MajorTypeContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldMajorType, v))
}

// MajorTypeHasPrefix applies the HasPrefix predicate on the "major_type" field.
func MajorTypeHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldMajorType, v))
}

// MajorTypeHasSuffix applies the HasSuffix predicate on the "major_type" field.
func MajorTypeHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldMajorType, v))
}

// MajorTypeEqualFold applies the EqualFold predicate on the "major_type" field.
func MajorTypeEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldMajorType, v))
}

// MajorTypeContainsFold applies the ContainsFold predicate on the "major_type" field.
func MajorTypeContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldMajorType, v))
}

// MinorTypeEQ applies the EQ predicate on the "minor_type" field.
func MinorTypeEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldMinorType, v))
}

// MinorTypeNEQ applies the NEQ predicate on the "minor_type" field.
func MinorTypeNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldMinorType, v))
}

// MinorTypeIn applies the In predicate on the "minor_type" field.
func MinorTypeIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldMinorType, vs...))
}

// MinorTypeNotIn applies the NotIn predicate on the "minor_type" field.
func MinorTypeNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldMinorType, vs...))
}

// MinorTypeGT applies the GT predicate on the "minor_type" field.
func MinorTypeGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldMinorType, v))
}

// MinorTypeGTE applies the GTE predicate on the "minor_type" field.
func MinorTypeGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldMinorType, v))
}

// MinorTypeLT applies the LT predicate on the "minor_type" field.
func MinorTypeLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldMinorType, v))
}

// MinorTypeLTE applies the LTE predicate on the "minor_type" field.
func MinorTypeLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldMinorType, v))
}

// MinorTypeContains applies the Contains predicate on the "minor_type" field.
func MinorTypeContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldMinorType, v))
}

// MinorTypeHasPrefix applies the HasPrefix predicate on the "minor_type" field.
func MinorTypeHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldMinorType, v))
}

// MinorTypeHasSuffix applies the HasSuffix predicate on the "minor_type" field.
func MinorTypeHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldMinorType, v))
}

// MinorTypeEqualFold applies the EqualFold predicate on the "minor_type" field.
func MinorTypeEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldMinorType, v))
}

// MinorTypeContainsFold applies the ContainsFold predicate on the "minor_type" field.
func MinorTypeContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldMinorType, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldPage, v))
}

// PageIsNil applies the IsNil predicate on the "page" field.
func PageIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldPage))
}

// PageNotNil applies the NotNil predicate on the "page" field.
func PageNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldPage))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasGazette applies the HasEdge predicate on the "gazette" edge.
func HasGazette() predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GazetteTable, GazetteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGazetteWith applies the HasEdge predicate on the "gazette" edge with a given conditions (other predicates).
func HasGazetteWith(preds ...predicate.Gazette) predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := newGazetteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.NotPredicates(p))
}
