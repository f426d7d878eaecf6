// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/predicate"
)

// NoticeUpdate is the builder for updating Notice entities.
type NoticeUpdate struct {
	config
	hooks    []Hook
	mutation *NoticeMutation
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdate) Where(ps ...predicate.Notice) *NoticeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGazetteID sets the "gazette_id" field.
func (_u *NoticeUpdate) SetGazetteID(v uuid.UUID) *NoticeUpdate {
	_u.mutation.SetGazetteID(v)
	return _u
}

// SetNillableGazetteID sets the "gazette_id" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableGazetteID(v *uuid.UUID) *NoticeUpdate {
	if v != nil {
		_u.SetGazetteID(*v)
	}
	return _u
}

// SetNoticeNumber sets the "notice_number" field.
func (_u *NoticeUpdate) SetNoticeNumber(v int) *NoticeUpdate {
	_u.mutation.ResetNoticeNumber()
	_u.mutation.SetNoticeNumber(v)
	return _u
}

// SetNillableNoticeNumber sets the "notice_number" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableNoticeNumber(v *int) *NoticeUpdate {
	if v != nil {
		_u.SetNoticeNumber(*v)
	}
	return _u
}

// AddNoticeNumber adds value to the "notice_number" field.
func (_u *NoticeUpdate) AddNoticeNumber(v int) *NoticeUpdate {
	_u.mutation.AddNoticeNumber(v)
	return _u
}

// SetMajorType sets the "major_type" field.
func (_u *NoticeUpdate) SetMajorType(v string) *NoticeUpdate {
	_u.mutation.SetMajorType(v)
	return _u
}

// SetNillableMajorType sets the "major_type" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableMajorType(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetMajorType(*v)
	}
	return _u
}

// SetMinorType sets the "minor_type" field.
func (_u *NoticeUpdate) SetMinorType(v string) *NoticeUpdate {
	_u.mutation.SetMinorType(v)
	return _u
}

// SetNillableMinorType sets the "minor_type" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableMinorType(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetMinorType(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *NoticeUpdate) SetPage(v int) *NoticeUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillablePage(v *int) *NoticeUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *NoticeUpdate) AddPage(v int) *NoticeUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *NoticeUpdate) ClearPage() *NoticeUpdate {
	_u.mutation.ClearPage()
	return _u
}

// SetDescription sets the "description" field.
func (_u *NoticeUpdate) SetDescription(v string) *NoticeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableDescription(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NoticeUpdate) SetCreatedAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCreatedAt(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NoticeUpdate) SetUpdatedAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGazette sets the "gazette" edge to the Gazette entity.
func (_u *NoticeUpdate) SetGazette(v *Gazette) *NoticeUpdate {
	return _u.SetGazetteID(v.ID)
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdate) Mutation() *NoticeMutation {
	return _u.mutation
}

// ClearGazette clears the "gazette" edge to the Gazette entity.
func (_u *NoticeUpdate) ClearGazette() *NoticeUpdate {
	_u.mutation.ClearGazette()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NoticeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NoticeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NoticeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdate) check() error {
	if v, ok := _u.mutation.NoticeNumber(); ok {
		if err := notice.NoticeNumberValidator(v); err != nil {
			return &ValidationError{Name: "notice_number", err: fmt.Errorf(`ent: validator failed for field "Notice.notice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MajorType(); ok {
		if err := notice.MajorTypeValidator(v); err != nil {
			return &ValidationError{Name: "major_type", err: fmt.Errorf(`ent: validator failed for field "Notice.major_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinorType(); ok {
		if err := notice.MinorTypeValidator(v); err != nil {
			return &ValidationError{Name: "minor_type", err: fmt.Errorf(`ent: validator failed for field "Notice.minor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Page(); ok {
		if err := notice.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "Notice.page": %w`, err)}
		}
	}
	if _u.mutation.GazetteCleared() && len(_u.mutation.GazetteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Notice.gazette"`)
	}
	return nil
}

func (_u *NoticeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoticeNumber(); ok {
		_spec.SetField(notice.FieldNoticeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoticeNumber(); ok {
		_spec.AddField(notice.FieldNoticeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MajorType(); ok {
		_spec.SetField(notice.FieldMajorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinorType(); ok {
		_spec.SetField(notice.FieldMinorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(notice.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(notice.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(notice.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(notice.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GazetteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notice.GazetteTable,
			Columns: []string{notice.GazetteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GazetteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notice.GazetteTable,
			Columns: []string{notice.GazetteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NoticeUpdateOne is the builder for updating a single Notice entity.
type NoticeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NoticeMutation
}

// SetGazetteID sets the "gazette_id" field.
func (_u *NoticeUpdateOne) SetGazetteID(v uuid.UUID) *NoticeUpdateOne {
	_u.mutation.SetGazetteID(v)
	return _u
}

// SetNillableGazetteID sets the "gazette_id" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableGazetteID(v *uuid.UUID) *NoticeUpdateOne {
	if v != nil {
		_u.SetGazetteID(*v)
	}
	return _u
}

// SetNoticeNumber sets the "notice_number" field.
func (_u *NoticeUpdateOne) SetNoticeNumber(v int) *NoticeUpdateOne {
	_u.mutation.ResetNoticeNumber()
	_u.mutation.SetNoticeNumber(v)
	return _u
}

// SetNillableNoticeNumber sets the "notice_number" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableNoticeNumber(v *int) *NoticeUpdateOne {
	if v != nil {
		_u.SetNoticeNumber(*v)
	}
	return _u
}

// AddNoticeNumber adds value to the "notice_number" field.
func (_u *NoticeUpdateOne) AddNoticeNumber(v int) *NoticeUpdateOne {
	_u.mutation.AddNoticeNumber(v)
	return _u
}

// SetMajorType sets the "major_type" field.
func (_u *NoticeUpdateOne) SetMajorType(v string) *NoticeUpdateOne {
	_u.mutation.SetMajorType(v)
	return _u
}

// SetNillableMajorType sets the "major_type" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableMajorType(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetMajorType(*v)
	}
	return _u
}

// SetMinorType sets the "minor_type" field.
func (_u *NoticeUpdateOne) SetMinorType(v string) *NoticeUpdateOne {
	_u.mutation.SetMinorType(v)
	return _u
}

// SetNillableMinorType sets the "minor_type" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableMinorType(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetMinorType(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *NoticeUpdateOne) SetPage(v int) *NoticeUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillablePage(v *int) *NoticeUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *NoticeUpdateOne) AddPage(v int) *NoticeUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// ClearPage clears the value of the "page" field.
func (_u *NoticeUpdateOne) ClearPage() *NoticeUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// SetDescription sets the "description" field.
func (_u *NoticeUpdateOne) SetDescription(v string) *NoticeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableDescription(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NoticeUpdateOne) SetCreatedAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCreatedAt(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NoticeUpdateOne) SetUpdatedAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGazette sets the "gazette" edge to the Gazette entity.
func (_u *NoticeUpdateOne) SetGazette(v *Gazette) *NoticeUpdateOne {
	return _u.SetGazetteID(v.ID)
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdateOne) Mutation() *NoticeMutation {
	return _u.mutation
}

// ClearGazette clears the "gazette" edge to the Gazette entity.
func (_u *NoticeUpdateOne) ClearGazette() *NoticeUpdateOne {
	_u.mutation.ClearGazette()
	return _u
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdateOne) Where(ps ...predicate.Notice) *NoticeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NoticeUpdateOne) Select(field string, fields ...string) *NoticeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notice entity.
func (_u *NoticeUpdateOne) Save(ctx context.Context) (*Notice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdateOne) SaveX(ctx context.Context) *Notice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NoticeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NoticeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdateOne) check() error {
	if v, ok := _u.mutation.NoticeNumber(); ok {
		if err := notice.NoticeNumberValidator(v); err != nil {
			return &ValidationError{Name: "notice_number", err: fmt.Errorf(`ent: validator failed for field "Notice.notice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MajorType(); ok {
		if err := notice.MajorTypeValidator(v); err != nil {
			return &ValidationError{Name: "major_type", err: fmt.Errorf(`ent: validator failed for field "Notice.major_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinorType(); ok {
		if err := notice.MinorTypeValidator(v); err != nil {
			return &ValidationError{Name: "minor_type", err: fmt.Errorf(`ent: validator failed for field "Notice.minor_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Page(); ok {
		if err := notice.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "Notice.page": %w`, err)}
		}
	}
	if _u.mutation.GazetteCleared() && len(_u.mutation.GazetteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Notice.gazette"`)
	}
	return nil
}

func (_u *NoticeUpdateOne) sqlSave(ctx context.Context) (_node *Notice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notice.FieldID)
		for _, f := range fields {
			if !notice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoticeNumber(); ok {
		_spec.SetField(notice.FieldNoticeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoticeNumber(); ok {
		_spec.AddField(notice.FieldNoticeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MajorType(); ok {
		_spec.SetField(notice.FieldMajorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinorType(); ok {
		_spec.SetField(notice.FieldMinorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(notice.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(notice.FieldPage, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		_spec.ClearField(notice.FieldPage, field.TypeInt)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(notice.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GazetteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notice.GazetteTable,
			Columns: []string{notice.GazetteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GazetteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notice.GazetteTable,
			Columns: []string{notice.GazetteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Notice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
