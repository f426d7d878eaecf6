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
	"github.com/weekly-statutes/gazette-tracker/gen/ent/extractjob"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/predicate"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGazetteID sets the "gazette_id" field.
func (_u *ExtractJobUpdate) SetGazetteID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetGazetteID(v)
	return _u
}

// SetNillableGazetteID sets the "gazette_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableGazetteID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetGazetteID(*v)
	}
	return _u
}

// SetNoticeNumber sets the "notice_number" field.
func (_u *ExtractJobUpdate) SetNoticeNumber(v int) *ExtractJobUpdate {
	_u.mutation.ResetNoticeNumber()
	_u.mutation.SetNoticeNumber(v)
	return _u
}

// SetNillableNoticeNumber sets the "notice_number" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableNoticeNumber(v *int) *ExtractJobUpdate {
	if v != nil {
		_u.SetNoticeNumber(*v)
	}
	return _u
}

// AddNoticeNumber adds value to the "notice_number" field.
func (_u *ExtractJobUpdate) AddNoticeNumber(v int) *ExtractJobUpdate {
	_u.mutation.AddNoticeNumber(v)
	return _u
}

// ClearNoticeNumber clears the value of the "notice_number" field.
func (_u *ExtractJobUpdate) ClearNoticeNumber() *ExtractJobUpdate {
	_u.mutation.ClearNoticeNumber()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdate) SetFormat(v string) *ExtractJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFormat(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdate) SetStartedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdate) SetFinishedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdate) SetStatus(v string) *ExtractJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStatus(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdate) SetErrorMessage(v string) *ExtractJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableErrorMessage(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrMethod sets the "ocr_method" field.
func (_u *ExtractJobUpdate) SetOcrMethod(v string) *ExtractJobUpdate {
	_u.mutation.SetOcrMethod(v)
	return _u
}

// SetNillableOcrMethod sets the "ocr_method" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableOcrMethod(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetOcrMethod(*v)
	}
	return _u
}

// ClearOcrMethod clears the value of the "ocr_method" field.
func (_u *ExtractJobUpdate) ClearOcrMethod() *ExtractJobUpdate {
	_u.mutation.ClearOcrMethod()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ExtractJobUpdate) SetOcrConfidence(v float32) *ExtractJobUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableOcrConfidence(v *float32) *ExtractJobUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ExtractJobUpdate) AddOcrConfidence(v float32) *ExtractJobUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ExtractJobUpdate) ClearOcrConfidence() *ExtractJobUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractJobUpdate) SetOcrText(v string) *ExtractJobUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableOcrText(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractJobUpdate) ClearOcrText() *ExtractJobUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractJobUpdate) SetModelName(v string) *ExtractJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableModelName(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractJobUpdate) ClearModelName() *ExtractJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetGazette sets the "gazette" edge to the Gazette entity.
func (_u *ExtractJobUpdate) SetGazette(v *Gazette) *ExtractJobUpdate {
	return _u.SetGazetteID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearGazette clears the "gazette" edge to the Gazette entity.
func (_u *ExtractJobUpdate) ClearGazette() *ExtractJobUpdate {
	_u.mutation.ClearGazette()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if _u.mutation.GazetteCleared() && len(_u.mutation.GazetteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.gazette"`)
	}
	return nil
}

func (_u *ExtractJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NoticeNumber(); ok {
		_spec.SetField(extractjob.FieldNoticeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoticeNumber(); ok {
		_spec.AddField(extractjob.FieldNoticeNumber, field.TypeInt, value)
	}
	if _u.mutation.NoticeNumberCleared() {
		_spec.ClearField(extractjob.FieldNoticeNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrMethod(); ok {
		_spec.SetField(extractjob.FieldOcrMethod, field.TypeString, value)
	}
	if _u.mutation.OcrMethodCleared() {
		_spec.ClearField(extractjob.FieldOcrMethod, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(extractjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(extractjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(extractjob.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if _u.mutation.GazetteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.GazetteTable,
			Columns: []string{extractjob.GazetteColumn},
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
			Table:   extractjob.GazetteTable,
			Columns: []string{extractjob.GazetteColumn},
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
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetGazetteID sets the "gazette_id" field.
func (_u *ExtractJobUpdateOne) SetGazetteID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetGazetteID(v)
	return _u
}

// SetNillableGazetteID sets the "gazette_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableGazetteID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetGazetteID(*v)
	}
	return _u
}

// SetNoticeNumber sets the "notice_number" field.
func (_u *ExtractJobUpdateOne) SetNoticeNumber(v int) *ExtractJobUpdateOne {
	_u.mutation.ResetNoticeNumber()
	_u.mutation.SetNoticeNumber(v)
	return _u
}

// SetNillableNoticeNumber sets the "notice_number" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableNoticeNumber(v *int) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetNoticeNumber(*v)
	}
	return _u
}

// AddNoticeNumber adds value to the "notice_number" field.
func (_u *ExtractJobUpdateOne) AddNoticeNumber(v int) *ExtractJobUpdateOne {
	_u.mutation.AddNoticeNumber(v)
	return _u
}

// ClearNoticeNumber clears the value of the "notice_number" field.
func (_u *ExtractJobUpdateOne) ClearNoticeNumber() *ExtractJobUpdateOne {
	_u.mutation.ClearNoticeNumber()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExtractJobUpdateOne) SetFormat(v string) *ExtractJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFormat(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdateOne) SetStartedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdateOne) SetFinishedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdateOne) SetStatus(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStatus(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdateOne) SetErrorMessage(v string) *ExtractJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrMethod sets the "ocr_method" field.
func (_u *ExtractJobUpdateOne) SetOcrMethod(v string) *ExtractJobUpdateOne {
	_u.mutation.SetOcrMethod(v)
	return _u
}

// SetNillableOcrMethod sets the "ocr_method" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableOcrMethod(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetOcrMethod(*v)
	}
	return _u
}

// ClearOcrMethod clears the value of the "ocr_method" field.
func (_u *ExtractJobUpdateOne) ClearOcrMethod() *ExtractJobUpdateOne {
	_u.mutation.ClearOcrMethod()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *ExtractJobUpdateOne) SetOcrConfidence(v float32) *ExtractJobUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableOcrConfidence(v *float32) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *ExtractJobUpdateOne) AddOcrConfidence(v float32) *ExtractJobUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *ExtractJobUpdateOne) ClearOcrConfidence() *ExtractJobUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractJobUpdateOne) SetOcrText(v string) *ExtractJobUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableOcrText(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractJobUpdateOne) ClearOcrText() *ExtractJobUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractJobUpdateOne) SetModelName(v string) *ExtractJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableModelName(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractJobUpdateOne) ClearModelName() *ExtractJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetGazette sets the "gazette" edge to the Gazette entity.
func (_u *ExtractJobUpdateOne) SetGazette(v *Gazette) *ExtractJobUpdateOne {
	return _u.SetGazetteID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearGazette clears the "gazette" edge to the Gazette entity.
func (_u *ExtractJobUpdateOne) ClearGazette() *ExtractJobUpdateOne {
	_u.mutation.ClearGazette()
	return _u
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractJob entity.
func (_u *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := extractjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.status": %w`, err)}
		}
	}
	if _u.mutation.GazetteCleared() && len(_u.mutation.GazetteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.gazette"`)
	}
	return nil
}

func (_u *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
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
		_spec.SetField(extractjob.FieldNoticeNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoticeNumber(); ok {
		_spec.AddField(extractjob.FieldNoticeNumber, field.TypeInt, value)
	}
	if _u.mutation.NoticeNumberCleared() {
		_spec.ClearField(extractjob.FieldNoticeNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(extractjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrMethod(); ok {
		_spec.SetField(extractjob.FieldOcrMethod, field.TypeString, value)
	}
	if _u.mutation.OcrMethodCleared() {
		_spec.ClearField(extractjob.FieldOcrMethod, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(extractjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(extractjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(extractjob.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractjob.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractjob.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if _u.mutation.GazetteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.GazetteTable,
			Columns: []string{extractjob.GazetteColumn},
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
			Table:   extractjob.GazetteTable,
			Columns: []string{extractjob.GazetteColumn},
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
	_node = &ExtractJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
