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
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/predicate"
)

// GazetteUpdate is the builder for updating Gazette entities.
type GazetteUpdate struct {
	config
	hooks    []Hook
	mutation *GazetteMutation
}

// Where appends a list predicates to the GazetteUpdate builder.
func (_u *GazetteUpdate) Where(ps ...predicate.Gazette) *GazetteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGazetteNumber sets the "gazette_number" field.
func (_u *GazetteUpdate) SetGazetteNumber(v int) *GazetteUpdate {
	_u.mutation.ResetGazetteNumber()
	_u.mutation.SetGazetteNumber(v)
	return _u
}

// SetNillableGazetteNumber sets the "gazette_number" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillableGazetteNumber(v *int) *GazetteUpdate {
	if v != nil {
		_u.SetGazetteNumber(*v)
	}
	return _u
}

// AddGazetteNumber adds value to the "gazette_number" field.
func (_u *GazetteUpdate) AddGazetteNumber(v int) *GazetteUpdate {
	_u.mutation.AddGazetteNumber(v)
	return _u
}

// SetPublicationDate sets the "publication_date" field.
func (_u *GazetteUpdate) SetPublicationDate(v time.Time) *GazetteUpdate {
	_u.mutation.SetPublicationDate(v)
	return _u
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillablePublicationDate(v *time.Time) *GazetteUpdate {
	if v != nil {
		_u.SetPublicationDate(*v)
	}
	return _u
}

// SetIssn sets the "issn" field.
func (_u *GazetteUpdate) SetIssn(v string) *GazetteUpdate {
	_u.mutation.SetIssn(v)
	return _u
}

// SetNillableIssn sets the "issn" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillableIssn(v *string) *GazetteUpdate {
	if v != nil {
		_u.SetIssn(*v)
	}
	return _u
}

// ClearIssn clears the value of the "issn" field.
func (_u *GazetteUpdate) ClearIssn() *GazetteUpdate {
	_u.mutation.ClearIssn()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *GazetteUpdate) SetSourcePath(v string) *GazetteUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillableSourcePath(v *string) *GazetteUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *GazetteUpdate) SetFilename(v string) *GazetteUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillableFilename(v *string) *GazetteUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *GazetteUpdate) SetContentHash(v []byte) *GazetteUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *GazetteUpdate) SetFileSize(v int) *GazetteUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillableFileSize(v *int) *GazetteUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *GazetteUpdate) AddFileSize(v int) *GazetteUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GazetteUpdate) SetCreatedAt(v time.Time) *GazetteUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GazetteUpdate) SetNillableCreatedAt(v *time.Time) *GazetteUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GazetteUpdate) SetUpdatedAt(v time.Time) *GazetteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNoticeIDs adds the "notices" edge to the Notice entity by IDs.
func (_u *GazetteUpdate) AddNoticeIDs(ids ...uuid.UUID) *GazetteUpdate {
	_u.mutation.AddNoticeIDs(ids...)
	return _u
}

// AddNotices adds the "notices" edges to the Notice entity.
func (_u *GazetteUpdate) AddNotices(v ...*Notice) *GazetteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoticeIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *GazetteUpdate) AddJobIDs(ids ...uuid.UUID) *GazetteUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *GazetteUpdate) AddJobs(v ...*ExtractJob) *GazetteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the GazetteMutation object of the builder.
func (_u *GazetteUpdate) Mutation() *GazetteMutation {
	return _u.mutation
}

// ClearNotices clears all "notices" edges to the Notice entity.
func (_u *GazetteUpdate) ClearNotices() *GazetteUpdate {
	_u.mutation.ClearNotices()
	return _u
}

// RemoveNoticeIDs removes the "notices" edge to Notice entities by IDs.
func (_u *GazetteUpdate) RemoveNoticeIDs(ids ...uuid.UUID) *GazetteUpdate {
	_u.mutation.RemoveNoticeIDs(ids...)
	return _u
}

// RemoveNotices removes "notices" edges to Notice entities.
func (_u *GazetteUpdate) RemoveNotices(v ...*Notice) *GazetteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoticeIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *GazetteUpdate) ClearJobs() *GazetteUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *GazetteUpdate) RemoveJobIDs(ids ...uuid.UUID) *GazetteUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *GazetteUpdate) RemoveJobs(v ...*ExtractJob) *GazetteUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GazetteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GazetteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GazetteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GazetteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GazetteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gazette.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GazetteUpdate) check() error {
	if v, ok := _u.mutation.GazetteNumber(); ok {
		if err := gazette.GazetteNumberValidator(v); err != nil {
			return &ValidationError{Name: "gazette_number", err: fmt.Errorf(`ent: validator failed for field "Gazette.gazette_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Issn(); ok {
		if err := gazette.IssnValidator(v); err != nil {
			return &ValidationError{Name: "issn", err: fmt.Errorf(`ent: validator failed for field "Gazette.issn": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := gazette.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Gazette.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := gazette.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Gazette.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := gazette.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Gazette.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := gazette.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Gazette.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *GazetteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gazette.Table, gazette.Columns, sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GazetteNumber(); ok {
		_spec.SetField(gazette.FieldGazetteNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGazetteNumber(); ok {
		_spec.AddField(gazette.FieldGazetteNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PublicationDate(); ok {
		_spec.SetField(gazette.FieldPublicationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Issn(); ok {
		_spec.SetField(gazette.FieldIssn, field.TypeString, value)
	}
	if _u.mutation.IssnCleared() {
		_spec.ClearField(gazette.FieldIssn, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(gazette.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(gazette.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(gazette.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(gazette.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(gazette.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gazette.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gazette.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NoticesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.NoticesTable,
			Columns: []string{gazette.NoticesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNoticesIDs(); len(nodes) > 0 && !_u.mutation.NoticesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.NoticesTable,
			Columns: []string{gazette.NoticesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoticesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.NoticesTable,
			Columns: []string{gazette.NoticesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.JobsTable,
			Columns: []string{gazette.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.JobsTable,
			Columns: []string{gazette.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.JobsTable,
			Columns: []string{gazette.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gazette.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GazetteUpdateOne is the builder for updating a single Gazette entity.
type GazetteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GazetteMutation
}

// SetGazetteNumber sets the "gazette_number" field.
func (_u *GazetteUpdateOne) SetGazetteNumber(v int) *GazetteUpdateOne {
	_u.mutation.ResetGazetteNumber()
	_u.mutation.SetGazetteNumber(v)
	return _u
}

// SetNillableGazetteNumber sets the "gazette_number" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillableGazetteNumber(v *int) *GazetteUpdateOne {
	if v != nil {
		_u.SetGazetteNumber(*v)
	}
	return _u
}

// AddGazetteNumber adds value to the "gazette_number" field.
func (_u *GazetteUpdateOne) AddGazetteNumber(v int) *GazetteUpdateOne {
	_u.mutation.AddGazetteNumber(v)
	return _u
}

// SetPublicationDate sets the "publication_date" field.
func (_u *GazetteUpdateOne) SetPublicationDate(v time.Time) *GazetteUpdateOne {
	_u.mutation.SetPublicationDate(v)
	return _u
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillablePublicationDate(v *time.Time) *GazetteUpdateOne {
	if v != nil {
		_u.SetPublicationDate(*v)
	}
	return _u
}

// SetIssn sets the "issn" field.
func (_u *GazetteUpdateOne) SetIssn(v string) *GazetteUpdateOne {
	_u.mutation.SetIssn(v)
	return _u
}

// SetNillableIssn sets the "issn" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillableIssn(v *string) *GazetteUpdateOne {
	if v != nil {
		_u.SetIssn(*v)
	}
	return _u
}

// ClearIssn clears the value of the "issn" field.
func (_u *GazetteUpdateOne) ClearIssn() *GazetteUpdateOne {
	_u.mutation.ClearIssn()
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *GazetteUpdateOne) SetSourcePath(v string) *GazetteUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillableSourcePath(v *string) *GazetteUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *GazetteUpdateOne) SetFilename(v string) *GazetteUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillableFilename(v *string) *GazetteUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *GazetteUpdateOne) SetContentHash(v []byte) *GazetteUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *GazetteUpdateOne) SetFileSize(v int) *GazetteUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillableFileSize(v *int) *GazetteUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *GazetteUpdateOne) AddFileSize(v int) *GazetteUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GazetteUpdateOne) SetCreatedAt(v time.Time) *GazetteUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GazetteUpdateOne) SetNillableCreatedAt(v *time.Time) *GazetteUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GazetteUpdateOne) SetUpdatedAt(v time.Time) *GazetteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNoticeIDs adds the "notices" edge to the Notice entity by IDs.
func (_u *GazetteUpdateOne) AddNoticeIDs(ids ...uuid.UUID) *GazetteUpdateOne {
	_u.mutation.AddNoticeIDs(ids...)
	return _u
}

// AddNotices adds the "notices" edges to the Notice entity.
func (_u *GazetteUpdateOne) AddNotices(v ...*Notice) *GazetteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoticeIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *GazetteUpdateOne) AddJobIDs(ids ...uuid.UUID) *GazetteUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *GazetteUpdateOne) AddJobs(v ...*ExtractJob) *GazetteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the GazetteMutation object of the builder.
func (_u *GazetteUpdateOne) Mutation() *GazetteMutation {
	return _u.mutation
}

// ClearNotices clears all "notices" edges to the Notice entity.
func (_u *GazetteUpdateOne) ClearNotices() *GazetteUpdateOne {
	_u.mutation.ClearNotices()
	return _u
}

// RemoveNoticeIDs removes the "notices" edge to Notice entities by IDs.
func (_u *GazetteUpdateOne) RemoveNoticeIDs(ids ...uuid.UUID) *GazetteUpdateOne {
	_u.mutation.RemoveNoticeIDs(ids...)
	return _u
}

// RemoveNotices removes "notices" edges to Notice entities.
func (_u *GazetteUpdateOne) RemoveNotices(v ...*Notice) *GazetteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoticeIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *GazetteUpdateOne) ClearJobs() *GazetteUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *GazetteUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *GazetteUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *GazetteUpdateOne) RemoveJobs(v ...*ExtractJob) *GazetteUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the GazetteUpdate builder.
func (_u *GazetteUpdateOne) Where(ps ...predicate.Gazette) *GazetteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GazetteUpdateOne) Select(field string, fields ...string) *GazetteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Gazette entity.
func (_u *GazetteUpdateOne) Save(ctx context.Context) (*Gazette, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GazetteUpdateOne) SaveX(ctx context.Context) *Gazette {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GazetteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GazetteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GazetteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gazette.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GazetteUpdateOne) check() error {
	if v, ok := _u.mutation.GazetteNumber(); ok {
		if err := gazette.GazetteNumberValidator(v); err != nil {
			return &ValidationError{Name: "gazette_number", err: fmt.Errorf(`ent: validator failed for field "Gazette.gazette_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Issn(); ok {
		if err := gazette.IssnValidator(v); err != nil {
			return &ValidationError{Name: "issn", err: fmt.Errorf(`ent: validator failed for field "Gazette.issn": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := gazette.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Gazette.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := gazette.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Gazette.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := gazette.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Gazette.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := gazette.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Gazette.file_size": %w`, err)}
		}
	}
	return nil
}

func (_u *GazetteUpdateOne) sqlSave(ctx context.Context) (_node *Gazette, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gazette.Table, gazette.Columns, sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Gazette.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gazette.FieldID)
		for _, f := range fields {
			if !gazette.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gazette.FieldID {
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
	if value, ok := _u.mutation.GazetteNumber(); ok {
		_spec.SetField(gazette.FieldGazetteNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGazetteNumber(); ok {
		_spec.AddField(gazette.FieldGazetteNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PublicationDate(); ok {
		_spec.SetField(gazette.FieldPublicationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Issn(); ok {
		_spec.SetField(gazette.FieldIssn, field.TypeString, value)
	}
	if _u.mutation.IssnCleared() {
		_spec.ClearField(gazette.FieldIssn, field.TypeString)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(gazette.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(gazette.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(gazette.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(gazette.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(gazette.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(gazette.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gazette.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NoticesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.NoticesTable,
			Columns: []string{gazette.NoticesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNoticesIDs(); len(nodes) > 0 && !_u.mutation.NoticesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.NoticesTable,
			Columns: []string{gazette.NoticesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoticesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.NoticesTable,
			Columns: []string{gazette.NoticesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.JobsTable,
			Columns: []string{gazette.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.JobsTable,
			Columns: []string{gazette.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   gazette.JobsTable,
			Columns: []string{gazette.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Gazette{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gazette.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
