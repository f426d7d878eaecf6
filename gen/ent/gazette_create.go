// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/extractjob"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
)

// GazetteCreate is the builder for creating a Gazette entity.
type GazetteCreate struct {
	config
	mutation *GazetteMutation
	hooks    []Hook
}

// SetGazetteNumber sets the "gazette_number" field.
func (_c *GazetteCreate) SetGazetteNumber(v int) *GazetteCreate {
	_c.mutation.SetGazetteNumber(v)
	return _c
}

// SetPublicationDate sets the "publication_date" field.
func (_c *GazetteCreate) SetPublicationDate(v time.Time) *GazetteCreate {
	_c.mutation.SetPublicationDate(v)
	return _c
}

// SetIssn sets the "issn" field.
func (_c *GazetteCreate) SetIssn(v string) *GazetteCreate {
	_c.mutation.SetIssn(v)
	return _c
}

// SetNillableIssn sets the "issn" field if the given value is not nil.
func (_c *GazetteCreate) SetNillableIssn(v *string) *GazetteCreate {
	if v != nil {
		_c.SetIssn(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *GazetteCreate) SetSourcePath(v string) *GazetteCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *GazetteCreate) SetFilename(v string) *GazetteCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *GazetteCreate) SetContentHash(v []byte) *GazetteCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *GazetteCreate) SetFileSize(v int) *GazetteCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GazetteCreate) SetCreatedAt(v time.Time) *GazetteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GazetteCreate) SetNillableCreatedAt(v *time.Time) *GazetteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GazetteCreate) SetUpdatedAt(v time.Time) *GazetteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GazetteCreate) SetNillableUpdatedAt(v *time.Time) *GazetteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GazetteCreate) SetID(v uuid.UUID) *GazetteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GazetteCreate) SetNillableID(v *uuid.UUID) *GazetteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddNoticeIDs adds the "notices" edge to the Notice entity by IDs.
func (_c *GazetteCreate) AddNoticeIDs(ids ...uuid.UUID) *GazetteCreate {
	_c.mutation.AddNoticeIDs(ids...)
	return _c
}

// AddNotices adds the "notices" edges to the Notice entity.
func (_c *GazetteCreate) AddNotices(v ...*Notice) *GazetteCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNoticeIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *GazetteCreate) AddJobIDs(ids ...uuid.UUID) *GazetteCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *GazetteCreate) AddJobs(v ...*ExtractJob) *GazetteCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the GazetteMutation object of the builder.
func (_c *GazetteCreate) Mutation() *GazetteMutation {
	return _c.mutation
}

// Save creates the Gazette in the database.
func (_c *GazetteCreate) Save(ctx context.Context) (*Gazette, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GazetteCreate) SaveX(ctx context.Context) *Gazette {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GazetteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GazetteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GazetteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gazette.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := gazette.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gazette.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GazetteCreate) check() error {
	if _, ok := _c.mutation.GazetteNumber(); !ok {
		return &ValidationError{Name: "gazette_number", err: errors.New(`ent: missing required field "Gazette.gazette_number"`)}
	}
	if v, ok := _c.mutation.GazetteNumber(); ok {
		if err := gazette.GazetteNumberValidator(v); err != nil {
			return &ValidationError{Name: "gazette_number", err: fmt.Errorf(`ent: validator failed for field "Gazette.gazette_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PublicationDate(); !ok {
		return &ValidationError{Name: "publication_date", err: errors.New(`ent: missing required field "Gazette.publication_date"`)}
	}
	if v, ok := _c.mutation.Issn(); ok {
		if err := gazette.IssnValidator(v); err != nil {
			return &ValidationError{Name: "issn", err: fmt.Errorf(`ent: validator failed for field "Gazette.issn": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Gazette.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := gazette.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Gazette.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Gazette.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := gazette.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Gazette.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Gazette.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := gazette.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Gazette.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Gazette.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := gazette.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Gazette.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Gazette.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Gazette.updated_at"`)}
	}
	return nil
}

func (_c *GazetteCreate) sqlSave(ctx context.Context) (*Gazette, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GazetteCreate) createSpec() (*Gazette, *sqlgraph.CreateSpec) {
	var (
		_node = &Gazette{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gazette.Table, sqlgraph.NewFieldSpec(gazette.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GazetteNumber(); ok {
		_spec.SetField(gazette.FieldGazetteNumber, field.TypeInt, value)
		_node.GazetteNumber = value
	}
	if value, ok := _c.mutation.PublicationDate(); ok {
		_spec.SetField(gazette.FieldPublicationDate, field.TypeTime, value)
		_node.PublicationDate = value
	}
	if value, ok := _c.mutation.Issn(); ok {
		_spec.SetField(gazette.FieldIssn, field.TypeString, value)
		_node.Issn = &value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(gazette.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(gazette.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(gazette.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(gazette.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gazette.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(gazette.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NoticesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GazetteCreateBulk is the builder for creating many Gazette entities in bulk.
type GazetteCreateBulk struct {
	config
	err      error
	builders []*GazetteCreate
}

// Save creates the Gazette entities in the database.
func (_c *GazetteCreateBulk) Save(ctx context.Context) ([]*Gazette, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Gazette, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GazetteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GazetteCreateBulk) SaveX(ctx context.Context) []*Gazette {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GazetteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GazetteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
