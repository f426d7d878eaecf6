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
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
)

// NoticeCreate is the builder for creating a Notice entity.
type NoticeCreate struct {
	config
	mutation *NoticeMutation
	hooks    []Hook
}

// SetGazetteID sets the "gazette_id" field.
func (_c *NoticeCreate) SetGazetteID(v uuid.UUID) *NoticeCreate {
	_c.mutation.SetGazetteID(v)
	return _c
}

// SetNoticeNumber sets the "notice_number" field.
func (_c *NoticeCreate) SetNoticeNumber(v int) *NoticeCreate {
	_c.mutation.SetNoticeNumber(v)
	return _c
}

// SetMajorType sets the "major_type" field.
func (_c *NoticeCreate) SetMajorType(v string) *NoticeCreate {
	_c.mutation.SetMajorType(v)
	return _c
}

// SetMinorType sets the "minor_type" field.
func (_c *NoticeCreate) SetMinorType(v string) *NoticeCreate {
	_c.mutation.SetMinorType(v)
	return _c
}

// SetPage sets the "page" field.
func (_c *NoticeCreate) SetPage(v int) *NoticeCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_c *NoticeCreate) SetNillablePage(v *int) *NoticeCreate {
	if v != nil {
		_c.SetPage(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *NoticeCreate) SetDescription(v string) *NoticeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NoticeCreate) SetCreatedAt(v time.Time) *NoticeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableCreatedAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NoticeCreate) SetUpdatedAt(v time.Time) *NoticeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableUpdatedAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NoticeCreate) SetID(v uuid.UUID) *NoticeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableID(v *uuid.UUID) *NoticeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGazette sets the "gazette" edge to the Gazette entity.
func (_c *NoticeCreate) SetGazette(v *Gazette) *NoticeCreate {
	return _c.SetGazetteID(v.ID)
}

// Mutation returns the NoticeMutation object of the builder.
func (_c *NoticeCreate) Mutation() *NoticeMutation {
	return _c.mutation
}

// Save creates the Notice in the database.
func (_c *NoticeCreate) Save(ctx context.Context) (*Notice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NoticeCreate) SaveX(ctx context.Context) *Notice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoticeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoticeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NoticeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NoticeCreate) check() error {
	if _, ok := _c.mutation.GazetteID(); !ok {
		return &ValidationError{Name: "gazette_id", err: errors.New(`ent: missing required field "Notice.gazette_id"`)}
	}
	if _, ok := _c.mutation.NoticeNumber(); !ok {
		return &ValidationError{Name: "notice_number", err: errors.New(`ent: missing required field "Notice.notice_number"`)}
	}
	if v, ok := _c.mutation.NoticeNumber(); ok {
		if err := notice.NoticeNumberValidator(v); err != nil {
			return &ValidationError{Name: "notice_number", err: fmt.Errorf(`ent: validator failed for field "Notice.notice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MajorType(); !ok {
		return &ValidationError{Name: "major_type", err: errors.New(`ent: missing required field "Notice.major_type"`)}
	}
	if v, ok := _c.mutation.MajorType(); ok {
		if err := notice.MajorTypeValidator(v); err != nil {
			return &ValidationError{Name: "major_type", err: fmt.Errorf(`ent: validator failed for field "Notice.major_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinorType(); !ok {
		return &ValidationError{Name: "minor_type", err: errors.New(`ent: missing required field "Notice.minor_type"`)}
	}
	if v, ok := _c.mutation.MinorType(); ok {
		if err := notice.MinorTypeValidator(v); err != nil {
			return &ValidationError{Name: "minor_type", err: fmt.Errorf(`ent: validator failed for field "Notice.minor_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Page(); ok {
		if err := notice.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "Notice.page": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Notice.description"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Notice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Notice.updated_at"`)}
	}
	if len(_c.mutation.GazetteIDs()) == 0 {
		return &ValidationError{Name: "gazette", err: errors.New(`ent: missing required edge "Notice.gazette"`)}
	}
	return nil
}

func (_c *NoticeCreate) sqlSave(ctx context.Context) (*Notice, error) {
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

func (_c *NoticeCreate) createSpec() (*Notice, *sqlgraph.CreateSpec) {
	var (
		_node = &Notice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notice.Table, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NoticeNumber(); ok {
		_spec.SetField(notice.FieldNoticeNumber, field.TypeInt, value)
		_node.NoticeNumber = value
	}
	if value, ok := _c.mutation.MajorType(); ok {
		_spec.SetField(notice.FieldMajorType, field.TypeString, value)
		_node.MajorType = value
	}
	if value, ok := _c.mutation.MinorType(); ok {
		_spec.SetField(notice.FieldMinorType, field.TypeString, value)
		_node.MinorType = value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(notice.FieldPage, field.TypeInt, value)
		_node.Page = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(notice.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GazetteIDs(); len(nodes) > 0 {
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
		_node.GazetteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NoticeCreateBulk is the builder for creating many Notice entities in bulk.
type NoticeCreateBulk struct {
	config
	err      error
	builders []*NoticeCreate
}

// Save creates the Notice entities in the database.
func (_c *NoticeCreateBulk) Save(ctx context.Context) ([]*Notice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Notice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoticeMutation)
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
func (_c *NoticeCreateBulk) SaveX(ctx context.Context) []*Notice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoticeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoticeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
