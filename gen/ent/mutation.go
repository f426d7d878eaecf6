// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/extractjob"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob = "ExtractJob"
	TypeGazette    = "Gazette"
	TypeNotice     = "Notice"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	notice_number     *int
	addnotice_number  *int
	format            *string
	started_at        *time.Time
	finished_at       *time.Time
	status            *string
	error_message     *string
	ocr_method        *string
	ocr_confidence    *float32
	addocr_confidence *float32
	ocr_text          *string
	model_name        *string
	clearedFields     map[string]struct{}
	gazette           *uuid.UUID
	clearedgazette    bool
	done              bool
	oldValue          func(context.Context) (*ExtractJob, error)
	predicates        []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGazetteID sets the "gazette_id" field.
func (m *ExtractJobMutation) SetGazetteID(u uuid.UUID) {
	m.gazette = &u
}

// GazetteID returns the value of the "gazette_id" field in the mutation.
func (m *ExtractJobMutation) GazetteID() (r uuid.UUID, exists bool) {
	v := m.gazette
	if v == nil {
		return
	}
	return *v, true
}

// OldGazetteID returns the old "gazette_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldGazetteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGazetteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGazetteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGazetteID: %w", err)
	}
	return oldValue.GazetteID, nil
}

// ResetGazetteID resets all changes to the "gazette_id" field.
func (m *ExtractJobMutation) ResetGazetteID() {
	m.gazette = nil
}

// SetNoticeNumber sets the "notice_number" field.
func (m *ExtractJobMutation) SetNoticeNumber(i int) {
	m.notice_number = &i
	m.addnotice_number = nil
}

// NoticeNumber returns the value of the "notice_number" field in the mutation.
func (m *ExtractJobMutation) NoticeNumber() (r int, exists bool) {
	v := m.notice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldNoticeNumber returns the old "notice_number" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNoticeNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoticeNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoticeNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoticeNumber: %w", err)
	}
	return oldValue.NoticeNumber, nil
}

// AddNoticeNumber adds i to the "notice_number" field.
func (m *ExtractJobMutation) AddNoticeNumber(i int) {
	if m.addnotice_number != nil {
		*m.addnotice_number += i
	} else {
		m.addnotice_number = &i
	}
}

// AddedNoticeNumber returns the value that was added to the "notice_number" field in this mutation.
func (m *ExtractJobMutation) AddedNoticeNumber() (r int, exists bool) {
	v := m.addnotice_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearNoticeNumber clears the value of the "notice_number" field.
func (m *ExtractJobMutation) ClearNoticeNumber() {
	m.notice_number = nil
	m.addnotice_number = nil
	m.clearedFields[extractjob.FieldNoticeNumber] = struct{}{}
}

// NoticeNumberCleared returns if the "notice_number" field was cleared in this mutation.
func (m *ExtractJobMutation) NoticeNumberCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldNoticeNumber]
	return ok
}

// ResetNoticeNumber resets all changes to the "notice_number" field.
func (m *ExtractJobMutation) ResetNoticeNumber() {
	m.notice_number = nil
	m.addnotice_number = nil
	delete(m.clearedFields, extractjob.FieldNoticeNumber)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetOcrMethod sets the "ocr_method" field.
func (m *ExtractJobMutation) SetOcrMethod(s string) {
	m.ocr_method = &s
}

// OcrMethod returns the value of the "ocr_method" field in the mutation.
func (m *ExtractJobMutation) OcrMethod() (r string, exists bool) {
	v := m.ocr_method
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrMethod returns the old "ocr_method" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrMethod: %w", err)
	}
	return oldValue.OcrMethod, nil
}

// ClearOcrMethod clears the value of the "ocr_method" field.
func (m *ExtractJobMutation) ClearOcrMethod() {
	m.ocr_method = nil
	m.clearedFields[extractjob.FieldOcrMethod] = struct{}{}
}

// OcrMethodCleared returns if the "ocr_method" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrMethodCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrMethod]
	return ok
}

// ResetOcrMethod resets all changes to the "ocr_method" field.
func (m *ExtractJobMutation) ResetOcrMethod() {
	m.ocr_method = nil
	delete(m.clearedFields, extractjob.FieldOcrMethod)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *ExtractJobMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *ExtractJobMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *ExtractJobMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *ExtractJobMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[extractjob.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *ExtractJobMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, extractjob.FieldOcrConfidence)
}

// SetOcrText sets the "ocr_text" field.
func (m *ExtractJobMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExtractJobMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExtractJobMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[extractjob.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExtractJobMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExtractJobMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, extractjob.FieldOcrText)
}

// SetModelName sets the "model_name" field.
func (m *ExtractJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractjob.FieldModelName)
}

// ClearGazette clears the "gazette" edge to the Gazette entity.
func (m *ExtractJobMutation) ClearGazette() {
	m.clearedgazette = true
	m.clearedFields[extractjob.FieldGazetteID] = struct{}{}
}

// GazetteCleared reports if the "gazette" edge to the Gazette entity was cleared.
func (m *ExtractJobMutation) GazetteCleared() bool {
	return m.clearedgazette
}

// GazetteIDs returns the "gazette" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GazetteID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) GazetteIDs() (ids []uuid.UUID) {
	if id := m.gazette; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGazette resets all changes to the "gazette" edge.
func (m *ExtractJobMutation) ResetGazette() {
	m.gazette = nil
	m.clearedgazette = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.gazette != nil {
		fields = append(fields, extractjob.FieldGazetteID)
	}
	if m.notice_number != nil {
		fields = append(fields, extractjob.FieldNoticeNumber)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.ocr_method != nil {
		fields = append(fields, extractjob.FieldOcrMethod)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, extractjob.FieldOcrConfidence)
	}
	if m.ocr_text != nil {
		fields = append(fields, extractjob.FieldOcrText)
	}
	if m.model_name != nil {
		fields = append(fields, extractjob.FieldModelName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldGazetteID:
		return m.GazetteID()
	case extractjob.FieldNoticeNumber:
		return m.NoticeNumber()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldOcrMethod:
		return m.OcrMethod()
	case extractjob.FieldOcrConfidence:
		return m.OcrConfidence()
	case extractjob.FieldOcrText:
		return m.OcrText()
	case extractjob.FieldModelName:
		return m.ModelName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldGazetteID:
		return m.OldGazetteID(ctx)
	case extractjob.FieldNoticeNumber:
		return m.OldNoticeNumber(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldOcrMethod:
		return m.OldOcrMethod(ctx)
	case extractjob.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case extractjob.FieldOcrText:
		return m.OldOcrText(ctx)
	case extractjob.FieldModelName:
		return m.OldModelName(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldGazetteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGazetteID(v)
		return nil
	case extractjob.FieldNoticeNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoticeNumber(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldOcrMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrMethod(v)
		return nil
	case extractjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case extractjob.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case extractjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addnotice_number != nil {
		fields = append(fields, extractjob.FieldNoticeNumber)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, extractjob.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldNoticeNumber:
		return m.AddedNoticeNumber()
	case extractjob.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldNoticeNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoticeNumber(v)
		return nil
	case extractjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldNoticeNumber) {
		fields = append(fields, extractjob.FieldNoticeNumber)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldOcrMethod) {
		fields = append(fields, extractjob.FieldOcrMethod)
	}
	if m.FieldCleared(extractjob.FieldOcrConfidence) {
		fields = append(fields, extractjob.FieldOcrConfidence)
	}
	if m.FieldCleared(extractjob.FieldOcrText) {
		fields = append(fields, extractjob.FieldOcrText)
	}
	if m.FieldCleared(extractjob.FieldModelName) {
		fields = append(fields, extractjob.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldNoticeNumber:
		m.ClearNoticeNumber()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldOcrMethod:
		m.ClearOcrMethod()
		return nil
	case extractjob.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case extractjob.FieldOcrText:
		m.ClearOcrText()
		return nil
	case extractjob.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldGazetteID:
		m.ResetGazetteID()
		return nil
	case extractjob.FieldNoticeNumber:
		m.ResetNoticeNumber()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldOcrMethod:
		m.ResetOcrMethod()
		return nil
	case extractjob.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case extractjob.FieldOcrText:
		m.ResetOcrText()
		return nil
	case extractjob.FieldModelName:
		m.ResetModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.gazette != nil {
		edges = append(edges, extractjob.EdgeGazette)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeGazette:
		if id := m.gazette; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgazette {
		edges = append(edges, extractjob.EdgeGazette)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeGazette:
		return m.clearedgazette
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeGazette:
		m.ClearGazette()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeGazette:
		m.ResetGazette()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// GazetteMutation represents an operation that mutates the Gazette nodes in the graph.
type GazetteMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	gazette_number    *int
	addgazette_number *int
	publication_date  *time.Time
	issn              *string
	source_path       *string
	filename          *string
	content_hash      *[]byte
	file_size         *int
	addfile_size      *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	notices           map[uuid.UUID]struct{}
	removednotices    map[uuid.UUID]struct{}
	clearednotices    bool
	jobs              map[uuid.UUID]struct{}
	removedjobs       map[uuid.UUID]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*Gazette, error)
	predicates        []predicate.Gazette
}

var _ ent.Mutation = (*GazetteMutation)(nil)

// gazetteOption allows management of the mutation configuration using functional options.
type gazetteOption func(*GazetteMutation)

// newGazetteMutation creates new mutation for the Gazette entity.
func newGazetteMutation(c config, op Op, opts ...gazetteOption) *GazetteMutation {
	m := &GazetteMutation{
		config:        c,
		op:            op,
		typ:           TypeGazette,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGazetteID sets the ID field of the mutation.
func withGazetteID(id uuid.UUID) gazetteOption {
	return func(m *GazetteMutation) {
		var (
			err   error
			once  sync.Once
			value *Gazette
		)
		m.oldValue = func(ctx context.Context) (*Gazette, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Gazette.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGazette sets the old Gazette of the mutation.
func withGazette(node *Gazette) gazetteOption {
	return func(m *GazetteMutation) {
		m.oldValue = func(context.Context) (*Gazette, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GazetteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GazetteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Gazette entities.
func (m *GazetteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GazetteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GazetteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Gazette.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGazetteNumber sets the "gazette_number" field.
func (m *GazetteMutation) SetGazetteNumber(i int) {
	m.gazette_number = &i
	m.addgazette_number = nil
}

// GazetteNumber returns the value of the "gazette_number" field in the mutation.
func (m *GazetteMutation) GazetteNumber() (r int, exists bool) {
	v := m.gazette_number
	if v == nil {
		return
	}
	return *v, true
}

// OldGazetteNumber returns the old "gazette_number" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldGazetteNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGazetteNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGazetteNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGazetteNumber: %w", err)
	}
	return oldValue.GazetteNumber, nil
}

// AddGazetteNumber adds i to the "gazette_number" field.
func (m *GazetteMutation) AddGazetteNumber(i int) {
	if m.addgazette_number != nil {
		*m.addgazette_number += i
	} else {
		m.addgazette_number = &i
	}
}

// AddedGazetteNumber returns the value that was added to the "gazette_number" field in this mutation.
func (m *GazetteMutation) AddedGazetteNumber() (r int, exists bool) {
	v := m.addgazette_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetGazetteNumber resets all changes to the "gazette_number" field.
func (m *GazetteMutation) ResetGazetteNumber() {
	m.gazette_number = nil
	m.addgazette_number = nil
}

// SetPublicationDate sets the "publication_date" field.
func (m *GazetteMutation) SetPublicationDate(t time.Time) {
	m.publication_date = &t
}

// PublicationDate returns the value of the "publication_date" field in the mutation.
func (m *GazetteMutation) PublicationDate() (r time.Time, exists bool) {
	v := m.publication_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationDate returns the old "publication_date" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldPublicationDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationDate: %w", err)
	}
	return oldValue.PublicationDate, nil
}

// ResetPublicationDate resets all changes to the "publication_date" field.
func (m *GazetteMutation) ResetPublicationDate() {
	m.publication_date = nil
}

// SetIssn sets the "issn" field.
func (m *GazetteMutation) SetIssn(s string) {
	m.issn = &s
}

// Issn returns the value of the "issn" field in the mutation.
func (m *GazetteMutation) Issn() (r string, exists bool) {
	v := m.issn
	if v == nil {
		return
	}
	return *v, true
}

// OldIssn returns the old "issn" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldIssn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssn: %w", err)
	}
	return oldValue.Issn, nil
}

// ClearIssn clears the value of the "issn" field.
func (m *GazetteMutation) ClearIssn() {
	m.issn = nil
	m.clearedFields[gazette.FieldIssn] = struct{}{}
}

// IssnCleared returns if the "issn" field was cleared in this mutation.
func (m *GazetteMutation) IssnCleared() bool {
	_, ok := m.clearedFields[gazette.FieldIssn]
	return ok
}

// ResetIssn resets all changes to the "issn" field.
func (m *GazetteMutation) ResetIssn() {
	m.issn = nil
	delete(m.clearedFields, gazette.FieldIssn)
}

// SetSourcePath sets the "source_path" field.
func (m *GazetteMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *GazetteMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *GazetteMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFilename sets the "filename" field.
func (m *GazetteMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *GazetteMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *GazetteMutation) ResetFilename() {
	m.filename = nil
}

// SetContentHash sets the "content_hash" field.
func (m *GazetteMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *GazetteMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *GazetteMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *GazetteMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *GazetteMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *GazetteMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *GazetteMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *GazetteMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GazetteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GazetteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GazetteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GazetteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GazetteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Gazette entity.
// If the Gazette object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GazetteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GazetteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddNoticeIDs adds the "notices" edge to the Notice entity by ids.
func (m *GazetteMutation) AddNoticeIDs(ids ...uuid.UUID) {
	if m.notices == nil {
		m.notices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.notices[ids[i]] = struct{}{}
	}
}

// ClearNotices clears the "notices" edge to the Notice entity.
func (m *GazetteMutation) ClearNotices() {
	m.clearednotices = true
}

// NoticesCleared reports if the "notices" edge to the Notice entity was cleared.
func (m *GazetteMutation) NoticesCleared() bool {
	return m.clearednotices
}

// RemoveNoticeIDs removes the "notices" edge to the Notice entity by IDs.
func (m *GazetteMutation) RemoveNoticeIDs(ids ...uuid.UUID) {
	if m.removednotices == nil {
		m.removednotices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.notices, ids[i])
		m.removednotices[ids[i]] = struct{}{}
	}
}

// RemovedNotices returns the removed IDs of the "notices" edge to the Notice entity.
func (m *GazetteMutation) RemovedNoticesIDs() (ids []uuid.UUID) {
	for id := range m.removednotices {
		ids = append(ids, id)
	}
	return
}

// NoticesIDs returns the "notices" edge IDs in the mutation.
func (m *GazetteMutation) NoticesIDs() (ids []uuid.UUID) {
	for id := range m.notices {
		ids = append(ids, id)
	}
	return
}

// ResetNotices resets all changes to the "notices" edge.
func (m *GazetteMutation) ResetNotices() {
	m.notices = nil
	m.clearednotices = false
	m.removednotices = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *GazetteMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *GazetteMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *GazetteMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *GazetteMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *GazetteMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *GazetteMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *GazetteMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the GazetteMutation builder.
func (m *GazetteMutation) Where(ps ...predicate.Gazette) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GazetteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GazetteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Gazette, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GazetteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GazetteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Gazette).
func (m *GazetteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GazetteMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.gazette_number != nil {
		fields = append(fields, gazette.FieldGazetteNumber)
	}
	if m.publication_date != nil {
		fields = append(fields, gazette.FieldPublicationDate)
	}
	if m.issn != nil {
		fields = append(fields, gazette.FieldIssn)
	}
	if m.source_path != nil {
		fields = append(fields, gazette.FieldSourcePath)
	}
	if m.filename != nil {
		fields = append(fields, gazette.FieldFilename)
	}
	if m.content_hash != nil {
		fields = append(fields, gazette.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, gazette.FieldFileSize)
	}
	if m.created_at != nil {
		fields = append(fields, gazette.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, gazette.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GazetteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gazette.FieldGazetteNumber:
		return m.GazetteNumber()
	case gazette.FieldPublicationDate:
		return m.PublicationDate()
	case gazette.FieldIssn:
		return m.Issn()
	case gazette.FieldSourcePath:
		return m.SourcePath()
	case gazette.FieldFilename:
		return m.Filename()
	case gazette.FieldContentHash:
		return m.ContentHash()
	case gazette.FieldFileSize:
		return m.FileSize()
	case gazette.FieldCreatedAt:
		return m.CreatedAt()
	case gazette.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GazetteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gazette.FieldGazetteNumber:
		return m.OldGazetteNumber(ctx)
	case gazette.FieldPublicationDate:
		return m.OldPublicationDate(ctx)
	case gazette.FieldIssn:
		return m.OldIssn(ctx)
	case gazette.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case gazette.FieldFilename:
		return m.OldFilename(ctx)
	case gazette.FieldContentHash:
		return m.OldContentHash(ctx)
	case gazette.FieldFileSize:
		return m.OldFileSize(ctx)
	case gazette.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gazette.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Gazette field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GazetteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gazette.FieldGazetteNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGazetteNumber(v)
		return nil
	case gazette.FieldPublicationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationDate(v)
		return nil
	case gazette.FieldIssn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssn(v)
		return nil
	case gazette.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case gazette.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case gazette.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case gazette.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case gazette.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gazette.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Gazette field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GazetteMutation) AddedFields() []string {
	var fields []string
	if m.addgazette_number != nil {
		fields = append(fields, gazette.FieldGazetteNumber)
	}
	if m.addfile_size != nil {
		fields = append(fields, gazette.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GazetteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gazette.FieldGazetteNumber:
		return m.AddedGazetteNumber()
	case gazette.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GazetteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gazette.FieldGazetteNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGazetteNumber(v)
		return nil
	case gazette.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Gazette numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GazetteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gazette.FieldIssn) {
		fields = append(fields, gazette.FieldIssn)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GazetteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GazetteMutation) ClearField(name string) error {
	switch name {
	case gazette.FieldIssn:
		m.ClearIssn()
		return nil
	}
	return fmt.Errorf("unknown Gazette nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GazetteMutation) ResetField(name string) error {
	switch name {
	case gazette.FieldGazetteNumber:
		m.ResetGazetteNumber()
		return nil
	case gazette.FieldPublicationDate:
		m.ResetPublicationDate()
		return nil
	case gazette.FieldIssn:
		m.ResetIssn()
		return nil
	case gazette.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case gazette.FieldFilename:
		m.ResetFilename()
		return nil
	case gazette.FieldContentHash:
		m.ResetContentHash()
		return nil
	case gazette.FieldFileSize:
		m.ResetFileSize()
		return nil
	case gazette.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gazette.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Gazette field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GazetteMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.notices != nil {
		edges = append(edges, gazette.EdgeNotices)
	}
	if m.jobs != nil {
		edges = append(edges, gazette.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GazetteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gazette.EdgeNotices:
		ids := make([]ent.Value, 0, len(m.notices))
		for id := range m.notices {
			ids = append(ids, id)
		}
		return ids
	case gazette.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GazetteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removednotices != nil {
		edges = append(edges, gazette.EdgeNotices)
	}
	if m.removedjobs != nil {
		edges = append(edges, gazette.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GazetteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case gazette.EdgeNotices:
		ids := make([]ent.Value, 0, len(m.removednotices))
		for id := range m.removednotices {
			ids = append(ids, id)
		}
		return ids
	case gazette.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GazetteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednotices {
		edges = append(edges, gazette.EdgeNotices)
	}
	if m.clearedjobs {
		edges = append(edges, gazette.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GazetteMutation) EdgeCleared(name string) bool {
	switch name {
	case gazette.EdgeNotices:
		return m.clearednotices
	case gazette.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GazetteMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Gazette unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GazetteMutation) ResetEdge(name string) error {
	switch name {
	case gazette.EdgeNotices:
		m.ResetNotices()
		return nil
	case gazette.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Gazette edge %s", name)
}

// NoticeMutation represents an operation that mutates the Notice nodes in the graph.
type NoticeMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	notice_number    *int
	addnotice_number *int
	major_type       *string
	minor_type       *string
	page             *int
	addpage          *int
	description      *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	gazette          *uuid.UUID
	clearedgazette   bool
	done             bool
	oldValue         func(context.Context) (*Notice, error)
	predicates       []predicate.Notice
}

var _ ent.Mutation = (*NoticeMutation)(nil)

// noticeOption allows management of the mutation configuration using functional options.
type noticeOption func(*NoticeMutation)

// newNoticeMutation creates new mutation for the Notice entity.
func newNoticeMutation(c config, op Op, opts ...noticeOption) *NoticeMutation {
	m := &NoticeMutation{
		config:        c,
		op:            op,
		typ:           TypeNotice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNoticeID sets the ID field of the mutation.
func withNoticeID(id uuid.UUID) noticeOption {
	return func(m *NoticeMutation) {
		var (
			err   error
			once  sync.Once
			value *Notice
		)
		m.oldValue = func(ctx context.Context) (*Notice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotice sets the old Notice of the mutation.
func withNotice(node *Notice) noticeOption {
	return func(m *NoticeMutation) {
		m.oldValue = func(context.Context) (*Notice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NoticeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NoticeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notice entities.
func (m *NoticeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NoticeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NoticeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGazetteID sets the "gazette_id" field.
func (m *NoticeMutation) SetGazetteID(u uuid.UUID) {
	m.gazette = &u
}

// GazetteID returns the value of the "gazette_id" field in the mutation.
func (m *NoticeMutation) GazetteID() (r uuid.UUID, exists bool) {
	v := m.gazette
	if v == nil {
		return
	}
	return *v, true
}

// OldGazetteID returns the old "gazette_id" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldGazetteID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGazetteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGazetteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGazetteID: %w", err)
	}
	return oldValue.GazetteID, nil
}

// ResetGazetteID resets all changes to the "gazette_id" field.
func (m *NoticeMutation) ResetGazetteID() {
	m.gazette = nil
}

// SetNoticeNumber sets the "notice_number" field.
func (m *NoticeMutation) SetNoticeNumber(i int) {
	m.notice_number = &i
	m.addnotice_number = nil
}

// NoticeNumber returns the value of the "notice_number" field in the mutation.
func (m *NoticeMutation) NoticeNumber() (r int, exists bool) {
	v := m.notice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldNoticeNumber returns the old "notice_number" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldNoticeNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoticeNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoticeNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoticeNumber: %w", err)
	}
	return oldValue.NoticeNumber, nil
}

// AddNoticeNumber adds i to the "notice_number" field.
func (m *NoticeMutation) AddNoticeNumber(i int) {
	if m.addnotice_number != nil {
		*m.addnotice_number += i
	} else {
		m.addnotice_number = &i
	}
}

// AddedNoticeNumber returns the value that was added to the "notice_number" field in this mutation.
func (m *NoticeMutation) AddedNoticeNumber() (r int, exists bool) {
	v := m.addnotice_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetNoticeNumber resets all changes to the "notice_number" field.
func (m *NoticeMutation) ResetNoticeNumber() {
	m.notice_number = nil
	m.addnotice_number = nil
}

// SetMajorType sets the "major_type" field.
func (m *NoticeMutation) SetMajorType(s string) {
	m.major_type = &s
}

// MajorType returns the value of the "major_type" field in the mutation.
func (m *NoticeMutation) MajorType() (r string, exists bool) {
	v := m.major_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMajorType returns the old "major_type" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldMajorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajorType: %w", err)
	}
	return oldValue.MajorType, nil
}

// ResetMajorType resets all changes to the "major_type" field.
func (m *NoticeMutation) ResetMajorType() {
	m.major_type = nil
}

// SetMinorType sets the "minor_type" field.
func (m *NoticeMutation) SetMinorType(s string) {
	m.minor_type = &s
}

// MinorType returns the value of the "minor_type" field in the mutation.
func (m *NoticeMutation) MinorType() (r string, exists bool) {
	v := m.minor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMinorType returns the old "minor_type" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldMinorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinorType: %w", err)
	}
	return oldValue.MinorType, nil
}

// ResetMinorType resets all changes to the "minor_type" field.
func (m *NoticeMutation) ResetMinorType() {
	m.minor_type = nil
}

// SetPage sets the "page" field.
func (m *NoticeMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *NoticeMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *NoticeMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *NoticeMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ClearPage clears the value of the "page" field.
func (m *NoticeMutation) ClearPage() {
	m.page = nil
	m.addpage = nil
	m.clearedFields[notice.FieldPage] = struct{}{}
}

// PageCleared returns if the "page" field was cleared in this mutation.
func (m *NoticeMutation) PageCleared() bool {
	_, ok := m.clearedFields[notice.FieldPage]
	return ok
}

// ResetPage resets all changes to the "page" field.
func (m *NoticeMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
	delete(m.clearedFields, notice.FieldPage)
}

// SetDescription sets the "description" field.
func (m *NoticeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *NoticeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *NoticeMutation) ResetDescription() {
	m.description = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NoticeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NoticeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NoticeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NoticeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NoticeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Notice entity.
// If the Notice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoticeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NoticeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearGazette clears the "gazette" edge to the Gazette entity.
func (m *NoticeMutation) ClearGazette() {
	m.clearedgazette = true
	m.clearedFields[notice.FieldGazetteID] = struct{}{}
}

// GazetteCleared reports if the "gazette" edge to the Gazette entity was cleared.
func (m *NoticeMutation) GazetteCleared() bool {
	return m.clearedgazette
}

// GazetteIDs returns the "gazette" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GazetteID instead. It exists only for internal usage by the builders.
func (m *NoticeMutation) GazetteIDs() (ids []uuid.UUID) {
	if id := m.gazette; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGazette resets all changes to the "gazette" edge.
func (m *NoticeMutation) ResetGazette() {
	m.gazette = nil
	m.clearedgazette = false
}

// Where appends a list predicates to the NoticeMutation builder.
func (m *NoticeMutation) Where(ps ...predicate.Notice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NoticeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NoticeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NoticeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NoticeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notice).
func (m *NoticeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NoticeMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.gazette != nil {
		fields = append(fields, notice.FieldGazetteID)
	}
	if m.notice_number != nil {
		fields = append(fields, notice.FieldNoticeNumber)
	}
	if m.major_type != nil {
		fields = append(fields, notice.FieldMajorType)
	}
	if m.minor_type != nil {
		fields = append(fields, notice.FieldMinorType)
	}
	if m.page != nil {
		fields = append(fields, notice.FieldPage)
	}
	if m.description != nil {
		fields = append(fields, notice.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, notice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NoticeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notice.FieldGazetteID:
		return m.GazetteID()
	case notice.FieldNoticeNumber:
		return m.NoticeNumber()
	case notice.FieldMajorType:
		return m.MajorType()
	case notice.FieldMinorType:
		return m.MinorType()
	case notice.FieldPage:
		return m.Page()
	case notice.FieldDescription:
		return m.Description()
	case notice.FieldCreatedAt:
		return m.CreatedAt()
	case notice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NoticeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notice.FieldGazetteID:
		return m.OldGazetteID(ctx)
	case notice.FieldNoticeNumber:
		return m.OldNoticeNumber(ctx)
	case notice.FieldMajorType:
		return m.OldMajorType(ctx)
	case notice.FieldMinorType:
		return m.OldMinorType(ctx)
	case notice.FieldPage:
		return m.OldPage(ctx)
	case notice.FieldDescription:
		return m.OldDescription(ctx)
	case notice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoticeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notice.FieldGazetteID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGazetteID(v)
		return nil
	case notice.FieldNoticeNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoticeNumber(v)
		return nil
	case notice.FieldMajorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajorType(v)
		return nil
	case notice.FieldMinorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinorType(v)
		return nil
	case notice.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case notice.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case notice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NoticeMutation) AddedFields() []string {
	var fields []string
	if m.addnotice_number != nil {
		fields = append(fields, notice.FieldNoticeNumber)
	}
	if m.addpage != nil {
		fields = append(fields, notice.FieldPage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NoticeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notice.FieldNoticeNumber:
		return m.AddedNoticeNumber()
	case notice.FieldPage:
		return m.AddedPage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoticeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notice.FieldNoticeNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoticeNumber(v)
		return nil
	case notice.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	}
	return fmt.Errorf("unknown Notice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NoticeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notice.FieldPage) {
		fields = append(fields, notice.FieldPage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NoticeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NoticeMutation) ClearField(name string) error {
	switch name {
	case notice.FieldPage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown Notice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NoticeMutation) ResetField(name string) error {
	switch name {
	case notice.FieldGazetteID:
		m.ResetGazetteID()
		return nil
	case notice.FieldNoticeNumber:
		m.ResetNoticeNumber()
		return nil
	case notice.FieldMajorType:
		m.ResetMajorType()
		return nil
	case notice.FieldMinorType:
		m.ResetMinorType()
		return nil
	case notice.FieldPage:
		m.ResetPage()
		return nil
	case notice.FieldDescription:
		m.ResetDescription()
		return nil
	case notice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NoticeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.gazette != nil {
		edges = append(edges, notice.EdgeGazette)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NoticeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notice.EdgeGazette:
		if id := m.gazette; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NoticeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NoticeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NoticeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgazette {
		edges = append(edges, notice.EdgeGazette)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NoticeMutation) EdgeCleared(name string) bool {
	switch name {
	case notice.EdgeGazette:
		return m.clearedgazette
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NoticeMutation) ClearEdge(name string) error {
	switch name {
	case notice.EdgeGazette:
		m.ClearGazette()
		return nil
	}
	return fmt.Errorf("unknown Notice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NoticeMutation) ResetEdge(name string) error {
	switch name {
	case notice.EdgeGazette:
		m.ResetGazette()
		return nil
	}
	return fmt.Errorf("unknown Notice edge %s", name)
}
