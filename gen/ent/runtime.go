// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/db/ent/schema"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/extractjob"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/gazette"
	"github.com/weekly-statutes/gazette-tracker/gen/ent/notice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[6].Descriptor()
	// extractjob.DefaultStatus holds the default value on creation for the status field.
	extractjob.DefaultStatus = extractjobDescStatus.Default.(string)
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = func() func(string) error {
		validators := extractjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	gazetteFields := schema.Gazette{}.Fields()
	_ = gazetteFields
	// gazetteDescGazetteNumber is the schema descriptor for gazette_number field.
	gazetteDescGazetteNumber := gazetteFields[1].Descriptor()
	// gazette.GazetteNumberValidator is a validator for the "gazette_number" field. It is called by the builders before save.
	gazette.GazetteNumberValidator = gazetteDescGazetteNumber.Validators[0].(func(int) error)
	// gazetteDescIssn is the schema descriptor for issn field.
	gazetteDescIssn := gazetteFields[3].Descriptor()
	// gazette.IssnValidator is a validator for the "issn" field. It is called by the builders before save.
	gazette.IssnValidator = gazetteDescIssn.Validators[0].(func(string) error)
	// gazetteDescSourcePath is the schema descriptor for source_path field.
	gazetteDescSourcePath := gazetteFields[4].Descriptor()
	// gazette.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	gazette.SourcePathValidator = gazetteDescSourcePath.Validators[0].(func(string) error)
	// gazetteDescFilename is the schema descriptor for filename field.
	gazetteDescFilename := gazetteFields[5].Descriptor()
	// gazette.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	gazette.FilenameValidator = gazetteDescFilename.Validators[0].(func(string) error)
	// gazetteDescContentHash is the schema descriptor for content_hash field.
	gazetteDescContentHash := gazetteFields[6].Descriptor()
	// gazette.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	gazette.ContentHashValidator = gazetteDescContentHash.Validators[0].(func([]byte) error)
	// gazetteDescFileSize is the schema descriptor for file_size field.
	gazetteDescFileSize := gazetteFields[7].Descriptor()
	// gazette.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	gazette.FileSizeValidator = gazetteDescFileSize.Validators[0].(func(int) error)
	// gazetteDescCreatedAt is the schema descriptor for created_at field.
	gazetteDescCreatedAt := gazetteFields[8].Descriptor()
	// gazette.DefaultCreatedAt holds the default value on creation for the created_at field.
	gazette.DefaultCreatedAt = gazetteDescCreatedAt.Default.(func() time.Time)
	// gazetteDescUpdatedAt is the schema descriptor for updated_at field.
	gazetteDescUpdatedAt := gazetteFields[9].Descriptor()
	// gazette.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gazette.DefaultUpdatedAt = gazetteDescUpdatedAt.Default.(func() time.Time)
	// gazette.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gazette.UpdateDefaultUpdatedAt = gazetteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gazetteDescID is the schema descriptor for id field.
	gazetteDescID := gazetteFields[0].Descriptor()
	// gazette.DefaultID holds the default value on creation for the id field.
	gazette.DefaultID = gazetteDescID.Default.(func() uuid.UUID)
	noticeFields := schema.Notice{}.Fields()
	_ = noticeFields
	// noticeDescNoticeNumber is the schema descriptor for notice_number field.
	noticeDescNoticeNumber := noticeFields[2].Descriptor()
	// notice.NoticeNumberValidator is a validator for the "notice_number" field. It is called by the builders before save.
	notice.NoticeNumberValidator = noticeDescNoticeNumber.Validators[0].(func(int) error)
	// noticeDescMajorType is the schema descriptor for major_type field.
	noticeDescMajorType := noticeFields[3].Descriptor()
	// notice.MajorTypeValidator is a validator for the "major_type" field. It is called by the builders before save.
	notice.MajorTypeValidator = func() func(string) error {
		validators := noticeDescMajorType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(major_type string) error {
			for _, fn := range fns {
				if err := fn(major_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// noticeDescMinorType is the schema descriptor for minor_type field.
	noticeDescMinorType := noticeFields[4].Descriptor()
	// notice.MinorTypeValidator is a validator for the "minor_type" field. It is called by the builders before save.
	notice.MinorTypeValidator = noticeDescMinorType.Validators[0].(func(string) error)
	// noticeDescPage is the schema descriptor for page field.
	noticeDescPage := noticeFields[5].Descriptor()
	// notice.PageValidator is a validator for the "page" field. It is called by the builders before save.
	notice.PageValidator = noticeDescPage.Validators[0].(func(int) error)
	// noticeDescCreatedAt is the schema descriptor for created_at field.
	noticeDescCreatedAt := noticeFields[7].Descriptor()
	// notice.DefaultCreatedAt holds the default value on creation for the created_at field.
	notice.DefaultCreatedAt = noticeDescCreatedAt.Default.(func() time.Time)
	// noticeDescUpdatedAt is the schema descriptor for updated_at field.
	noticeDescUpdatedAt := noticeFields[8].Descriptor()
	// notice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notice.DefaultUpdatedAt = noticeDescUpdatedAt.Default.(func() time.Time)
	// notice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notice.UpdateDefaultUpdatedAt = noticeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// noticeDescID is the schema descriptor for id field.
	noticeDescID := noticeFields[0].Descriptor()
	// notice.DefaultID holds the default value on creation for the id field.
	notice.DefaultID = noticeDescID.Default.(func() uuid.UUID)
}
