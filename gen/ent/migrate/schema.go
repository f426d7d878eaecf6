// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "notice_number", Type: field.TypeInt, Nullable: true},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_method", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "gazette_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_gazettes_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{GazettesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_gazette_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11], ExtractJobColumns[5], ExtractJobColumns[3]},
			},
		},
	}
	// GazettesColumns holds the columns for the "gazettes" table.
	GazettesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "gazette_number", Type: field.TypeInt},
		{Name: "publication_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "issn", Type: field.TypeString, Nullable: true},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GazettesTable holds the schema information for the "gazettes" table.
	GazettesTable = &schema.Table{
		Name:       "gazettes",
		Columns:    GazettesColumns,
		PrimaryKey: []*schema.Column{GazettesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gazette_gazette_number",
				Unique:  true,
				Columns: []*schema.Column{GazettesColumns[1]},
			},
			{
				Name:    "gazette_publication_date",
				Unique:  false,
				Columns: []*schema.Column{GazettesColumns[2]},
			},
		},
	}
	// NoticesColumns holds the columns for the "notices" table.
	NoticesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "notice_number", Type: field.TypeInt},
		{Name: "major_type", Type: field.TypeString},
		{Name: "minor_type", Type: field.TypeString},
		{Name: "page", Type: field.TypeInt, Nullable: true},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "gazette_id", Type: field.TypeUUID},
	}
	// NoticesTable holds the schema information for the "notices" table.
	NoticesTable = &schema.Table{
		Name:       "notices",
		Columns:    NoticesColumns,
		PrimaryKey: []*schema.Column{NoticesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notices_gazettes_notices",
				Columns:    []*schema.Column{NoticesColumns[8]},
				RefColumns: []*schema.Column{GazettesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notice_gazette_id_notice_number",
				Unique:  true,
				Columns: []*schema.Column{NoticesColumns[8], NoticesColumns[1]},
			},
			{
				Name:    "notice_major_type",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		GazettesTable,
		NoticesTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = GazettesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	GazettesTable.Annotation = &entsql.Annotation{
		Table: "gazettes",
	}
	NoticesTable.ForeignKeys[0].RefTable = GazettesTable
	NoticesTable.Annotation = &entsql.Annotation{
		Table: "notices",
	}
}
