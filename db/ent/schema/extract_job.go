package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/weekly-statutes/gazette-tracker/constants"
	"github.com/weekly-statutes/gazette-tracker/db/ent/schema/utils"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("gazette_id", uuid.UUID{}),
		field.Int("notice_number").Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").NotEmpty().
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.String("ocr_method").Optional().Nillable(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("model_name").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("gazette", Gazette.Type).
			Ref("jobs").
			Field("gazette_id").
			Unique().
			Required(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gazette_id", "status", "started_at"),
	}
}
