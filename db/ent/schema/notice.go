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

type Notice struct{ ent.Schema }

func (Notice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notices"},
	}
}

func (Notice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("gazette_id", uuid.UUID{}),
		field.Int("notice_number").Positive(),
		field.String("major_type").NotEmpty().
			Validate(utils.EnumValidator(constants.MajorTypeNames()...)),
		field.String("minor_type").NotEmpty(),
		field.Int("page").Optional().Nillable().Positive(),
		field.String("description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Notice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY notices -> ONE gazette (FK: notices.gazette_id)
		edge.From("gazette", Gazette.Type).
			Ref("notices").
			Field("gazette_id").
			Required().
			Unique(),
	}
}

func (Notice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gazette_id", "notice_number").Unique(),
		index.Fields("major_type"),
	}
}
