package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var reISSN = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}$`)

type Gazette struct{ ent.Schema }

func (Gazette) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "gazettes"},
	}
}

func (Gazette) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Int("gazette_number").Positive(),
		field.Time("publication_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("issn").Optional().Nillable().
			Validate(func(s string) error {
				if s == "" || reISSN.MatchString(s) {
					return nil
				}
				return errInvalidISSN
			}),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("file_size").NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

var errInvalidISSN = errors.New("invalid ISSN")

func (Gazette) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE gazette -> MANY notices
		edge.To("notices", Notice.Type),
		// ONE gazette -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Gazette) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gazette_number").Unique(),
		index.Fields("publication_date"),
	}
}
