package sql

import (
	"time"

	"github.com/google/uuid"

	"github.com/syssam/persist"
	"github.com/syssam/persist/schema/field"
)

type User struct {
	persist.Schema
	ID    *int64
	Name  *string
	Age   *int
	Email string
	Index int
}

func (User) Config() persist.Config { return persist.Config{Table: "users"} }

func (u User) Fields() []persist.Field {
	return []persist.Field{
		field.Int64("id").Ptr(u.ID).PrimaryKey().AutoIncrement(),
		field.String("name").StorageKey("nick_name").Ptr(u.Name).Nillable(),
		field.Int("age").StorageKey("old").Ptr(u.Age).Nillable(),
		field.String("email").Value(u.Email),
		field.Int("index").Value(u.Index).Transient(),
	}
}

// Event covers every field type.
type Event struct {
	persist.Schema
	ID        uuid.UUID
	Title     string
	Score     float64
	Published bool
	CreatedAt time.Time
}

func (e Event) Fields() []persist.Field {
	return []persist.Field{
		field.UUID("id").Value(e.ID).PrimaryKey(),
		field.String("title").Value(e.Title).MaxLen(64),
		field.Float("score").Value(e.Score),
		field.Bool("published").Value(e.Published),
		field.Time("created_at").Value(e.CreatedAt),
	}
}

type Tag struct {
	persist.Schema
	Name string
}

func (t Tag) Fields() []persist.Field {
	return []persist.Field{
		field.String("name").Value(t.Name),
	}
}

func ptr[T any](v T) *T { return &v }

func ann() User {
	return User{ID: ptr[int64](1), Name: ptr("Ann"), Age: ptr(20), Email: "a@b.com", Index: 7}
}
