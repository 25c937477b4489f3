package sql

import (
	"context"

	"github.com/syssam/persist"
	"github.com/syssam/persist/dialect"
)

// Session runs the statements of a QueryBuilder on a driver or a
// transaction. Statements are fully rendered, so no arguments are passed.
type Session struct {
	eq      dialect.ExecQuerier
	builder *QueryBuilder
}

// NewSession returns a Session running statements built by b on eq.
//
//	drv, err := sql.Open(dialect.SQLite, "file:app.db")
//	s := sql.NewSession(drv, sql.NewQueryBuilder(sql.SQLite()))
//	_, err = s.Insert(ctx, person)
func NewSession(eq dialect.ExecQuerier, b *QueryBuilder) *Session {
	return &Session{eq: eq, builder: b}
}

// Builder returns the QueryBuilder of the session.
func (s *Session) Builder() *QueryBuilder {
	return s.builder
}

// Insert inserts the entity.
func (s *Session) Insert(ctx context.Context, e persist.Entity) (Result, error) {
	return s.run(ctx, e, s.builder.Insert)
}

// Update updates the row of the entity.
func (s *Session) Update(ctx context.Context, e persist.Entity) (Result, error) {
	return s.run(ctx, e, s.builder.Update)
}

// Delete deletes the row of the entity.
func (s *Session) Delete(ctx context.Context, e persist.Entity) (Result, error) {
	return s.run(ctx, e, s.builder.Delete)
}

// CreateTable creates the table of the entity kind.
func (s *Session) CreateTable(ctx context.Context, e persist.Entity) error {
	_, err := s.run(ctx, e, s.builder.CreateTable)
	return err
}

// DropTable drops the table of the entity kind, if it exists.
func (s *Session) DropTable(ctx context.Context, e persist.Entity) error {
	_, err := s.run(ctx, e, s.builder.DropTable)
	return err
}

// Select queries the table of the entity kind. The caller must close the
// returned rows.
func (s *Session) Select(ctx context.Context, e persist.Entity, opts ...SelectOption) (*Rows, error) {
	stmt, err := s.builder.Select(e, opts...)
	if err != nil {
		return nil, err
	}
	rows := &Rows{}
	if err := s.eq.Query(ctx, stmt, []any{}, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Session) run(ctx context.Context, e persist.Entity, build func(persist.Entity) (string, error)) (Result, error) {
	stmt, err := build(e)
	if err != nil {
		return nil, err
	}
	var res Result
	if err := s.eq.Exec(ctx, stmt, []any{}, &res); err != nil {
		return nil, err
	}
	return res, nil
}
