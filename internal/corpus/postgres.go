package corpus

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores records in a questions table. The seq column preserves
// insertion order so the random-skip window is deterministic for a given
// skip. The primary key is the content fingerprint, so duplicate inserts
// resolve with ON CONFLICT DO NOTHING.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Sample(ctx context.Context, categoryKey string, count int) ([]Record, error) {
	filter, err := resolveCategory(categoryKey)
	if err != nil {
		return nil, err
	}

	total, err := p.Count(ctx, Query{Category: filter})
	if err != nil {
		return nil, err
	}

	var skip int64
	if total > int64(count) {
		skip = rand.Int64N(total - int64(count) + 1)
	}

	var rows pgx.Rows
	if filter == "" {
		rows, err = p.pool.Query(ctx,
			`SELECT _id, category, type, difficulty, question, correct_answer, incorrect_answers
			 FROM questions ORDER BY seq OFFSET $1 LIMIT $2`, skip, count)
	} else {
		rows, err = p.pool.Query(ctx,
			`SELECT _id, category, type, difficulty, question, correct_answer, incorrect_answers
			 FROM questions WHERE category = $1 ORDER BY seq OFFSET $2 LIMIT $3`, filter, skip, count)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: sample query: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Category, &rec.Type, &rec.Difficulty,
			&rec.Question, &rec.CorrectAnswer, &rec.IncorrectAnswers); err != nil {
			return nil, fmt.Errorf("%w: scan record: %v", ErrUnavailable, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: sample rows: %v", ErrUnavailable, err)
	}
	return out, nil
}

func (p *Postgres) Insert(ctx context.Context, rec Record) (Record, error) {
	rec.ID = Fingerprint(rec.Question)
	rec.CorrectIndex = 0

	_, err := p.pool.Exec(ctx,
		`INSERT INTO questions (_id, category, type, difficulty, question, correct_answer, incorrect_answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (_id) DO NOTHING`,
		rec.ID, rec.Category, rec.Type, rec.Difficulty, rec.Question, rec.CorrectAnswer, rec.IncorrectAnswers)
	if err != nil {
		return Record{}, fmt.Errorf("%w: insert: %v", ErrUnavailable, err)
	}
	return rec, nil
}

func (p *Postgres) Remove(ctx context.Context, id string) (int64, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM questions WHERE _id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%w: remove: %v", ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrNotFound
	}
	return tag.RowsAffected(), nil
}

func (p *Postgres) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	var err error
	if q.Category == "" {
		err = p.pool.QueryRow(ctx, `SELECT count(*) FROM questions`).Scan(&n)
	} else {
		err = p.pool.QueryRow(ctx, `SELECT count(*) FROM questions WHERE category = $1`, q.Category).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: count: %v", ErrUnavailable, err)
	}
	return n, nil
}
