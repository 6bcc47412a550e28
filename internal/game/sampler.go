package game

import (
	"context"
	"html"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"trivia-backend/internal/corpus"
)

// Sampler assembles the answer pool for one game from the shared corpus.
type Sampler struct {
	store corpus.Store
}

func NewSampler(store corpus.Store) *Sampler {
	return &Sampler{store: store}
}

// Draw executes the quota plan against the corpus, one query per category.
// Queries run concurrently but land in plan order, so per-category grouping
// is intact before the shuffle. The finished pool has entities decoded, a
// uniform shuffle applied, and a fresh correct-answer slot assigned to every
// record. A category with fewer records than its quota yields a short draw;
// the pool is simply smaller.
func (s *Sampler) Draw(ctx context.Context, plan []Allocation) ([]corpus.Record, error) {
	buckets := make([][]corpus.Record, len(plan))

	g, gctx := errgroup.WithContext(ctx)
	for i, alloc := range plan {
		g.Go(func() error {
			recs, err := s.store.Sample(gctx, alloc.Category, alloc.Count)
			if err != nil {
				return err
			}
			buckets[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pool []corpus.Record
	for _, bucket := range buckets {
		pool = append(pool, bucket...)
	}

	for i := range pool {
		decodeEntities(&pool[i])
		// the landing slot for the correct answer, kept server-side until verification
		pool[i].CorrectIndex = rand.IntN(len(pool[i].IncorrectAnswers) + 1)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool, nil
}

// decodeEntities undoes the HTML entity encoding the corpus carries over
// from its upstream source ("&quot;", "&amp;" and friends).
func decodeEntities(rec *corpus.Record) {
	rec.Question = html.UnescapeString(rec.Question)
	rec.CorrectAnswer = html.UnescapeString(rec.CorrectAnswer)
	decoded := make([]string, len(rec.IncorrectAnswers))
	for i, wrong := range rec.IncorrectAnswers {
		decoded[i] = html.UnescapeString(wrong)
	}
	rec.IncorrectAnswers = decoded
}
