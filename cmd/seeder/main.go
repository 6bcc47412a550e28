// The seeder fills the question corpus from the Open Trivia DB API. Content
// addressing makes it idempotent: reruns only add questions the corpus has
// not seen yet.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"trivia-backend/internal/category"
	"trivia-backend/internal/config"
	"trivia-backend/internal/corpus"
	"trivia-backend/internal/opentdb"
)

func main() {
	var (
		categoryKey = flag.String("category", "all", "Category key to seed, or 'all'")
		perCategory = flag.Int("per-category", 150, "Questions to request per category")
		batchSize   = flag.Int("batch", 50, "Questions per API request (API max is 50)")
		pause       = flag.Duration("pause", 5*time.Second, "Pause between API requests (rate limit)")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	store := corpus.NewPostgres(pool)
	client := opentdb.NewClient("", nil)

	var keys []string
	if *categoryKey == "all" {
		for _, c := range category.All() {
			if c.Key != category.KeyAny {
				keys = append(keys, c.Key)
			}
		}
	} else {
		if !category.Valid(*categoryKey) {
			log.Fatal().Str("category", *categoryKey).Msg("unknown category key")
		}
		keys = []string{*categoryKey}
	}

	var fetched int64
	for _, key := range keys {
		remaining := *perCategory
		for remaining > 0 {
			amount := min(remaining, *batchSize)
			records, err := client.Fetch(ctx, amount, key)
			if err != nil {
				// token exhaustion and rate limits both land here; move on
				log.Warn().Err(err).Str("category", key).Msg("fetch failed, skipping category")
				break
			}
			for _, rec := range records {
				if _, err := store.Insert(ctx, rec); err != nil {
					log.Fatal().Err(err).Msg("corpus insert failed")
				}
			}
			fetched += int64(len(records))
			remaining -= len(records)
			if len(records) < amount {
				break
			}
			time.Sleep(*pause)
		}
		log.Info().Str("category", key).Msg("category seeded")
	}

	total, err := store.Count(ctx, corpus.Query{})
	if err != nil {
		log.Fatal().Err(err).Msg("corpus count failed")
	}
	log.Info().Int64("fetched", fetched).Int64("corpus_total", total).Msg("seeding complete")
}
