package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trivia_games_started_total",
		Help: "Number of game sessions started.",
	})
	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trivia_guesses_total",
		Help: "Number of consumed guesses by outcome.",
	}, []string{"outcome"})
	shortDraws = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trivia_short_draws_total",
		Help: "Games that started with fewer questions than requested.",
	})
)
