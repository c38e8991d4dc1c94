package app

import (
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/wordstorm/internal/config"
	"github.com/dshills/wordstorm/internal/game"
	"github.com/dshills/wordstorm/internal/input"
	"github.com/dshills/wordstorm/internal/renderer"
	"github.com/dshills/wordstorm/internal/renderer/backend"
	"github.com/dshills/wordstorm/internal/words"
)

// endOfGameLinger keeps the final board visible before the terminal is
// restored, long enough to read the last row's marks.
const endOfGameLinger = time.Second

// Options configures the application.
type Options struct {
	// ConfigPath is the path to a TOML or YAML configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Debug forces debug-level logging and a default log file.
	Debug bool

	// AnswersPath and AllowedPath override the configured corpora files.
	AnswersPath string
	AllowedPath string

	// Seed pins answer selection when non-zero, for reproducible runs.
	Seed uint64
}

// Application owns one game session and the loop that drives it. The loop
// is synchronous: one goroutine renders, waits for an event, applies it,
// and repeats, so the game state never sees overlapping mutations.
type Application struct {
	opts Options

	cfg     config.Config
	logger  zerolog.Logger
	logFile interface{ Close() error }
	corpus  *words.Corpus
	theme   renderer.Theme

	game    *game.Game
	backend backend.Backend
	board   *renderer.Board

	linger   time.Duration
	running  atomic.Bool
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates an application and bootstraps every component except the
// display backend, which the caller attaches with SetBackend.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		linger: endOfGameLinger,
		quit:   make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order: config, logging,
// corpora, theme, game. Any failure here is fatal; the game cannot run
// degraded without its word lists or display configuration.
func (app *Application) bootstrap() error {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.Debug {
		cfg.Logging.Level = "debug"
		if cfg.Logging.File == "" {
			cfg.Logging.File = "wordstorm.log"
		}
	}
	if app.opts.AnswersPath != "" {
		cfg.Words.AnswersFile = app.opts.AnswersPath
	}
	if app.opts.AllowedPath != "" {
		cfg.Words.AllowedFile = app.opts.AllowedPath
	}
	app.cfg = cfg

	logger, closer, err := newLogger(cfg.Logging)
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger = logger
	app.logFile = closer

	corpus, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		return &InitError{Component: "words", Err: err}
	}
	app.corpus = corpus

	theme, err := renderer.ThemeFromConfig(cfg.UI)
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	app.theme = theme

	app.game = game.New(corpus, corpus.Pick(app.intn()))

	answers, allowed := corpus.Counts()
	app.logger.Info().
		Str("game_id", app.game.ID()).
		Int("answers", answers).
		Int("allowed", allowed).
		Msg("session ready")

	return nil
}

// intn returns the answer-selection randomness: seeded when the options
// pin it, the shared generator otherwise.
func (app *Application) intn() func(n int) int {
	if app.opts.Seed != 0 {
		r := rand.New(rand.NewPCG(app.opts.Seed, 0))
		return r.IntN
	}
	return rand.IntN
}

// SetBackend attaches the display backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run drives the session to completion. It returns nil when the game ends
// with a win or loss, ErrQuit when the player bails out, and an InitError
// if the backend cannot start. The backend is restored on every exit path.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	// The terminal must come back clean no matter how the loop exits.
	defer app.backend.Fini()

	app.board = renderer.New(app.backend, app.theme)
	return app.eventLoop()
}

// eventLoop is the synchronous heart of the game: render, wait for one
// event, apply it, check the outcome, repeat.
func (app *Application) eventLoop() error {
	for {
		app.board.Render(app.game.Snapshot())

		select {
		case <-app.quit:
			return ErrQuit
		default:
		}

		ev := input.Translate(app.backend.PollEvent())
		switch ev.Kind {
		case input.KindQuit:
			app.logger.Info().Str("game_id", app.game.ID()).Msg("quit requested")
			return ErrQuit

		case input.KindLetter:
			app.game.Input(ev.Rune)

		case input.KindBackspace:
			app.game.Erase()

		case input.KindSubmit:
			if app.game.Submit() {
				snap := app.game.Snapshot()
				row := snap.Rows[len(snap.Rows)-1]
				app.logger.Debug().
					Str("game_id", app.game.ID()).
					Str("guess", row.Word).
					Int("attempt", len(snap.Rows)).
					Msg("guess accepted")
			} else {
				// Incomplete or unknown word; the buffer is kept so the
				// player can correct it.
				app.logger.Debug().Str("game_id", app.game.ID()).Msg("guess rejected")
			}

		case input.KindRedraw, input.KindOther:
			// Nothing to apply; the next iteration re-renders.
		}

		if out := app.game.Outcome(); out != game.InProgress {
			app.board.Render(app.game.Snapshot())
			app.logger.Info().
				Str("game_id", app.game.ID()).
				Str("outcome", out.String()).
				Msg("game over")
			app.waitLinger()
			return nil
		}
	}
}

// waitLinger holds the final board on screen, cut short by Shutdown.
func (app *Application) waitLinger() {
	if app.linger <= 0 {
		return
	}
	timer := time.NewTimer(app.linger)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-app.quit:
	}
}

// Shutdown requests a graceful exit. Safe to call from a signal-handling
// goroutine; a synthetic event unblocks a pending PollEvent.
func (app *Application) Shutdown() {
	app.quitOnce.Do(func() {
		close(app.quit)
		if app.backend != nil {
			app.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
		}
	})
}

// Close releases resources held since bootstrap. Call after Run returns.
func (app *Application) Close() {
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// Summary returns the end-of-game text printed once the terminal is
// restored: a win note, or the revealed answer after a loss or quit.
func (app *Application) Summary() string {
	if app.game.Outcome() == game.Won {
		return "you have won!"
	}
	return "The answer was " + strings.ToUpper(app.game.Answer()) + ".\nMaybe try again later..."
}

// Outcome reports the game result for exit handling and tests.
func (app *Application) Outcome() game.Outcome {
	return app.game.Outcome()
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
