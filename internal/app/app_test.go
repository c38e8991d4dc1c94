package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/wordstorm/internal/game"
	"github.com/dshills/wordstorm/internal/renderer/backend"
	"github.com/dshills/wordstorm/internal/words"
)

// newTestApp builds an app with a known answer, a null backend, and no
// end-of-game linger so tests finish immediately.
func newTestApp(t *testing.T, answer string) (*Application, *backend.Null) {
	t.Helper()

	application, err := New(Options{LogLevel: "disabled"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	corpus, err := words.Load("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	application.game = game.New(corpus, answer)
	application.linger = 0

	null := backend.NewNull(80, 24)
	if err := application.SetBackend(null); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return application, null
}

func postWord(null *backend.Null, word string) {
	for _, r := range word {
		null.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r})
	}
	null.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyEnter})
}

func TestRunWinsOnCorrectGuess(t *testing.T) {
	application, null := newTestApp(t, "crane")

	postWord(null, "crane")
	if err := application.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out := application.Outcome(); out != game.Won {
		t.Errorf("expected won, got %v", out)
	}
	if got := application.Summary(); got != "you have won!" {
		t.Errorf("expected win summary, got %q", got)
	}
	if !null.Finished() {
		t.Error("expected backend to be restored after Run")
	}
}

func TestRunLosesAfterSixGuesses(t *testing.T) {
	application, null := newTestApp(t, "crane")

	for i := 0; i < game.MaxGuesses; i++ {
		postWord(null, "slate")
	}
	if err := application.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out := application.Outcome(); out != game.Lost {
		t.Errorf("expected lost, got %v", out)
	}
	if got := application.Summary(); !strings.Contains(got, "CRANE") {
		t.Errorf("expected summary to reveal answer, got %q", got)
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	application, null := newTestApp(t, "crane")

	postWord(null, "sl") // a couple of letters, then bail
	null.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyEscape})

	err := application.Run()
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if !null.Finished() {
		t.Error("expected backend to be restored after quit")
	}
	// The answer is still revealed in the farewell summary.
	if got := application.Summary(); !strings.Contains(got, "CRANE") {
		t.Errorf("expected summary to reveal answer, got %q", got)
	}
}

func TestRunRejectsUnknownGuessAndContinues(t *testing.T) {
	application, null := newTestApp(t, "crane")

	postWord(null, "zzzzz") // rejected, buffer kept
	for i := 0; i < game.WordLength; i++ {
		null.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyBackspace})
	}
	postWord(null, "crane")

	if err := application.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := application.Outcome(); out != game.Won {
		t.Errorf("expected won after correcting the guess, got %v", out)
	}
}

func TestRunWithoutBackend(t *testing.T) {
	application, err := New(Options{LogLevel: "disabled"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := application.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
}

func TestShutdownUnblocksRun(t *testing.T) {
	application, _ := newTestApp(t, "crane")

	done := make(chan error, 1)
	go func() {
		done <- application.Run()
	}()

	// Give the loop a moment to block in PollEvent, then ask it to stop.
	time.Sleep(20 * time.Millisecond)
	application.Shutdown()

	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("expected ErrQuit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestSeededAnswerSelectionIsStable(t *testing.T) {
	a, err := New(Options{LogLevel: "disabled", Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New(Options{LogLevel: "disabled", Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.game.Answer() != b.game.Answer() {
		t.Errorf("expected identical answers for one seed, got %q and %q",
			a.game.Answer(), b.game.Answer())
	}
}

func TestBootstrapFailsOnBadTheme(t *testing.T) {
	t.Setenv("WORDSTORM_UI_CORRECT", "nope")

	_, err := New(Options{LogLevel: "disabled"})
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected InitError, got %v", err)
	}
	if initErr.Component != "theme" {
		t.Errorf("expected theme component, got %q", initErr.Component)
	}
}

func TestBootstrapFailsOnMissingAnswers(t *testing.T) {
	_, err := New(Options{
		LogLevel:    "disabled",
		AnswersPath: filepath.Join(t.TempDir(), "absent.txt"),
	})
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected InitError, got %v", err)
	}
	if initErr.Component != "words" {
		t.Errorf("expected words component, got %q", initErr.Component)
	}
}

func TestDebugOptionEnablesLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "game.log")
	t.Setenv("WORDSTORM_LOG_FILE", logPath)

	application, err := New(Options{Debug: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer application.Close()

	if application.cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", application.cfg.Logging.Level)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected log file to be created: %v", err)
	}
}
