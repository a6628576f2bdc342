package loghandler

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"
)

var linePrefix = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `)

func TestCompactHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelInfo))

	logger.Info("phase changed", "tag", "game", "from", "COOLDOWN", "to", "PLAYING")

	line := buf.String()
	if !linePrefix.MatchString(line) {
		t.Fatalf("expected timestamp prefix, got %q", line)
	}
	want := "[game] phase changed from=COOLDOWN to=PLAYING\n"
	if got := linePrefix.ReplaceAllString(line, ""); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCompactHandler_WithAttrsTag(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelInfo)).With("tag", "lobby", "game", "g-1")

	logger.Info("player joined", "player", "ann")

	want := "[lobby] player joined game=g-1 player=ann\n"
	if got := linePrefix.ReplaceAllString(buf.String(), ""); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	buf.Reset()
	logger.Info("override", "tag", "ws")
	if got := linePrefix.ReplaceAllString(buf.String(), ""); got != "[ws] override game=g-1\n" {
		t.Errorf("per-call tag should win, got %q", got)
	}
}

func TestCompactHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelWarn))

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	logger.Error("shown", "tag", "main")
	if buf.Len() == 0 {
		t.Error("error should pass a warn level handler")
	}
}
