package narration

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	ctx := context.Background()

	r.Speak(ctx, Utterance{Text: "uno", Locale: DefaultLocale})
	r.Speak(ctx, Utterance{Text: "dos", Locale: DefaultLocale, Muted: true})

	lines := r.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "uno" || !lines[1].Muted {
		t.Errorf("unexpected lines: %+v", lines)
	}

	r.Reset()
	if len(r.Lines()) != 0 {
		t.Error("Reset() should clear recorded lines")
	}
}

func TestMultiStopsOnError(t *testing.T) {
	var first, last Recorder
	boom := errors.New("boom")
	failing := Func(func(context.Context, Utterance) error { return boom })

	err := Multi(&first, failing, &last).Speak(context.Background(), Utterance{Text: "verso"})
	if !errors.Is(err, boom) {
		t.Fatalf("Multi().Speak() error = %v, want boom", err)
	}
	if len(first.Lines()) != 1 {
		t.Error("first narrator should have spoken")
	}
	if len(last.Lines()) != 0 {
		t.Error("narrators after the failing one should not run")
	}
}

func TestLogNarratorSkipsMuted(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNarrator(log.New(&buf))

	n.Speak(context.Background(), Utterance{Text: "callado", Muted: true})
	if buf.Len() != 0 {
		t.Errorf("muted line was logged: %q", buf.String())
	}

	n.Speak(context.Background(), Utterance{Text: "en voz alta", Locale: "es-MX"})
	if !strings.Contains(buf.String(), "en voz alta") {
		t.Errorf("voiced line missing from log: %q", buf.String())
	}
}

func TestCommandNarratorExpand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantArgs  []string
		wantStdin bool
	}{
		{
			name:      "text on command line",
			args:      []string{"-v", "{locale}", "{text}"},
			wantArgs:  []string{"-v", "es-MX", "Hola"},
			wantStdin: false,
		},
		{
			name:      "text on stdin",
			args:      []string{"--voice={locale}"},
			wantArgs:  []string{"--voice=es-MX"},
			wantStdin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &CommandNarrator{Command: "say", Args: tt.args}
			args, stdin := n.expand(Utterance{Text: "Hola", Locale: "es-MX"})
			if strings.Join(args, " ") != strings.Join(tt.wantArgs, " ") {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
			if stdin != tt.wantStdin {
				t.Errorf("stdin = %v, want %v", stdin, tt.wantStdin)
			}
		})
	}
}

func TestCommandNarratorMissingProgram(t *testing.T) {
	if _, err := NewCommandNarrator("", nil); err == nil {
		t.Error("empty command should be rejected")
	}
	if _, err := NewCommandNarrator("definitely-not-a-tts-binary-1234", nil); err == nil {
		t.Error("missing command should be rejected")
	}
}
