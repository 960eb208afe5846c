package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestLoggingProvider_LogsPurposeAndUsage(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)

	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{}`),
			Usage:   Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	)
	p := WithLogging(mock, log)

	ctx := WithPurpose(context.Background(), "question-generation")
	if _, err := p.Generate(ctx, Request{Images: []Image{{MIMEType: "image/png"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"purpose":"question-generation"`,
		`"model":"mock"`,
		`"images":1`,
		`"input_tokens":100`,
		`"output_tokens":50`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestLoggingProvider_LogsErrors(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)

	mock := NewMockProvider()
	p := WithLogging(mock, log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock")
	}

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level on error:\n%s", out)
	}
	if !strings.Contains(out, `"purpose":"unknown"`) {
		t.Errorf("expected unknown purpose:\n%s", out)
	}
}
