package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"quotation_desk/internal/config"
)

func TestOpenAIGenerator_Generate(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.MaxTokens != 200 || len(req.Messages) != 2 || req.Messages[0].Content != systemPrompt || req.Model != "m" {
			t.Errorf("unexpected request %+v", req)
		}
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Done.  "}}]}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("key", "m", srv.URL, srv.Client())
	got, err := g.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Done." {
		t.Errorf("got %q", got)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("calls = %d, want a retry after 503", calls)
	}
}

func TestOpenAIGenerator_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewOpenAIGenerator("bad", "", srv.URL, srv.Client()).Generate(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("calls = %d", calls)
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"throttled", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, true},
		{"server error", &openai.RequestError{HTTPStatusCode: http.StatusBadGateway}, true},
		{"bad request", &openai.APIError{HTTPStatusCode: http.StatusBadRequest}, false},
		{"transport", errors.New("connection reset"), true},
		{"cancelled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.err); got != tt.want {
				t.Errorf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestMockGenerator(t *testing.T) {
	out, err := NewMockGenerator().Generate(context.Background(), "Selected Products:\n- Smart hub (Qty: 1)\n")
	if err != nil || !strings.Contains(out, "Smart hub") {
		t.Errorf("out = %q, err = %v", out, err)
	}
}

func TestNew(t *testing.T) {
	if New(config.TextGenConfig{}, nil) != nil {
		t.Error("disabled provider should give nil")
	}
	if New(config.TextGenConfig{Provider: "openai"}, nil) != nil {
		t.Error("openai without key should give nil")
	}
	if _, ok := New(config.TextGenConfig{Provider: "mock"}, nil).(*MockGenerator); !ok {
		t.Error("mock provider should give MockGenerator")
	}
}
