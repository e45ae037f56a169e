package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tone-backend/internal/classify"
)

func TestClassifyParsesNestedResponse(t *testing.T) {
	var gotPath, gotAuth, gotInputs string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		var body inferenceRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotInputs = body.Inputs
		_, _ = w.Write([]byte(`[[{"label":"POSITIVE","score":0.9},{"label":"NEGATIVE","score":0.1}]]`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "hf_test", "org/model", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	labels, err := client.Classify(context.Background(), "What a day.")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if gotPath != "/models/org/model" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer hf_test" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotInputs != "What a day." {
		t.Fatalf("unexpected inputs %q", gotInputs)
	}
	if len(labels) != 2 || labels[0].Label != "positive" || labels[0].Score != 0.9 {
		t.Fatalf("unexpected labels %+v", labels)
	}
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "flat", body: `[{"label":"joy","score":0.7}]`, want: 1},
		{name: "nested", body: `[[{"label":"joy","score":0.7},{"label":"fear","score":0.3}]]`, want: 2},
		{name: "error object", body: `{"error":"Model is loading"}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
		{name: "empty batch", body: `[]`, wantErr: true},
		{name: "garbage", body: `not json`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabels([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d labels, got %d", tt.want, len(got))
			}
		})
	}
}

func TestClassifyWrapsHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "hf_test", "org/model", time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.Classify(context.Background(), "text")
	if !classify.IsFailure(err) {
		t.Fatalf("expected classification failure, got %v", err)
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient("", "", "org/model", 0); err == nil {
		t.Fatalf("expected error for missing token")
	}
}
