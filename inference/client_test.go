package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"credcheck/types"
)

func TestInferSuccess(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"prediction": "Real",
			"confidence": 0.92,
			"factCheck":  map[string]string{"verdict": "TRUE", "reason": "checks out"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	outcome, err := client.Infer(context.Background(), "some article text")
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}

	if gotBody["text"] != "some article text" {
		t.Fatalf("request text = %q", gotBody["text"])
	}
	if outcome.Prediction != "Real" || outcome.Confidence != 0.92 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if outcome.FactCheck == nil || outcome.FactCheck.Verdict != types.VerdictTrue {
		t.Fatalf("unexpected fact check: %+v", outcome.FactCheck)
	}
}

func TestInferOmittedFactCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"prediction": "Fake", "confidence": 0.81})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	outcome, err := client.Infer(context.Background(), "text")
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}
	if outcome.FactCheck != nil {
		t.Fatalf("FactCheck = %+v; want nil when upstream omits it", outcome.FactCheck)
	}
}

func TestInferBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Infer(context.Background(), "text")

	var infErr *Error
	if !errors.As(err, &infErr) {
		t.Fatalf("error = %v; want *Error", err)
	}
	if infErr.Kind != FailureBadStatus {
		t.Fatalf("kind = %s; want %s", infErr.Kind, FailureBadStatus)
	}
}

func TestInferMalformedBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing prediction", `{"confidence": 0.5}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(c.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, time.Second)
			_, err := client.Infer(context.Background(), "text")

			var infErr *Error
			if !errors.As(err, &infErr) {
				t.Fatalf("error = %v; want *Error", err)
			}
			if infErr.Kind != FailureMalformedBody {
				t.Fatalf("kind = %s; want %s", infErr.Kind, FailureMalformedBody)
			}
		})
	}
}

func TestInferUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, time.Second)
	_, err := client.Infer(context.Background(), "text")

	var infErr *Error
	if !errors.As(err, &infErr) {
		t.Fatalf("error = %v; want *Error", err)
	}
	if infErr.Kind != FailureUnreachable {
		t.Fatalf("kind = %s; want %s", infErr.Kind, FailureUnreachable)
	}
}

func TestInferTimeoutCancelsCall(t *testing.T) {
	started := make(chan struct{}, 4)
	cancelled := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		select {
		case <-r.Context().Done():
			cancelled <- struct{}{}
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)

	// Repeated timeouts must not leak the in-flight calls: each one should
	// see its server-side context cancelled.
	for i := 0; i < 3; i++ {
		_, err := client.Infer(context.Background(), "slow")
		var infErr *Error
		if !errors.As(err, &infErr) {
			t.Fatalf("error = %v; want *Error", err)
		}
		if infErr.Kind != FailureTimeout {
			t.Fatalf("kind = %s; want %s", infErr.Kind, FailureTimeout)
		}
		<-started
		select {
		case <-cancelled:
		case <-time.After(2 * time.Second):
			t.Fatal("in-flight call was not cancelled after deadline")
		}
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health error: %v", err)
	}
}

func TestHealthUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if err := client.Health(context.Background()); err == nil {
		t.Fatal("Health returned nil for 503")
	}
}
