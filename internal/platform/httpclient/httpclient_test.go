package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "not a url", "/relative"} {
		if _, err := New(u); err == nil {
			t.Fatalf("expected error for base url %q", u)
		}
	}
}

func TestDoJSON_SendsAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/birds" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected json content type")
		}
		if r.Header.Get("X-Test") != "yes" {
			t.Errorf("expected custom header")
		}

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["species"]})
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", WithTimeout(time.Second), WithHeader("X-Test", "yes"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "birds", map[string]string{"species": "Sparrow"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out["echo"] != "Sparrow" {
		t.Fatalf("unexpected response %#v", out)
	}
}

func TestDoJSON_Non2xx_ReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bird not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c, _ := New(ts.URL)
	err := c.DoJSON(context.Background(), http.MethodGet, "/birds/x", nil, nil)
	if StatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
	if err.Error() != "http error: status=404 body=bird not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDoJSON_EmptyBody_NoDecode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, _ := New(ts.URL)
	var out map[string]any
	if err := c.DoJSON(context.Background(), http.MethodDelete, "/birds/x", nil, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out != nil {
		t.Fatalf("expected out untouched")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithTransport_UsesRoundTripper(t *testing.T) {
	var gotURL string
	tr := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"id":"b1"}`)),
			Request:    r,
		}, nil
	})

	c, err := New("http://birds.invalid", WithTransport(tr), WithTransport(nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodGet, "/birds/b1", nil, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if gotURL != "http://birds.invalid/birds/b1" {
		t.Fatalf("unexpected url %q", gotURL)
	}
	if out["id"] != "b1" {
		t.Fatalf("unexpected response %#v", out)
	}
}
