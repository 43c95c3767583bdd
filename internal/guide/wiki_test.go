package guide

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func wikiServer(t *testing.T, handler http.HandlerFunc) *Describer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewDescriber(srv.URL, 2*time.Second)
}

func TestDescribeReturnsExtract(t *testing.T) {
	d := wikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("titles"); got != "Bengaluru" {
			t.Errorf("expected titles=Bengaluru, got %q", got)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "RentChecker/1.0") {
			t.Errorf("unexpected user agent %q", ua)
		}
		w.Write([]byte(`{"query":{"pages":{"123":{"extract":"Bengaluru is the capital of Karnataka."}}}}`))
	})

	desc := d.Describe(context.Background(), "Bengaluru")
	if desc != "Bengaluru is the capital of Karnataka." {
		t.Fatalf("unexpected description %q", desc)
	}
}

func TestDescribeTruncatesLongExtracts(t *testing.T) {
	long := strings.Repeat("a", maxDescriptionLen+100)
	d := wikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"1":{"extract":"` + long + `"}}}}`))
	})

	desc := d.Describe(context.Background(), "Somewhere")
	if len([]rune(desc)) != maxDescriptionLen+3 {
		t.Fatalf("expected %d chars, got %d", maxDescriptionLen+3, len([]rune(desc)))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Fatal("expected truncated description to end with ellipsis")
	}
}

func TestDescribeMissingPageUsesTemplate(t *testing.T) {
	d := wikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"-1":{}}}}`))
	})

	desc := d.Describe(context.Background(), "atlantisville")
	want := "Atlantisville is a major city known for its vibrant culture and growing economy."
	if desc != want {
		t.Fatalf("expected %q, got %q", want, desc)
	}
}

func TestDescribeSwallowsServerErrors(t *testing.T) {
	d := wikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if desc := d.Describe(context.Background(), "Bengaluru"); desc != fetchFailedDescription {
		t.Fatalf("expected fallback description, got %q", desc)
	}
}

func TestDescribeSwallowsMalformedResponses(t *testing.T) {
	d := wikiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	if desc := d.Describe(context.Background(), "Bengaluru"); desc != fetchFailedDescription {
		t.Fatalf("expected fallback description, got %q", desc)
	}
}

func TestDescribeSwallowsTransportFailures(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	d := NewDescriber(url, 500*time.Millisecond)
	if desc := d.Describe(context.Background(), "Bengaluru"); desc != fetchFailedDescription {
		t.Fatalf("expected fallback description, got %q", desc)
	}
}
