package advisor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestDailyCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "fail") {
			http.Error(w, "quota", http.StatusTooManyRequests)
			return
		}
		io.WriteString(w, "answer to "+string(body))
	}))
	defer srv.Close()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cache := NewDailyCache(t.TempDir(), srv.Client().Transport)
	cache.Now = func() time.Time { return now }
	cache.Log, _ = test.NewNullLogger()
	client := &http.Client{Transport: cache}

	post := func(body string) string {
		t.Helper()
		resp, err := client.Post(srv.URL+"/generate", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}

	steps := []struct {
		body      string
		want      string
		wantCalls int
	}{
		{"a", "answer to a", 1},
		{"a", "answer to a", 1}, // cached
		{"b", "answer to b", 2}, // another question
		{"fail", "quota\n", 3},
		{"fail", "quota\n", 4}, // errors are not cached
	}
	for _, s := range steps {
		if got := post(s.body); got != s.want {
			t.Errorf("POST %q = %q, want %q", s.body, got, s.want)
		}
		if calls != s.wantCalls {
			t.Errorf("after POST %q: %d calls to the server, want %d", s.body, calls, s.wantCalls)
		}
	}

	// the next day, the cache has expired.
	now = now.Add(24 * time.Hour)
	post("a")
	if calls != 5 {
		t.Errorf("%d calls to the server the next day, want 5", calls)
	}
}
