package advisor

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/minifire/date"
	"github.com/sirupsen/logrus"
)

// DailyCache is an http.RoundTripper that stores successful responses on
// disk. Entries are keyed by day, so that answers about the markets expire
// every day.
type DailyCache struct {
	Dir  string
	Base http.RoundTripper
	Now  func() time.Time
	Log  logrus.FieldLogger
}

// NewDailyCache caches the responses of base in dir.
func NewDailyCache(dir string, base http.RoundTripper) *DailyCache {
	if base == nil {
		base = http.DefaultTransport
	}
	return &DailyCache{Dir: dir, Base: base, Now: time.Now, Log: logrus.StandardLogger()}
}

func (c *DailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	// requests to the model are all POSTs on the same URL, the body makes the difference.
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	today := date.In(c.Now().In(date.JST))
	key := fmt.Sprintf("%s %s %s %s", today, req.Method, req.URL.String(), body)
	key = fmt.Sprintf("fire-%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil {
		c.Log.WithField("key", key).Debug("cache hit")
		return resp, nil
	}

	resp, err := c.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.Log.Debugf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		c.Log.WithError(err).Warn("cache write (ignored)")
	}
	return resp, nil
}

func (c *DailyCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.Dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

func (c *DailyCache) put(key string, resp *http.Response) error {
	// DumpResponse restores resp.Body after reading it.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Dir, key), content, 0o644)
}
