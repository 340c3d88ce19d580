// Package advisor asks a Gemini model for FIRE advice, market insight,
// national strategy sectors and stock histories.
//
// None of its methods fail: when the model cannot be reached or answers
// something unreadable, the failure is logged and a placeholder is returned
// instead, so that the dashboard always has something to show.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/minifire/date"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator generates content from a prompt. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var errNoGenerator = errors.New("no Gemini client configured")

// Client is the AI advisor.
type Client struct {
	Generator Generator
	Model     string
	Log       logrus.FieldLogger
	Now       func() time.Time // clock for the dates in prompts and fallbacks.
	Rand      *rand.Rand       // source of the synthetic prices.
}

// New returns a Client generating with g. A nil g is allowed: every call then
// returns its fallback.
func New(g Generator, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		Generator: g,
		Model:     model,
		Log:       logrus.StandardLogger(),
		Now:       time.Now,
		Rand:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
}

// NewFromEnv creates a Gemini client with the credentials of the environment
// (GEMINI_API_KEY or GOOGLE_API_KEY). Answers are cached for the day in
// cacheDir, unless it is empty. When the client cannot be created, the
// returned Client has no generator and the error says why.
func NewFromEnv(ctx context.Context, model, cacheDir string) (*Client, error) {
	config := &genai.ClientConfig{}
	if cacheDir != "" {
		config.HTTPClient = &http.Client{Transport: NewDailyCache(cacheDir, nil)}
	}
	gc, err := genai.NewClient(ctx, config)
	if err != nil {
		return New(nil, model), fmt.Errorf("error initializing Gemini's client: %w", err)
	}
	return New(gc.Models, model), nil
}

// generate sends prompt with config and decodes the JSON answer into v.
// paths are jsonpath expressions tried in order to locate the value in the answer.
func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig, v any, paths ...string) error {
	if c.Generator == nil {
		return errNoGenerator
	}
	resp, err := c.Generator.GenerateContent(ctx, c.Model, genai.Text(prompt), config)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return errors.New("empty response")
	}
	return decode(resp.Text(), v, paths...)
}

// decode parses text as JSON and unmarshals into v the first value found at paths.
// Grounded answers are free text, they often wrap the JSON in a markdown code fence.
func decode(text string, v any, paths ...string) error {
	text = stripFence(text)
	if text == "" {
		return errors.New("empty response")
	}
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	if len(paths) == 0 {
		paths = []string{"$"}
	}
	var errs []error
	for _, path := range paths {
		sel, err := jsonpath.Get(path, doc)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		raw, err := json.Marshal(sel)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		return nil
	}
	return fmt.Errorf("unexpected response: %w", errors.Join(errs...))
}

// stripFence removes a surrounding ``` or ```json fence and anything outside it.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}
	body := text[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:] // drop the language tag
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// fallback logs why the model could not answer.
func (c *Client) fallback(what string, err error) {
	c.Log.WithError(err).WithField("model", c.Model).Warnf("%s unavailable, using fallback", what)
}

// today returns the current time in Japan, where the markets of interest are.
func (c *Client) today() time.Time {
	return c.Now().In(date.JST)
}
