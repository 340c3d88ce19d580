// Package docs holds the user documentation, one embedded Markdown file per topic.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var docs embed.FS

// Index is the topic listing all the others.
const Index = "readme"

// GetTopic returns the content of a documentation topic.
// The "*" topic is all topics but the index.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, the index excluded.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != Index {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

// Title returns the text of the first heading of a topic.
func Title(topic string) (string, error) {
	content, err := GetTopic(topic)
	if err != nil {
		return "", err
	}
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(source))
			}
		}
		title = b.String()
		return ast.WalkStop, nil
	})
	if title == "" {
		return "", fmt.Errorf("topic %q has no title", topic)
	}
	return title, nil
}
