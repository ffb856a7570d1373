package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// TestTopicStructure walks every topic's markdown tree and checks the
// conventions the dashboard relies on: each topic opens with a level-1
// heading, and the formatting topic carries the abbreviation table.
func TestTopicStructure(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) error = %v", topic, err)
			}
			source := []byte(content)
			doc := md.Parser().Parse(text.NewReader(source))

			h, ok := doc.FirstChild().(*ast.Heading)
			if !ok {
				t.Fatalf("topic does not open with a heading, got %T", doc.FirstChild())
			}
			if h.Level != 1 {
				t.Errorf("opening heading level = %d, want 1", h.Level)
			}
		})
	}
}

func TestFormattingTopicHasTable(t *testing.T) {
	content, err := GetTopic("formatting")
	if err != nil {
		t.Fatalf("GetTopic(formatting) error = %v", err)
	}
	source := []byte(content)
	doc := md.Parser().Parse(text.NewReader(source))

	var tables int
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := n.(*east.Table); ok && entering {
			tables++
		}
		return ast.WalkContinue, nil
	})
	if tables == 0 {
		t.Error("formatting topic has no abbreviation table")
	}
}
