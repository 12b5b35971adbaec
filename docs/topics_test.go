package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every topic file is listed in readme.md.

	index, err := GetIndex()
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}

	var topicsInReadme []string
	scanner := bufio.NewScanner(strings.NewReader(index))
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("topic %q listed in readme.md but not loadable: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic file %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicsStartWithHeading(t *testing.T) {
	// Every topic must open with a level-1 heading, since the topic command
	// renders them standalone.
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}

	md := goldmark.New()
	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) failed: %v", topic, err)
			}

			source := []byte(content)
			doc := md.Parser().Parse(text.NewReader(source))
			first := doc.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", topic)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level-%d heading, want level 1", topic, heading.Level)
			}
		})
	}
}
