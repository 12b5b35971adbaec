package docs

// this file handles
// documentation topics.

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	path := topic + ".md"

	content, err := docs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}

	return string(content), nil
}

// GetAllTopics returns the sorted list of available topics.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, entry := range entries {
		if entry == "readme.md" {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry, ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

// GetIndex returns the topic index (the docs readme).
func GetIndex() (string, error) {
	content, err := docs.ReadFile("readme.md")
	if err != nil {
		return "", err
	}
	return string(content), nil
}
