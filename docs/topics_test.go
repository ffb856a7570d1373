package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded with GetTopic.
	// 2. Every .md file in the directory (excluding readme.md itself) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetTopic_Default(t *testing.T) {
	content, err := GetTopic(DefaultTopic)
	if err != nil {
		t.Fatalf("GetTopic(%q) error = %v", DefaultTopic, err)
	}
	if !strings.Contains(content, "# Overview") {
		t.Error("default topic does not start with its title")
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error = %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics found")
	}
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) error = %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("star expansion misses topic %q", topic)
		}
	}
}
