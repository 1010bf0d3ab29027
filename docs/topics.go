// Package docs holds the user documentation of pbk, one markdown file per
// topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Overview is the topic shown when none is asked for.
const Overview = "readme"

// Topic returns the content of a documentation topic.
func Topic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, available topics are %s: %w", topic, strings.Join(mustTopics(), ", "), err)
	}
	return string(content), nil
}

// Topics returns the content of several topics, one after the other. "*"
// stands for every topic.
func Topics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			names = mustTopics()
		}
		for _, name := range names {
			content, err := Topic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// All returns the names of all topics, sorted, the overview first.
func All() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if name := strings.TrimSuffix(path.Base(e), ".md"); name != Overview {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return append([]string{Overview}, topics...), nil
}

func mustTopics() []string {
	topics, err := All()
	if err != nil {
		// the embedded folder is valid
		panic(err)
	}
	return topics
}
