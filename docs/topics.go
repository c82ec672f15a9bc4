// Package docs holds the user documentation as a set of embedded
// markdown topics.
//
// Each *.md file in this directory is a topic, addressed by its base
// name. Topics are served by the 'topic' command, and some are reused
// as grounding material for the assistant.
package docs

import (
	"embed"
	"fmt"
	"slices"
	"strings"
)

//go:embed *.md
var content embed.FS

// GetTopic returns the markdown content of a single topic.
func GetTopic(name string) (string, error) {
	data, err := content.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q", name)
	}
	return string(data), nil
}

// GetTopics concatenates the requested topics into a single markdown
// document. The special name "*" expands to all topics.
func GetTopics(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name == "*" {
			expanded = append(expanded, GetAllTopics()...)
			continue
		}
		expanded = append(expanded, name)
	}

	var sb strings.Builder
	for _, name := range expanded {
		topic, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		sb.WriteString(topic)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// GetAllTopics returns the sorted list of topic names, excluding the
// top level "readme" index.
func GetAllTopics() []string {
	entries, err := content.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
