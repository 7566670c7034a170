package runbook

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML sequence of {keyword, runbook} entries. The file order
// becomes the match order.
func Load(path string) (*KnowledgeBase, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read runbooks: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*KnowledgeBase, error) {
	var entries []Entry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse runbooks yaml: %w", err)
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Keyword) == "" {
			return nil, fmt.Errorf("runbook entry %d: keyword is required", i)
		}
		if strings.TrimSpace(e.Runbook) == "" {
			return nil, fmt.Errorf("runbook entry %d (%s): runbook is required", i, e.Keyword)
		}
	}
	return New(entries), nil
}
