package query

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed queries/*.sql
var queriesFS embed.FS

// Provider resolves a logical use-case name to SQL text. Statements live in
// embedded queries/<name>.sql files and are cached by name after first load.
type Provider struct {
	mu    sync.RWMutex
	cache map[string]string
}

func NewProvider() *Provider {
	return &Provider{cache: make(map[string]string)}
}

// Get returns the statement registered under name. A missing statement is a
// packaging error, not a runtime condition.
func (p *Provider) Get(name string) (string, error) {
	p.mu.RLock()
	text, ok := p.cache[name]
	p.mu.RUnlock()
	if ok {
		return text, nil
	}

	raw, err := queriesFS.ReadFile("queries/" + name + ".sql")
	if err != nil {
		return "", fmt.Errorf("query %q not found: %w", name, err)
	}
	text = strings.TrimSpace(string(raw))

	p.mu.Lock()
	p.cache[name] = text
	p.mu.Unlock()
	return text, nil
}

// MustGet is Get for construction-time resolution: repositories resolve
// their statements once in their constructors so a missing query fails the
// process at startup rather than mid-request.
func (p *Provider) MustGet(name string) string {
	text, err := p.Get(name)
	if err != nil {
		panic(err)
	}
	return text
}
