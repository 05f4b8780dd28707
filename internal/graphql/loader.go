// Package graphql embeds the GraphQL documents sent to the Monarch API.
// The query files are configuration: the nested key paths they select are
// asserted from observed responses, not a guaranteed contract.
package graphql

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

//go:embed queries/*
var queriesFS embed.FS

// QueryLoader loads GraphQL queries from embedded files
type QueryLoader struct {
	cache map[string]string
	mu    sync.RWMutex
}

// NewQueryLoader creates a new query loader
func NewQueryLoader() *QueryLoader {
	return &QueryLoader{
		cache: make(map[string]string),
	}
}

// Load loads a query from the embedded filesystem
func (l *QueryLoader) Load(queryPath string) (string, error) {
	l.mu.RLock()
	if query, ok := l.cache[queryPath]; ok {
		l.mu.RUnlock()
		return query, nil
	}
	l.mu.RUnlock()

	fullPath := path.Join("queries", queryPath)
	content, err := queriesFS.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to load query %s: %w", queryPath, err)
	}

	query := string(content)

	l.mu.Lock()
	l.cache[queryPath] = query
	l.mu.Unlock()

	return query, nil
}

// List returns all available query paths
func (l *QueryLoader) List() ([]string, error) {
	var queries []string

	err := fs.WalkDir(queriesFS, "queries", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".graphql") {
			queries = append(queries, strings.TrimPrefix(p, "queries/"))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	return queries, nil
}
