package deployable

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Kind identifies the packaging of a deployable.
type Kind string

const (
	KindWAR    Kind = "war"
	KindEAR    Kind = "ear"
	KindEJB    Kind = "ejb"
	KindRAR    Kind = "rar"
	KindBundle Kind = "bundle"
	KindFile   Kind = "file"
)

// Kinds lists every known deployable kind.
var Kinds = []Kind{KindWAR, KindEAR, KindEJB, KindRAR, KindBundle, KindFile}

// ParseKind converts a user-supplied kind name. The match is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown deployable kind %q", s)
}

// Deployable is an artifact scheduled for deployment.
type Deployable struct {
	Kind Kind   `json:"kind" toml:"kind" yaml:"kind"`
	Path string `json:"path" toml:"path" yaml:"path"`

	// Context is the web context for war deployables. Empty means the
	// file name without its extension.
	Context string `json:"context,omitempty" toml:"context" yaml:"context"`
}

// Name returns the file name of the artifact.
func (d Deployable) Name() string {
	return filepath.Base(d.Path)
}

// WebContext returns the context the deployable is served under.
func (d Deployable) WebContext() string {
	if d.Context != "" {
		return strings.TrimPrefix(d.Context, "/")
	}
	name := d.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func (d Deployable) String() string {
	return fmt.Sprintf("%s (%s)", d.Path, d.Kind)
}

// List is an ordered, append-only collection of deployables.
type List struct {
	mu    sync.RWMutex
	items []Deployable
}

// Append adds d after every deployable already in the list.
func (l *List) Append(d Deployable) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, d)
}

// Items returns a copy of the deployables in insertion order.
func (l *List) Items() []Deployable {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Deployable, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of deployables.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
