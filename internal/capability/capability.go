package capability

import (
	"slices"
	"sort"

	"github.com/firefly-engineering/berth-ctl/internal/deployable"
)

// Capability is the set of property keys and deployable kinds one container
// flavor supports.
type Capability struct {
	name       string
	properties map[string]struct{}
	kinds      map[deployable.Kind]struct{}
}

// New builds a Capability. The slices are copied.
func New(name string, properties []string, kinds []deployable.Kind) *Capability {
	c := &Capability{
		name:       name,
		properties: make(map[string]struct{}, len(properties)),
		kinds:      make(map[deployable.Kind]struct{}, len(kinds)),
	}
	for _, p := range properties {
		c.properties[p] = struct{}{}
	}
	for _, k := range kinds {
		c.kinds[k] = struct{}{}
	}
	return c
}

// Name returns the flavor the capability belongs to.
func (c *Capability) Name() string {
	return c.name
}

// Supports reports whether key is a recognized property.
func (c *Capability) Supports(key string) bool {
	_, ok := c.properties[key]
	return ok
}

// SupportsDeployableKind reports whether deployables of kind are accepted.
func (c *Capability) SupportsDeployableKind(kind deployable.Kind) bool {
	_, ok := c.kinds[kind]
	return ok
}

// Properties returns the recognized keys, sorted.
func (c *Capability) Properties() []string {
	out := make([]string, 0, len(c.properties))
	for p := range c.properties {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// DeployableKinds returns the accepted kinds in deployable.Kinds order.
func (c *Capability) DeployableKinds() []deployable.Kind {
	out := make([]deployable.Kind, 0, len(c.kinds))
	for _, k := range deployable.Kinds {
		if _, ok := c.kinds[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Merge returns the union of several key sets with duplicates removed.
// Flavors use it to combine the shared keys with their own.
func Merge(sets ...[]string) []string {
	var out []string
	for _, s := range sets {
		for _, k := range s {
			if !slices.Contains(out, k) {
				out = append(out, k)
			}
		}
	}
	return out
}
