package script

import (
	"io/fs"
	"regexp"
	"sort"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
	"github.com/firefly-engineering/berth-ctl/internal/resources"
	"github.com/firefly-engineering/berth-ctl/internal/system"
)

// placeholderPattern matches {{ name }} tokens. Names may contain dots and
// hyphens so property keys can be used directly.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_.\-]*)\s*\}\}`)

// Variant supplies the template and the variant-specific values of one
// kind of script.
type Variant interface {
	// TemplatePath returns the logical resource path of the template.
	TemplatePath() string

	// ContributeProperties adds or overrides placeholder values.
	ContributeProperties(values map[string]string)
}

// Loader resolves a logical template path to its text.
type Loader func(logicalPath string) (string, error)

// Command is a script ready to render.
type Command struct {
	variant Variant
	values  map[string]string
	loader  Loader
}

// Option configures a Command.
type Option func(*Command)

// WithLoader replaces the embedded resource loader.
func WithLoader(l Loader) Option {
	return func(c *Command) {
		c.loader = l
	}
}

// New collects the configuration's effective properties, lets the variant
// contribute its own, and returns the command.
func New(cfg *container.Configuration, v Variant, opts ...Option) *Command {
	values := cfg.Properties().Snapshot()
	v.ContributeProperties(values)

	c := &Command{
		variant: v,
		values:  values,
		loader:  resources.ReadText,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TemplatePath returns the logical path of the template.
func (c *Command) TemplatePath() string {
	return c.variant.TemplatePath()
}

// Values returns a copy of the placeholder values.
func (c *Command) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Render loads the template and substitutes every placeholder.
func (c *Command) Render() (string, error) {
	path := c.TemplatePath()
	text, err := c.loader(path)
	if err != nil {
		return "", errors.IOFailure("read template", path, err)
	}

	out, missing := Substitute(text, c.values)
	if len(missing) > 0 {
		return "", errors.TemplateResolution(path, missing)
	}
	return out, nil
}

// WriteTo renders the script and writes it to dest.
func (c *Command) WriteTo(fsys system.FileSystem, dest string, perm fs.FileMode) error {
	text, err := c.Render()
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(dest, []byte(text), perm); err != nil {
		return errors.IOFailure("write script", dest, err)
	}
	return nil
}

// Substitute replaces every placeholder in text with its value. missing
// lists, sorted and without duplicates, the placeholders that had no
// value; when it is non-empty the returned text must not be used.
func Substitute(text string, values map[string]string) (string, []string) {
	seen := make(map[string]bool)
	var missing []string

	out := placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]
		v, ok := values[name]
		if !ok {
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
			return token
		}
		return v
	})

	sort.Strings(missing)
	return out, missing
}

// Placeholders returns the distinct placeholder names used in text, sorted.
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	sort.Strings(names)
	return names
}
