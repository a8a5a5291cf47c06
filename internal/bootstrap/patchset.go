package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/berth-ctl/internal/container"
	"github.com/firefly-engineering/berth-ctl/internal/patch"
	"github.com/firefly-engineering/berth-ctl/internal/property"
)

// JVMDefault is a flag value a bootstrap tool writes into its artifact
// and that berth.jvmargs may override.
type JVMDefault struct {
	// Flag is the prefix searched for in the JVM arguments ("-Xmx").
	Flag string
	// Default is the exact text the tool writes ("-Xmx512m").
	Default string
}

// PatchProfile is a flavor's description of its generated artifact.
type PatchProfile struct {
	// ClosingTag ends the element system properties are inserted into.
	ClosingTag string
	// Indent prefixes the closing tag after an inserted property.
	Indent string
	// SystemProperty names the system property carrying the Java home.
	SystemProperty string
	// JavaConfigElement is the opening of the element that receives the
	// java-home attribute.
	JavaConfigElement string
	// JavaHomeAttribute is the attribute injected into JavaConfigElement.
	JavaHomeAttribute string

	JVMDefaults []JVMDefault
}

// NormalizeJavaHome returns the JDK root for a Java home. A path whose
// last element is "jre" is replaced by its parent.
func NormalizeJavaHome(javaHome string) string {
	cleaned := filepath.Clean(javaHome)
	if filepath.Base(cleaned) == "jre" {
		return filepath.Dir(cleaned)
	}
	return javaHome
}

// ExtractJVMArg returns the first argument in jvmArgs that starts with
// flag, up to the next whitespace or the end of the string.
func ExtractJVMArg(jvmArgs, flag string) (string, bool) {
	if flag == "" {
		return "", false
	}
	for _, arg := range strings.Fields(jvmArgs) {
		if strings.HasPrefix(arg, flag) {
			return arg, true
		}
	}
	return "", false
}

func escapeXMLAttr(s string) string {
	return strings.ReplaceAll(s, "&", "&amp;")
}

// BuildPatchSet derives the ordered patch rules for cfg.
func BuildPatchSet(cfg *container.Configuration, profile *PatchProfile) []patch.Rule {
	if profile == nil {
		return nil
	}

	var rules []patch.Rule
	props := cfg.Properties()

	if javaHome, ok := props.Get(property.JavaHome); ok && strings.TrimSpace(javaHome) != "" {
		javaHome = NormalizeJavaHome(javaHome)

		if profile.ClosingTag != "" && profile.SystemProperty != "" {
			decl := fmt.Sprintf("<system-property name='%s' value='%s'/>", profile.SystemProperty, escapeXMLAttr(javaHome))
			rules = append(rules, patch.Rule{
				Name:    "system-property",
				Match:   profile.ClosingTag,
				Replace: "  " + decl + "\n" + profile.Indent + profile.ClosingTag,
				Mode:    patch.All,
				Guard:   patch.IfAbsent(decl),
			})
		}

		if profile.JavaConfigElement != "" && profile.JavaHomeAttribute != "" {
			attr := fmt.Sprintf("%s='${%s}'", profile.JavaHomeAttribute, profile.SystemProperty)
			rules = append(rules, patch.Rule{
				Name:    "java-home",
				Match:   profile.JavaConfigElement,
				Replace: profile.JavaConfigElement + attr + " ",
				Mode:    patch.All,
				Guard:   patch.IfAbsent(" " + profile.JavaHomeAttribute + "="),
			})
		}
	}

	if jvmArgs, ok := props.Get(property.JVMArgs); ok {
		for _, d := range profile.JVMDefaults {
			arg, found := ExtractJVMArg(jvmArgs, d.Flag)
			if !found || arg == d.Default {
				continue
			}
			rules = append(rules, patch.Rule{
				Name:    "jvm" + d.Flag,
				Match:   d.Default,
				Replace: arg,
				Mode:    patch.All,
			})
		}
	}

	return rules
}
