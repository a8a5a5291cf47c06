package patch

import (
	"fmt"
	"strings"
)

// Mode selects how many occurrences a rule replaces.
type Mode int

const (
	First Mode = iota
	All
)

func (m Mode) String() string {
	if m == All {
		return "all"
	}
	return "first"
}

// Lookup resolves configuration properties for guards.
type Lookup interface {
	Get(key string) (string, bool)
}

// Guard decides whether a rule applies to the current buffer.
type Guard func(text string, props Lookup) bool

// Rule is one replacement.
type Rule struct {
	Name    string
	Match   string
	Replace string
	Mode    Mode
	Guard   Guard
}

// Validate checks that the rule can be applied.
func (r Rule) Validate() error {
	if r.Match == "" {
		return fmt.Errorf("patch rule %q has an empty match", r.Name)
	}
	return nil
}

// Outcome is what happened to one rule.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeGuarded  Outcome = "guarded"
	OutcomeNotFound Outcome = "not-found"
)

// RuleResult records the outcome of one rule.
type RuleResult struct {
	Name         string
	Outcome      Outcome
	Replacements int
}

// Report lists rule results in application order.
type Report []RuleResult

// Applied returns the number of rules that changed the buffer.
func (r Report) Applied() int {
	n := 0
	for _, res := range r {
		if res.Outcome == OutcomeApplied {
			n++
		}
	}
	return n
}

// Apply runs rules in order against text. Rules with an empty match are
// reported as not found.
func Apply(text string, rules []Rule, props Lookup) (string, Report) {
	report := make(Report, 0, len(rules))
	for _, r := range rules {
		res := RuleResult{Name: r.Name}

		switch {
		case r.Guard != nil && !r.Guard(text, props):
			res.Outcome = OutcomeGuarded
		case r.Validate() != nil || !strings.Contains(text, r.Match):
			res.Outcome = OutcomeNotFound
		case r.Mode == All:
			res.Replacements = strings.Count(text, r.Match)
			text = strings.ReplaceAll(text, r.Match, r.Replace)
			res.Outcome = OutcomeApplied
		default:
			res.Replacements = 1
			text = strings.Replace(text, r.Match, r.Replace, 1)
			res.Outcome = OutcomeApplied
		}

		report = append(report, res)
	}
	return text, report
}

// IfAbsent applies a rule only when s does not occur in the buffer.
func IfAbsent(s string) Guard {
	return func(text string, _ Lookup) bool {
		return !strings.Contains(text, s)
	}
}

// IfPresent applies a rule only when s occurs in the buffer.
func IfPresent(s string) Guard {
	return func(text string, _ Lookup) bool {
		return strings.Contains(text, s)
	}
}

// IfSet applies a rule only when key has a non-empty value.
func IfSet(key string) Guard {
	return func(_ string, props Lookup) bool {
		if props == nil {
			return false
		}
		v, ok := props.Get(key)
		return ok && strings.TrimSpace(v) != ""
	}
}

// Every combines guards; the rule applies only when all of them hold.
func Every(guards ...Guard) Guard {
	return func(text string, props Lookup) bool {
		for _, g := range guards {
			if g != nil && !g(text, props) {
				return false
			}
		}
		return true
	}
}
