package facilities

import "strings"

// Tags is the free-text tag bag of an upstream map element.
type Tags map[string]string

func (t Tags) folded(key string) string {
	return strings.ToLower(t[key])
}

// Matcher reports whether a tag bag satisfies a rule.
type Matcher func(Tags) bool

// Contains matches when any keyword is a substring of any of the named fields, case-folded.
func Contains(fields []string, keywords ...string) Matcher {
	return func(t Tags) bool {
		for _, field := range fields {
			value := t.folded(field)
			if value == "" {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(value, kw) {
					return true
				}
			}
		}
		return false
	}
}

func NameContains(keywords ...string) Matcher {
	return Contains([]string{"name"}, keywords...)
}

func TagEquals(key, value string) Matcher {
	return func(t Tags) bool {
		return t[key] == value
	}
}

func TagPresent(key string) Matcher {
	return func(t Tags) bool {
		return t[key] != ""
	}
}

func AnyOf(matchers ...Matcher) Matcher {
	return func(t Tags) bool {
		for _, m := range matchers {
			if m(t) {
				return true
			}
		}
		return false
	}
}

func AllOf(matchers ...Matcher) Matcher {
	return func(t Tags) bool {
		for _, m := range matchers {
			if !m(t) {
				return false
			}
		}
		return true
	}
}

type Rule struct {
	Label string
	Match Matcher
}

// RuleSet is an ordered rule table; declaration order is priority.
type RuleSet struct {
	Rules    []Rule
	Fallback string
}

// First returns the label of the first matching rule, or the fallback.
func (rs RuleSet) First(t Tags) string {
	for _, r := range rs.Rules {
		if r.Match(t) {
			return r.Label
		}
	}
	return rs.Fallback
}

// All returns the labels of every matching rule in declaration order, or the
// fallback alone when nothing matches. Duplicate labels are reported once.
func (rs RuleSet) All(t Tags) []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, r := range rs.Rules {
		if !r.Match(t) {
			continue
		}
		if _, ok := seen[r.Label]; ok {
			continue
		}
		seen[r.Label] = struct{}{}
		labels = append(labels, r.Label)
	}
	if len(labels) == 0 {
		return []string{rs.Fallback}
	}
	return labels
}

type Classification struct {
	Category    string
	Specialties []string
	Ownership   string
}

type Classifier struct {
	Category    RuleSet
	Specialties RuleSet
	Ownership   RuleSet
}

func NewClassifier() *Classifier {
	return &Classifier{
		Category:    CategoryRules,
		Specialties: SpecialtyRules,
		Ownership:   OwnershipRules,
	}
}

// Classify never fails: missing or empty tags fall through to the fallbacks.
func (c *Classifier) Classify(t Tags) Classification {
	if t == nil {
		t = Tags{}
	}
	return Classification{
		Category:    c.Category.First(t),
		Specialties: c.Specialties.All(t),
		Ownership:   c.Ownership.First(t),
	}
}
