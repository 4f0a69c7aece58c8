package mockup

import "strings"

// Rule maps a keyword set to a category. A prompt matches when it contains
// any of the keywords.
type Rule struct {
	Category Category
	Keywords []string
}

// Ordered by priority; the first matching rule wins.
var rules = []Rule{
	{Category: CategoryLogin, Keywords: []string{"login", "sign in", "signup", "register"}},
	{Category: CategoryDashboard, Keywords: []string{"dashboard", "analytics", "stats"}},
	{Category: CategoryProfile, Keywords: []string{"profile", "user", "card"}},
}

// palette is checked in this order when extracting a color.
var palette = []Color{
	ColorRed, ColorGreen, ColorBlue, ColorPurple, ColorOrange,
	ColorPink, ColorYellow, ColorTeal, ColorIndigo, ColorGray,
}

// Rules returns a copy of the classification table in match order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Palette returns the supported accent colors in match order.
func Palette() []Color {
	return append([]Color(nil), palette...)
}

// Classify picks the category for a prompt. Prompts that match no rule,
// including the empty prompt, are Generic.
func Classify(prompt string) Category {
	p := strings.ToLower(prompt)
	for _, r := range rules {
		if containsAny(p, r.Keywords) {
			return r.Category
		}
	}
	return CategoryGeneric
}

// ExtractColor returns the first palette color mentioned in the prompt, or
// DefaultColor. Matching is plain substring search.
func ExtractColor(prompt string) Color {
	p := strings.ToLower(prompt)
	for _, c := range palette {
		if strings.Contains(p, string(c)) {
			return c
		}
	}
	return DefaultColor
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
