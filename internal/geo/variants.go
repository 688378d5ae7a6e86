package geo

import (
	"regexp"
	"sort"
	"strings"
)

// VariantProfile carries the per-site lexical knobs for variant generation.
type VariantProfile struct {
	// GenericWords are transport descriptor words ("gondola", "bahn",
	// "lift", ...) stripped from names as whole words, case-insensitively.
	GenericWords []string
	// Aliases maps a canonical name to its known alternate spellings and
	// transliterations.
	Aliases map[string][]string
	// ContextTerms are disambiguating suffixes (resort, region, country)
	// appended to the stripped root.
	ContextTerms []string
}

var parenthesized = regexp.MustCompile(`\s*\([^)]*\)\s*`)

func (p VariantProfile) genericPattern() *regexp.Regexp {
	if len(p.GenericWords) == 0 {
		return nil
	}
	words := make([]string, len(p.GenericWords))
	for i, w := range p.GenericWords {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

// Variants expands a raw name into an ordered list of search strings, most
// promising first: the cleaned name itself, its generic-word-stripped form,
// hyphen tails, parenthesis-free and accent-free copies, known aliases and
// context-suffixed roots. Deduplicated case-insensitively, preserving first
// occurrence; empty for an empty input.
func Variants(name string, p VariantProfile) []string {
	base := CleanName(name)
	if base == "" {
		return nil
	}
	variants := []string{base}

	// Generic descriptor words removed as whole words. If nothing useful
	// survives, the base name alone is kept.
	stripped := ""
	if re := p.genericPattern(); re != nil {
		stripped = CleanName(strings.Trim(re.ReplaceAllString(base, ""), " -"))
		if stripped != "" && !strings.EqualFold(stripped, base) {
			variants = append(variants, stripped)
		}
	}

	if i := strings.LastIndex(base, " - "); i >= 0 {
		variants = append(variants, strings.TrimSpace(base[i+len(" - "):]))
	} else if strings.Contains(base, "-") {
		parts := strings.Split(base, "-")
		variants = append(variants, strings.TrimSpace(parts[len(parts)-1]))
	}

	for _, v := range variants[:len(variants):len(variants)] {
		noParen := CleanName(parenthesized.ReplaceAllString(v, " "))
		if noParen != "" && !strings.EqualFold(noParen, v) {
			variants = append(variants, noParen)
		}
	}

	for _, v := range variants[:len(variants):len(variants)] {
		plain := StripAccents(v)
		if !strings.EqualFold(plain, v) {
			variants = append(variants, plain)
		}
	}

	root := stripped
	if root == "" {
		root = base
	}

	keys := make([]string, 0, len(p.Aliases))
	for k := range p.Aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, root) || strings.EqualFold(k, base) {
			variants = append(variants, p.Aliases[k]...)
		}
	}

	for _, c := range p.ContextTerms {
		variants = append(variants, root+" "+c)
	}

	out := make([]string, 0, len(variants))
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// FallbackQueries builds the free-text fallback query strings for a name
// from the site's contextual suffixes, in order.
func FallbackQueries(name string, suffixes []string) []string {
	name = CleanName(name)
	if name == "" {
		return nil
	}
	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		out = append(out, name+" "+s)
	}
	return out
}
