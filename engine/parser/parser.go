// Package parser converts editor command lines into Command structs and
// matches free-text choices against option labels.
// Intentionally dumb: no grammar, just word lists.
package parser

import (
	"strings"

	"github.com/VicenteCartas/megameklab/types"
)

var verbAliases = map[string]string{
	// Chassis fields
	"t":          "tonnage",
	"tons":       "tonnage",
	"weight":     "tonnage",
	"mass":       "tonnage",
	"base":       "type",
	"locomotion": "motive",
	"internal":   "structure",
	"e":          "engine",
	"eng":        "engine",
	"g":          "gyro",
	"c":          "cockpit",
	"myomer":     "enhancement",
	"enh":        "enhancement",
	"ejection":   "eject",
	"headeject":  "eject",
	"customize":  "refit",
	"name":       "chassis",
	"variant":    "model",

	// Armor
	"a":      "armor",
	"ar":     "armor",
	"armour": "armor",

	// Inspection
	"o":       "options",
	"opts":    "options",
	"choices": "options",
	"s":       "status",
	"stat":    "status",
	"check":   "validate",
	"legal":   "validate",
	"show":    "look",
	"l":       "look",
}

var toggleWords = map[string]string{
	"on":    "on",
	"yes":   "on",
	"true":  "on",
	"1":     "on",
	"off":   "off",
	"no":    "off",
	"false": "off",
	"0":     "off",
}

// Parse converts a raw command line into a Command. The verb is lowercased
// and aliased; arguments keep their case so names survive.
func Parse(input string) types.Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Command{}
	}

	words := strings.Fields(input)
	words = expandMultiWordVerbs(words)

	verb := strings.ToLower(words[0])
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}
	return types.Command{Verb: verb, Args: words[1:]}
}

// expandMultiWordVerbs handles "set tonnage", "base type", "full head eject"
// and the like.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}
	first := strings.ToLower(words[0])
	second := strings.ToLower(words[1])

	switch first {
	case "set", "change", "select", "use":
		return expandMultiWordVerbs(words[1:])
	case "base", "unit":
		if second == "type" {
			return append([]string{"type"}, words[2:]...)
		}
	case "motive":
		if second == "type" {
			return append([]string{"motive"}, words[2:]...)
		}
	case "engine":
		if second == "rating" {
			return append([]string{"rating"}, words[2:]...)
		}
	case "internal":
		if second == "structure" {
			return append([]string{"structure"}, words[2:]...)
		}
	case "head":
		if second == "eject" || second == "ejection" {
			return append([]string{"eject"}, words[2:]...)
		}
	case "full":
		if len(words) >= 3 && second == "head" {
			return append([]string{"eject"}, words[3:]...)
		}
	case "reset":
		if second == "chassis" {
			return append([]string{"reset"}, words[2:]...)
		}
	case "tech":
		if second == "level" {
			return append([]string{"level"}, words[2:]...)
		}
	}
	return words
}

// Toggle interprets an on/off argument. A missing argument means "on".
func Toggle(args []string) (value bool, ok bool) {
	if len(args) == 0 {
		return true, true
	}
	switch toggleWords[strings.ToLower(args[0])] {
	case "on":
		return true, true
	case "off":
		return false, true
	}
	return false, false
}

// Join rebuilds a multi-word argument.
func Join(args []string) string {
	return strings.Join(args, " ")
}

// normalize folds case and drops punctuation so "endo-steel" and
// "Endo Steel" compare equal.
func normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	space := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			space = true
		}
	}
	return b.String()
}

// Match finds the label a free-text choice refers to. An exact match wins,
// then labels starting with the text, then labels containing every word of
// the text. Among several candidates the one with the fewest words wins; a
// tie is ambiguous. It returns the label index.
func Match(text string, labels []string) (int, bool) {
	want := normalize(text)
	if want == "" {
		return 0, false
	}
	norm := make([]string, len(labels))
	for i, l := range labels {
		norm[i] = normalize(l)
		if norm[i] == want {
			return i, true
		}
	}

	if i, ok := shortest(norm, func(l string) bool { return strings.HasPrefix(l, want) }); ok {
		return i, true
	}
	words := strings.Fields(want)
	return shortest(norm, func(l string) bool {
		have := strings.Fields(l)
		for _, w := range words {
			if !containsWord(have, w) {
				return false
			}
		}
		return true
	})
}

// shortest returns the matching label with the fewest words. It fails when
// nothing matches or when two candidates tie.
func shortest(labels []string, pred func(string) bool) (int, bool) {
	found, size, tie := -1, 0, false
	for i, l := range labels {
		if !pred(l) {
			continue
		}
		n := len(strings.Fields(l))
		switch {
		case found < 0 || n < size:
			found, size, tie = i, n, false
		case n == size:
			tie = true
		}
	}
	return found, found >= 0 && !tie
}

func containsWord(words []string, w string) bool {
	for _, cur := range words {
		if cur == w {
			return true
		}
	}
	return false
}
