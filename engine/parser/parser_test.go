package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VicenteCartas/megameklab/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Command{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Command{},
		},

		// Basic verbs
		{
			name:  "bare verb",
			input: "status",
			want:  types.Command{Verb: "status", Args: []string{}},
		},
		{
			name:  "verb with value",
			input: "tonnage 50",
			want:  types.Command{Verb: "tonnage", Args: []string{"50"}},
		},
		{
			name:  "verb is lowercased",
			input: "GYRO Compact",
			want:  types.Command{Verb: "gyro", Args: []string{"Compact"}},
		},
		{
			name:  "args keep their case",
			input: "chassis Atlas",
			want:  types.Command{Verb: "chassis", Args: []string{"Atlas"}},
		},

		// Aliases
		{
			name:  "t → tonnage",
			input: "t 75",
			want:  types.Command{Verb: "tonnage", Args: []string{"75"}},
		},
		{
			name:  "myomer → enhancement",
			input: "myomer tsm",
			want:  types.Command{Verb: "enhancement", Args: []string{"tsm"}},
		},
		{
			name:  "armour → armor",
			input: "armour ct 20 rear",
			want:  types.Command{Verb: "armor", Args: []string{"ct", "20", "rear"}},
		},
		{
			name:  "variant → model",
			input: "variant AS7-D",
			want:  types.Command{Verb: "model", Args: []string{"AS7-D"}},
		},

		// Multi-word verbs
		{
			name:  "set prefix",
			input: "set tonnage 40",
			want:  types.Command{Verb: "tonnage", Args: []string{"40"}},
		},
		{
			name:  "base type",
			input: "base type LAM",
			want:  types.Command{Verb: "type", Args: []string{"LAM"}},
		},
		{
			name:  "motive type",
			input: "motive type quad",
			want:  types.Command{Verb: "motive", Args: []string{"quad"}},
		},
		{
			name:  "internal structure",
			input: "internal structure endo steel",
			want:  types.Command{Verb: "structure", Args: []string{"endo", "steel"}},
		},
		{
			name:  "full head eject",
			input: "full head eject off",
			want:  types.Command{Verb: "eject", Args: []string{"off"}},
		},
		{
			name:  "head ejection",
			input: "head ejection",
			want:  types.Command{Verb: "eject", Args: []string{}},
		},
		{
			name:  "reset chassis",
			input: "reset chassis",
			want:  types.Command{Verb: "reset", Args: []string{}},
		},
		{
			name:  "engine rating",
			input: "engine rating 300",
			want:  types.Command{Verb: "rating", Args: []string{"300"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		args   []string
		want   bool
		wantOK bool
	}{
		{nil, true, true},
		{[]string{"on"}, true, true},
		{[]string{"YES"}, true, true},
		{[]string{"off"}, false, true},
		{[]string{"0"}, false, true},
		{[]string{"maybe"}, false, false},
	}
	for _, tt := range tests {
		got, ok := Toggle(tt.args)
		assert.Equal(t, tt.want, got, "%v", tt.args)
		assert.Equal(t, tt.wantOK, ok, "%v", tt.args)
	}
}

func TestMatch(t *testing.T) {
	structures := []string{"Standard", "IS Endo Steel", "IS Endo Steel Prototype", "IS Composite"}
	engines := []string{"Fusion", "XL (IS)", "XL (Clan)", "XXL (IS)", "Light (IS)"}

	tests := []struct {
		name   string
		text   string
		labels []string
		want   int
		wantOK bool
	}{
		{"exact", "standard", structures, 0, true},
		{"punctuation folded", "is endo-steel", structures, 1, true},
		{"fewest words wins", "endo steel", structures, 1, true},
		{"longer label by its extra word", "prototype", structures, 2, true},
		{"partial word", "comp", structures, 0, false},
		{"word match", "composite", structures, 3, true},
		{"ambiguous tie", "xl", engines, 0, false},
		{"disambiguated", "xl clan", engines, 2, true},
		{"prefix unique", "xxl", engines, 3, true},
		{"no match", "primitive", structures, 0, false},
		{"empty", "  ", structures, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.text, tt.labels)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
