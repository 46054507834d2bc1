package tokenize

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "basic lowercase split",
			in:   "Red Shoes",
			want: []string{"red", "shoes"},
		},
		{
			name: "punctuation replaced by space",
			in:   "blue-shoes, size:42",
			want: []string{"blue", "shoes", "size", "42"},
		},
		{
			name: "single char tokens dropped",
			in:   "a b cd e 1 23",
			want: []string{"cd", "23"},
		},
		{
			name: "accented latin kept",
			in:   "Café Crème",
			want: []string{"café", "crème"},
		},
		{
			name: "apostrophe kept",
			in:   "men's watch",
			want: []string{"men's", "watch"},
		},
		{
			name: "price tokens",
			in:   "50.00",
			want: []string{"50", "00"},
		},
		{
			name: "whitespace runs collapse",
			in:   "  red \t\n shoes  ",
			want: []string{"red", "shoes"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "only noise",
			in:   "!@# $%^ &",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	in := "Chaussures Été 2024 — édition limitée"
	first := Tokenize(in)
	for i := 0; i < 10; i++ {
		if got := Tokenize(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize not deterministic: %v vs %v", got, first)
		}
	}
}
