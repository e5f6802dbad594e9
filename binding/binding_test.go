package binding

import (
	"encoding/json"
	"testing"
)

func TestExpandFrontMatterValues(t *testing.T) {
	s := NewScope(map[string]any{
		"title":    "Report",
		"keywords": []any{"a", "b"},
	}, nil)
	cases := map[string]string{
		"${title}":             "Report",
		"Title: ${ title }!":   "Title: Report!",
		"${keywords}":          "a, b",
		"${keywords[1]}":       "b",
		"${missing}":           "${missing}",
		"${keywords[9]}":       "${keywords[9]}",
		"no placeholders here": "no placeholders here",
		"${}":                  "${}",
	}
	for in, want := range cases {
		if got := s.Expand(in); got != want {
			t.Errorf("Expand(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandJSONData(t *testing.T) {
	var data any
	if err := json.Unmarshal([]byte(`{"user":{"name":"Ada","scores":[1.5,2]},"n":3}`), &data); err != nil {
		t.Fatal(err)
	}
	s := NewScope(nil, data)
	if got := s.Expand("Hi ${data.user.name}, ${data.user.scores[0]} / ${data.n}"); got != "Hi Ada, 1.5 / 3" {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if v, ok := s.Lookup("data.user.scores[1]"); !ok || v.(float64) != 2 {
		t.Fatalf("Lookup returned %v %v", v, ok)
	}
}

func TestEmptyScopeLeavesTextAlone(t *testing.T) {
	s := NewScope(nil, nil)
	if !s.Empty() {
		t.Fatal("scope should be empty")
	}
	if got := s.Expand("${title}"); got != "${title}" {
		t.Fatalf("got %q", got)
	}
}
