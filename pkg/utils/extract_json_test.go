package utils

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		var out []map[string]any
		err := ExtractJSON(`[{"a": 1}, {"a": 2}]`, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 elements, got %d", len(out))
		}
	})

	t.Run("fenced array", func(t *testing.T) {
		raw := "```json\n[{\"question\": \"Q1\"}]\n```"
		var out []map[string]any
		if err := ExtractJSON(raw, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0]["question"] != "Q1" {
			t.Fatalf("expected question Q1, got %v", out[0]["question"])
		}
	})

	t.Run("fence without language tag", func(t *testing.T) {
		raw := "```\n[1, 2, 3]\n```"
		var out []int
		if err := ExtractJSON(raw, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 elements, got %d", len(out))
		}
	})

	t.Run("array embedded in prose", func(t *testing.T) {
		raw := `Here are the results you asked for:

[{"title": "one"}, {"title": "two"}]

Let me know if you need anything else.`
		var out []map[string]any
		if err := ExtractJSON(raw, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 elements, got %d", len(out))
		}
	})

	t.Run("object into struct", func(t *testing.T) {
		var out struct {
			Root struct {
				Title string `json:"title"`
			} `json:"root"`
		}
		raw := "Sure! ```json\n{\"root\": {\"title\": \"Start\"}}\n```"
		if err := ExtractJSON(raw, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Root.Title != "Start" {
			t.Fatalf("expected root title Start, got %q", out.Root.Title)
		}
	})

	t.Run("object rejected by array target", func(t *testing.T) {
		var out []map[string]any
		if err := ExtractJSON(`{"a": 1}`, &out); err == nil {
			t.Fatal("expected error decoding object into slice")
		}
	})

	t.Run("no JSON at all", func(t *testing.T) {
		var out []map[string]any
		if err := ExtractJSON("I could not generate anything today.", &out); err == nil {
			t.Fatal("expected error for plain prose")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		var out []map[string]any
		if err := ExtractJSON("", &out); err == nil {
			t.Fatal("expected error for empty input")
		}
	})
}

func TestCoerceString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"nil", nil, ""},
		{"number", float64(42), "42"},
		{"fractional number", 1.5, "1.5"},
		{"bool", true, "true"},
		{"object", map[string]any{"a": 1}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceString(tc.in); got != tc.want {
				t.Fatalf("CoerceString(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 87.5, 87.5},
		{"numeric string", "92", 92},
		{"padded numeric string", " 70 ", 70},
		{"non-numeric string", "high", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CoerceFloat(tc.in); got != tc.want {
				t.Fatalf("CoerceFloat(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCoerceStrings(t *testing.T) {
	t.Run("mixed array", func(t *testing.T) {
		got := CoerceStrings([]any{"a", float64(1), nil})
		if len(got) != 3 || got[0] != "a" || got[1] != "1" || got[2] != "" {
			t.Fatalf("unexpected result: %v", got)
		}
	})

	t.Run("non-array", func(t *testing.T) {
		got := CoerceStrings("not an array")
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty list, got %v", got)
		}
	})
}
