package service

import (
	"reflect"
	"testing"
)

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"commas", "Python, SQL, Docker", []string{"python", "sql", "docker"}},
		{"mixed separators", "Go;Rust/Kotlin\nSwift", []string{"go", "rust", "kotlin", "swift"}},
		{"whitespace and empties", "  Python ,, ;  , sql  ", []string{"python", "sql"}},
		{"only separators", ",;/\n", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSkills(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitSkills(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDedupeSkillsCollapsesCaseVariants(t *testing.T) {
	got := DedupeSkills(SplitSkills("Python, python; PYTHON"))
	if len(got) != 1 || got[0] != "python" {
		t.Fatalf("expected single normalized entry, got %v", got)
	}
}

func TestDedupeSkillsMergesListsInOrder(t *testing.T) {
	got := DedupeSkills([]string{"go", "sql"}, []string{"sql", "docker", ""})
	want := []string{"go", "sql", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DedupeSkills = %v, want %v", got, want)
	}
}
