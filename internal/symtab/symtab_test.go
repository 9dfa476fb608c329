package symtab

import "testing"

func TestInsertUser_DuplicateNameFails(t *testing.T) {
	table := New()
	if err := table.InsertUser(NewScalar("x")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := table.InsertUser(NewScalar("x"))
	if _, ok := err.(*ErrAlreadyDeclared); !ok {
		t.Fatalf("err = %T, want *ErrAlreadyDeclared", err)
	}
}

func TestLookup_UndeclaredNameFails(t *testing.T) {
	table := New()
	_, err := table.Lookup("missing")
	if _, ok := err.(*ErrNotDeclared); !ok {
		t.Fatalf("err = %T, want *ErrNotDeclared", err)
	}
}

func TestInsertTemp_ReturnsStoredVariable(t *testing.T) {
	table := New()
	v, err := table.InsertTemp(NewMatrix("_E4_1", 2, 3))
	if err != nil {
		t.Fatalf("InsertTemp: %v", err)
	}
	if v.Kind != Matrix || v.Rows != 2 || v.Cols != 3 {
		t.Fatalf("got %+v", v)
	}
	got, err := table.Lookup("_E4_1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != v {
		t.Fatalf("Lookup = %+v, want %+v", got, v)
	}
}

func TestNames_NaturalSortOrder(t *testing.T) {
	table := New()
	for _, name := range []string{"_E4_10", "_E4_2", "_E4_1"} {
		if _, err := table.InsertTemp(mustTemp(name)); err != nil {
			t.Fatalf("InsertTemp(%s): %v", name, err)
		}
	}
	got := table.Names()
	want := []string{"_E4_1", "_E4_2", "_E4_10"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func mustTemp(name string) Variable {
	return NewScalar(name)
}
