package variable

import "testing"

func TestWireDataConstructors(t *testing.T) {
	cases := []struct {
		w    WireData
		kind Kind
		idx  int
	}{
		{MakeLeft(3), Left, 3},
		{MakeRight(5), Right, 5},
		{MakeOutput(7), Output, 7},
		{MakeFourth(9), Fourth, 9},
	}
	for _, c := range cases {
		if c.w.Kind != c.kind || c.w.Index != c.idx {
			t.Fatalf("got %+v, want Kind=%v Index=%d", c.w, c.kind, c.idx)
		}
	}
}

func TestWireDataEquality(t *testing.T) {
	if MakeLeft(2) != MakeLeft(2) {
		t.Fatal("expected equal WireData values to compare equal")
	}
	if MakeLeft(2) == MakeRight(2) {
		t.Fatal("expected different kinds at the same index to differ")
	}
}

func TestVariableString(t *testing.T) {
	if got, want := Variable(42).String(), "42"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{Left: "L", Right: "R", Output: "O", Fourth: "4"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
