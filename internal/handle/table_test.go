package handle

import (
	"errors"
	"testing"
)

func TestTableLifecycle(t *testing.T) {
	tbl := NewTable[string]()

	a := tbl.Add("a")
	b := tbl.Add("b")
	if a <= 0 || b <= 0 || a == b {
		t.Fatalf("handles = %d, %d, want distinct positive values", a, b)
	}

	if v, err := tbl.Get(a); err != nil || v != "a" {
		t.Errorf("Get(%d) = %q, %v, want \"a\", nil", a, v, err)
	}

	if err := tbl.Set(b, "bb"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := tbl.Get(b); v != "bb" {
		t.Errorf("Get(%d) after Set = %q, want \"bb\"", b, v)
	}

	if _, err := tbl.Delete(a); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := tbl.Get(a); !errors.Is(err, ErrInvalid) {
		t.Errorf("Get(deleted) err = %v, want ErrInvalid", err)
	}
	if _, err := tbl.Delete(a); !errors.Is(err, ErrInvalid) {
		t.Errorf("Delete(deleted) err = %v, want ErrInvalid", err)
	}

	c := tbl.Add("c")
	if c == a {
		t.Errorf("deleted handle %d was reused", a)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tbl.Len())
	}
}

func TestTableInvalidHandles(t *testing.T) {
	tbl := NewTable[int]()
	tbl.Add(1)

	for _, h := range []int{0, -1, 42} {
		if _, err := tbl.Get(h); !errors.Is(err, ErrInvalid) {
			t.Errorf("Get(%d) err = %v, want ErrInvalid", h, err)
		}
		if err := tbl.Set(h, 7); !errors.Is(err, ErrInvalid) {
			t.Errorf("Set(%d) err = %v, want ErrInvalid", h, err)
		}
	}
}

func TestTableClear(t *testing.T) {
	tbl := NewTable[int]()
	h := tbl.Add(10)
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", tbl.Len())
	}
	if _, err := tbl.Get(h); !errors.Is(err, ErrInvalid) {
		t.Errorf("Get after Clear err = %v, want ErrInvalid", err)
	}
	if next := tbl.Add(11); next == h {
		t.Errorf("handle %d reused after Clear", h)
	}
}
