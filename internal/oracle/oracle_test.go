package oracle

import "testing"

func Test_EmptyTable(t *testing.T) {
	tab := New(100)
	if u := tab.Universe(); u != 100 {
		t.Errorf("tab.Universe() is not 100 as expected, instead: %v", u)
	}
	if tab.Has(0) {
		t.Error("tab.Has(0) returned true on an empty table")
	}
	if tab.Has(99) {
		t.Error("tab.Has(99) returned true on an empty table")
	}
	if n := tab.Len(); n != 0 {
		t.Errorf("tab.Len() is not 0 as expected, instead: %v", n)
	}
	if m := tab.Min(); m != None {
		t.Errorf("tab.Min() is not None as expected, instead: %v", m)
	}
	if m := tab.Max(); m != None {
		t.Errorf("tab.Max() is not None as expected, instead: %v", m)
	}
	if s := tab.Successor(None); s != None {
		t.Errorf("tab.Successor(None) is not None as expected, instead: %v", s)
	}
}

func Test_TableAddDel(t *testing.T) {
	tab := New(200)

	// add 0, 63, 64 and 199 to cover the word boundaries
	for _, x := range []int{0, 63, 64, 199} {
		tab.Add(x)
		if !tab.Has(x) {
			t.Errorf("tab.Has(%v) returned false after Add", x)
		}
	}
	if n := tab.Len(); n != 4 {
		t.Errorf("tab.Len() is not 4 as expected, instead: %v", n)
	}
	if tab.Has(1) {
		t.Error("tab.Has(1) returned true")
	}
	if tab.Has(65) {
		t.Error("tab.Has(65) returned true")
	}

	// adding again must not change anything
	tab.Add(63)
	if n := tab.Len(); n != 4 {
		t.Errorf("tab.Len() is not 4 after a repeated Add, instead: %v", n)
	}

	tab.Del(63)
	if tab.Has(63) {
		t.Error("tab.Has(63) returned true after Del")
	}
	if n := tab.Len(); n != 3 {
		t.Errorf("tab.Len() is not 3 as expected, instead: %v", n)
	}

	// deleting a non-member must not change anything
	tab.Del(63)
	if n := tab.Len(); n != 3 {
		t.Errorf("tab.Len() is not 3 after a repeated Del, instead: %v", n)
	}
}

func Test_TableSuccessor(t *testing.T) {
	tab := New(300)
	for _, x := range []int{5, 64, 65, 255} {
		tab.Add(x)
	}

	cases := [][2]int{
		{None, 5},
		{0, 5},
		{4, 5},
		{5, 64},
		{63, 64},
		{64, 65},
		{65, 255},
		{254, 255},
		{255, None},
		{299, None},
	}
	for _, c := range cases {
		if s := tab.Successor(c[0]); s != c[1] {
			t.Errorf("tab.Successor(%v) is not %v as expected, instead: %v", c[0], c[1], s)
		}
	}

	if m := tab.Min(); m != 5 {
		t.Errorf("tab.Min() is not 5 as expected, instead: %v", m)
	}
	if m := tab.Max(); m != 255 {
		t.Errorf("tab.Max() is not 255 as expected, instead: %v", m)
	}
}
