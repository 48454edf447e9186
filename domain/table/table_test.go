package table

import "testing"

func TestAppendTrimsCells(t *testing.T) {
	tbl := New("a", "b")
	tbl.Append(Row{"a": " x ", "b": "y"})

	if got := tbl.Rows[0].Get("a"); got != "x" {
		t.Errorf("Get(a) = %q, want trimmed value", got)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestHasColumn(t *testing.T) {
	tbl := New("code", "role")
	if !tbl.HasColumn("role") {
		t.Error("expected role column")
	}
	if tbl.HasColumn("cost") {
		t.Error("cost should not be present")
	}
}

func TestGetMissingColumn(t *testing.T) {
	tbl := New("a")
	tbl.Append(Row{"a": "1"})
	if got := tbl.Rows[0].Get("nope"); got != "" {
		t.Errorf("missing column should read empty, got %q", got)
	}
}
