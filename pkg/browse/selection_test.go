package browse

import "testing"

func listRows() []Row {
	return []Row{
		{Role: RoleHeader, Text: "Name"},
		{Role: RoleSeparator, Text: "----"},
		{Role: RoleEntry, ID: "a"},
		{Role: RoleEntry, ID: "b"},
		{Role: RoleEntry, ID: "c"},
	}
}

func TestMoveSelectionSkipsDecorativeRows(t *testing.T) {
	rows := listRows()
	tests := []struct {
		name  string
		start int
		dir   Direction
		want  int
	}{
		{"next from first entry", 2, Next, 3},
		{"next wraps past header", 4, Next, 2},
		{"previous wraps to last entry", 2, Previous, 4},
		{"previous within entries", 4, Previous, 3},
		{"next from header lands on entry", 0, Next, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveSelection(rows, tt.start, tt.dir); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMoveSelectionNoSelectableRows(t *testing.T) {
	rows := []Row{
		{Role: RoleHeader, Text: "No resources found"},
	}
	if got := MoveSelection(rows, 0, Next); got != 0 {
		t.Errorf("expected index unchanged, got %d", got)
	}
	if got := MoveSelection(nil, 0, Previous); got != 0 {
		t.Errorf("expected index unchanged on empty list, got %d", got)
	}
}

func TestMoveSelectionSingleEntry(t *testing.T) {
	rows := []Row{
		{Role: RoleHeader},
		{Role: RoleSeparator},
		{Role: RoleEntry, ID: "only"},
	}
	for _, dir := range []Direction{Next, Previous} {
		if got := MoveSelection(rows, 2, dir); got != 2 {
			t.Errorf("expected single entry to stay selected, got %d", got)
		}
	}
}

func TestFirstSelectable(t *testing.T) {
	if got := FirstSelectable(listRows()); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := FirstSelectable([]Row{{Role: RoleHeader}}); got != 0 {
		t.Errorf("expected fallback 0, got %d", got)
	}
}
