package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFenceConflicts(t *testing.T) {
	h := func(row, col int) Fence { return Fence{Edge: Edge{Row: row, Col: col}, Orientation: Horizontal} }
	v := func(row, col int) Fence { return Fence{Edge: Edge{Row: row, Col: col}, Orientation: Vertical} }

	for _, tc := range []struct {
		name string
		a, b Fence
		want bool
	}{
		{"same fence", h(2, 2), h(2, 2), true},
		{"crossing at the center", h(2, 2), v(2, 2), true},
		{"overlapping horizontally", h(2, 2), h(2, 3), true},
		{"overlapping vertically", v(2, 2), v(3, 2), true},
		{"touching end to end", h(2, 2), h(2, 4), false},
		{"parallel rows", h(2, 2), h(3, 2), false},
		{"parallel columns", v(2, 2), v(2, 3), false},
		{"perpendicular off center", h(2, 2), v(2, 3), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Conflicts(tc.b))
			require.Equal(t, tc.want, tc.b.Conflicts(tc.a), "Conflicts should be symmetric")
		})
	}
}
