package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/listview"
)

func TestParseSortExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    listview.SortState
		wantErr error
	}{
		{
			name: "bare field sorts ascending",
			expr: "wins",
			want: listview.SortState{Key: "wins", Direction: listview.SortAsc},
		},
		{
			name: "explicit ascending",
			expr: "name:asc",
			want: listview.SortState{Key: "name", Direction: listview.SortAsc},
		},
		{
			name: "explicit descending",
			expr: "wins:desc",
			want: listview.SortState{Key: "wins", Direction: listview.SortDesc},
		},
		{
			name: "order is case-insensitive",
			expr: "wins:DESC",
			want: listview.SortState{Key: "wins", Direction: listview.SortDesc},
		},
		{
			name: "whitespace is trimmed",
			expr: " wins : desc ",
			want: listview.SortState{Key: "wins", Direction: listview.SortDesc},
		},
		{
			name:    "empty expression",
			expr:    "   ",
			wantErr: ErrEmptySortExpression,
		},
		{
			name:    "missing field",
			expr:    ":desc",
			wantErr: ErrEmptySortExpression,
		},
		{
			name:    "too many parts",
			expr:    "wins:desc:extra",
			wantErr: ErrInvalidSortFormat,
		},
		{
			name:    "unknown order",
			expr:    "wins:upward",
			wantErr: ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortExpression(tt.expr)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSort(t *testing.T) {
	columns := league.TeamColumns()

	t.Run("empty expression means no sort", func(t *testing.T) {
		state, err := resolveSort("", columns)
		require.NoError(t, err)
		assert.False(t, state.IsSorted())
	})

	t.Run("valid field passes through", func(t *testing.T) {
		state, err := resolveSort("wins:desc", columns)
		require.NoError(t, err)
		assert.Equal(t, "wins", state.Key)
		assert.Equal(t, listview.SortDesc, state.Direction)
	})

	t.Run("unknown field lists the valid keys", func(t *testing.T) {
		_, err := resolveSort("goals", columns)
		require.ErrorIs(t, err, ErrInvalidSortField)
		assert.Contains(t, err.Error(), `"goals"`)
		assert.Contains(t, err.Error(), "name, city, division")
	})

	t.Run("unsortable column is rejected", func(t *testing.T) {
		cols := []listview.Column{
			listview.NewColumn("name", "NAME"),
			listview.NewColumn("notes", "NOTES").NoSort(),
		}
		_, err := resolveSort("notes", cols)
		require.ErrorIs(t, err, ErrInvalidSortField)
	})

	t.Run("parse errors propagate", func(t *testing.T) {
		_, err := resolveSort("wins:sideways", columns)
		require.ErrorIs(t, err, ErrInvalidSortOrder)
	})
}

func TestSortableKeys(t *testing.T) {
	cols := []listview.Column{
		listview.NewColumn("name", "NAME"),
		listview.NewColumn("notes", "NOTES").NoSort(),
		listview.NewColumn("wins", "W"),
	}

	assert.Equal(t, []string{"name", "wins"}, sortableKeys(cols))
}
