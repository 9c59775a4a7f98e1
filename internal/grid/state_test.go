package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdate_Apply(t *testing.T) {
	require.Equal(t, 5, Set(5).Apply(1))
	require.Equal(t, 2, Transform(func(prev int) int { return prev + 1 }).Apply(1))
}

func TestValue_Uncontrolled(t *testing.T) {
	v := NewValue([]string{})
	var seen [][]string
	v.Resolve(Internal[[]string](), func(next []string) { seen = append(seen, next) })

	v.Apply(Set([]string{"dept"}))
	require.False(t, v.Controlled())
	require.Equal(t, []string{"dept"}, v.Get())
	require.Equal(t, [][]string{{"dept"}}, seen, "callback fires for observability")
}

func TestValue_ControlledRendersExternalButTracksInternal(t *testing.T) {
	v := NewValue(0)
	var seen []int
	v.Resolve(External(10), func(next int) { seen = append(seen, next) })

	next := v.Apply(Transform(func(prev int) int { return prev + 1 }))
	require.Equal(t, 11, next, "computed from the external value")
	require.Equal(t, 10, v.Get(), "external value stays authoritative")
	require.Equal(t, 11, v.Internal())
	require.Equal(t, []int{11}, seen)

	// Caller stops controlling: last internal value wins, not the zero value.
	v.Resolve(Internal[int](), nil)
	require.Equal(t, 11, v.Get())
}

func TestSelectionController_SkipsUnchangedAndDropsUnknownRows(t *testing.T) {
	c := NewSelectionController()
	var calls int
	var gotRows []Row
	c.Resolve(Internal[Selection](), func(_ Selection, rows []Row) {
		calls++
		gotRows = rows
	})
	lookup := func(id string) (Row, bool) {
		if id == "missing" {
			return Row{}, false
		}
		return Row{ID: id}, true
	}

	c.Apply(Set(Selection{"a": true, "missing": true, "b": false}), lookup)
	require.Equal(t, 1, calls)
	require.Equal(t, Selection{"a": true, "missing": true}, c.Get())
	require.Equal(t, []Row{{ID: "a"}}, gotRows)

	// Same set (false entries are noise): no second notification.
	c.Apply(Set(Selection{"a": true, "missing": true, "zzz": false}), lookup)
	require.Equal(t, 1, calls)
}

func TestSelectionController_ControlledFallsBackToLastInternal(t *testing.T) {
	c := NewSelectionController()
	var published []Selection
	onChange := func(s Selection, _ []Row) { published = append(published, s) }

	c.Resolve(External(Selection{"x": true}), onChange)
	c.Apply(Transform(func(prev Selection) Selection {
		next := Selection{"y": true}
		for k, v := range prev {
			next[k] = v
		}
		return next
	}), nil)

	require.Equal(t, Selection{"x": true}, c.Get(), "rendered value is the caller's")
	require.Equal(t, []Selection{{"x": true, "y": true}}, published)

	c.Resolve(Internal[Selection](), onChange)
	require.Equal(t, Selection{"x": true, "y": true}, c.Get())
}
