package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDragCoordinator_Transitions(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	require.Equal(t, DragIdle, d.Session().Phase())

	d.Hover("a")
	require.Equal(t, DragIdle, d.Session().Phase(), "hover without a drag is ignored")

	d.Start("c")
	require.Equal(t, DragDragging, d.Session().Phase())
	require.Equal(t, "c", d.ActiveID())
	require.Empty(t, d.OverID())

	d.Hover("a")
	require.Equal(t, DragHovering, d.Session().Phase())
	require.Equal(t, "a", d.OverID())
	require.True(t, d.IsDropTarget("a"))
	require.False(t, d.IsDropTarget("c"))

	d.Hover("c")
	require.Equal(t, DragDragging, d.Session().Phase(), "hovering the dragged column clears the target")
	require.Empty(t, d.OverID())

	d.Hover("b")
	d.Hover("")
	require.Equal(t, DragDragging, d.Session().Phase())
}

func TestDragCoordinator_EndMovesMiddleColumn(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	order := []string{"select", "a", "b", "c", "row-actions"}

	d.Start("c")
	d.Hover("a")
	got, moved := d.End(order)

	require.True(t, moved)
	require.Equal(t, []string{"select", "c", "a", "b", "row-actions"}, got)
	require.Equal(t, DragIdle, d.Session().Phase())
}

func TestDragCoordinator_LockedDragRecordedButRejected(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	order := []string{"select", "a", "b", "row-actions"}

	d.Start("select")
	require.Equal(t, "select", d.ActiveID())
	d.Hover("b")
	require.Equal(t, DragHovering, d.Session().Phase())

	got, moved := d.End(order)
	require.False(t, moved)
	require.Equal(t, order, got)
	require.Equal(t, DragIdle, d.Session().Phase())
}

func TestDragCoordinator_DropOnLockedTargetRejected(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	order := []string{"select", "a", "b", "row-actions"}

	d.Start("a")
	d.Hover("row-actions")
	got, moved := d.End(order)
	require.False(t, moved)
	require.Equal(t, order, got)
}

func TestDragCoordinator_EndWithoutTarget(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	order := []string{"a", "b"}
	d.Start("a")
	got, moved := d.End(order)
	require.False(t, moved)
	require.Equal(t, order, got)
}

func TestDragCoordinator_CancelNeverReorders(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	d.Start("a")
	d.Hover("b")
	d.Cancel()
	require.Equal(t, DragIdle, d.Session().Phase())
	require.Empty(t, d.ActiveID())
	require.Empty(t, d.OverID())

	got, moved := d.End([]string{"a", "b"})
	require.False(t, moved)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestDragCoordinator_ColumnRemovedMidDrag(t *testing.T) {
	d := NewDragCoordinator(DefaultLocks())
	d.Start("gone")
	d.Hover("a")
	got, moved := d.End([]string{"a", "b"})
	require.False(t, moved)
	require.Equal(t, []string{"a", "b"}, got)
}
