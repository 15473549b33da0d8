// Package widgets provides the widget kit: primitive render nodes, implicit
// animation wrappers, and the expandable floating action button built from
// them.
//
// Primitive widgets (Icon, DecoratedBox, Opacity, Transform, Stack, ...)
// are configuration for the host renderer and have no Build step. Composite
// widgets ([FabButton], [ExpandableFab]) assemble primitives in Build the
// way application code would.
package widgets
