// Package ui holds shared building blocks for the view components.
package ui

// Base provides common size bookkeeping for view models. Embed it in a
// component model to get the standard size methods.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}
