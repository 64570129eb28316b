// Package layout computes window geometry from a flattened stack
// order. The first window in the order is the main window; layouts
// know nothing about focus or window identity.
package layout

import (
	"fmt"
	"math"
)

// Rect represents a window position and size.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MainStack places the first window in a main column sized by
// ratioPercent of the region width and stacks the remaining windows in
// the other column. A single window gets the whole region.
func MainStack(numWindows int, region Rect, ratioPercent, gapSize int) ([]Rect, error) {
	if numWindows == 0 {
		return nil, nil
	}
	if ratioPercent < 10 || ratioPercent > 90 {
		return nil, fmt.Errorf("main ratio must be between 10 and 90 percent, got %d", ratioPercent)
	}

	if numWindows == 1 {
		return []Rect{inset(region, gapSize)}, nil
	}

	mainWidth := (region.Width * ratioPercent / 100) - gapSize - gapSize/2
	stackX := region.X + gapSize + mainWidth + gapSize
	stackWidth := region.X + region.Width - gapSize - stackX
	height := region.Height - 2*gapSize

	stackCount := numWindows - 1
	cellHeight := (height - (stackCount-1)*gapSize) / stackCount

	if mainWidth <= 0 || stackWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf(
			"insufficient space for main-stack layout: region=%dx%d windows=%d gap=%d",
			region.Width, region.Height, numWindows, gapSize,
		)
	}

	positions := make([]Rect, numWindows)
	positions[0] = Rect{
		X:      region.X + gapSize,
		Y:      region.Y + gapSize,
		Width:  mainWidth,
		Height: height,
	}

	for i := 0; i < stackCount; i++ {
		positions[i+1] = Rect{
			X:      stackX,
			Y:      region.Y + gapSize + i*(cellHeight+gapSize),
			Width:  stackWidth,
			Height: cellHeight,
		}
	}

	return positions, nil
}

// Grid arranges windows in a near-square grid with gaps.
func Grid(numWindows int, region Rect, gapSize int) ([]Rect, error) {
	if numWindows == 0 {
		return nil, nil
	}

	// Columns first (ceiling of square root), then the rows needed.
	cols := int(math.Ceil(math.Sqrt(float64(numWindows))))
	rows := int(math.Ceil(float64(numWindows) / float64(cols)))

	totalHorizontalGaps := (cols + 1) * gapSize
	totalVerticalGaps := (rows + 1) * gapSize

	cellWidth := (region.Width - totalHorizontalGaps) / cols
	cellHeight := (region.Height - totalVerticalGaps) / rows

	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf(
			"insufficient space for grid layout: region=%dx%d rows=%d cols=%d gap=%d",
			region.Width, region.Height, rows, cols, gapSize,
		)
	}

	positions := make([]Rect, numWindows)
	for i := 0; i < numWindows; i++ {
		row := i / cols
		col := i % cols

		positions[i] = Rect{
			X:      region.X + gapSize + col*(cellWidth+gapSize),
			Y:      region.Y + gapSize + row*(cellHeight+gapSize),
			Width:  cellWidth,
			Height: cellHeight,
		}
	}

	return positions, nil
}

// Monocle gives every window the full region; the caller is expected
// to raise the focused window above the rest.
func Monocle(numWindows int, region Rect) ([]Rect, error) {
	if numWindows == 0 {
		return nil, nil
	}

	positions := make([]Rect, numWindows)
	for i := range positions {
		positions[i] = region
	}
	return positions, nil
}

// Apply dispatches to the named layout.
func Apply(name string, numWindows int, region Rect, ratioPercent, gapSize int) ([]Rect, error) {
	switch name {
	case "main_stack":
		return MainStack(numWindows, region, ratioPercent, gapSize)
	case "grid":
		return Grid(numWindows, region, gapSize)
	case "monocle":
		return Monocle(numWindows, region)
	default:
		return nil, fmt.Errorf("unsupported layout: %q", name)
	}
}

// Names lists the layouts Apply understands.
func Names() []string {
	return []string{"main_stack", "grid", "monocle"}
}

func inset(r Rect, gap int) Rect {
	return Rect{
		X:      r.X + gap,
		Y:      r.Y + gap,
		Width:  r.Width - 2*gap,
		Height: r.Height - 2*gap,
	}
}
