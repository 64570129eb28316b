package layout

import "testing"

func TestMainStackSingleWindowFillsRegion(t *testing.T) {
	region := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	positions, err := MainStack(1, region, 60, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}

	want := Rect{X: 10, Y: 10, Width: 1900, Height: 1060}
	if positions[0] != want {
		t.Fatalf("expected %+v, got %+v", want, positions[0])
	}
}

func TestMainStackSplitsColumns(t *testing.T) {
	region := Rect{X: 0, Y: 0, Width: 1000, Height: 500}

	positions, err := MainStack(3, region, 60, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 3 {
		t.Fatalf("expected 3 positions, got %d", len(positions))
	}

	// mainWidth = 600 - 10 - 5 = 585, stack starts at 10+585+10 = 605,
	// stackWidth = 1000 - 10 - 605 = 385, two cells of (480-10)/2 = 235.
	main := positions[0]
	if main.X != 10 || main.Width != 585 || main.Height != 480 {
		t.Fatalf("unexpected main geometry: %+v", main)
	}
	for i, p := range positions[1:] {
		if p.X != 605 || p.Width != 385 || p.Height != 235 {
			t.Fatalf("unexpected stack cell %d: %+v", i, p)
		}
	}
	if positions[1].Y != 10 || positions[2].Y != 255 {
		t.Fatalf("unexpected stack Y positions: %+v", positions[1:])
	}
}

func TestMainStackRejectsBadRatio(t *testing.T) {
	region := Rect{X: 0, Y: 0, Width: 1000, Height: 500}

	if _, err := MainStack(2, region, 5, 10); err == nil {
		t.Fatalf("expected error for ratio below 10")
	}
	if _, err := MainStack(2, region, 95, 10); err == nil {
		t.Fatalf("expected error for ratio above 90")
	}
}

func TestMainStackErrorsWhenInsufficientSpace(t *testing.T) {
	region := Rect{X: 0, Y: 0, Width: 40, Height: 20}

	if _, err := MainStack(3, region, 60, 20); err == nil {
		t.Fatalf("expected error for insufficient space")
	}
}

func TestGridDimensions(t *testing.T) {
	region := Rect{X: 0, Y: 0, Width: 430, Height: 430}

	positions, err := Grid(4, region, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(positions))
	}

	// 2x2 grid: 3 gaps of 10 each way, cells of (430-30)/2 = 200.
	want := []Rect{
		{X: 10, Y: 10, Width: 200, Height: 200},
		{X: 220, Y: 10, Width: 200, Height: 200},
		{X: 10, Y: 220, Width: 200, Height: 200},
		{X: 220, Y: 220, Width: 200, Height: 200},
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("cell %d: expected %+v, got %+v", i, want[i], positions[i])
		}
	}
}

func TestMonocleGivesEveryWindowTheRegion(t *testing.T) {
	region := Rect{X: 5, Y: 5, Width: 100, Height: 100}

	positions, err := Monocle(3, region)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range positions {
		if p != region {
			t.Fatalf("window %d: expected %+v, got %+v", i, region, p)
		}
	}
}

func TestApplyUnknownLayout(t *testing.T) {
	if _, err := Apply("spiral", 2, Rect{Width: 100, Height: 100}, 60, 0); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
}

func TestZeroWindowsYieldNoPositions(t *testing.T) {
	for _, name := range Names() {
		positions, err := Apply(name, 0, Rect{Width: 100, Height: 100}, 60, 10)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if positions != nil {
			t.Fatalf("%s: expected nil positions, got %v", name, positions)
		}
	}
}
