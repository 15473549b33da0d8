package widgets

import (
	"testing"

	"github.com/go-orbit/orbit/pkg/graphics"
)

func TestSatelliteGeometryCollapsed(t *testing.T) {
	for slot := 1; slot <= 3; slot++ {
		g := satelliteGeometry(slot, false, 32)
		if g.Offset != (graphics.Offset{}) {
			t.Errorf("slot %d collapsed offset = %v, want (0,0)", slot, g.Offset)
		}
		if g.Opacity != 0 {
			t.Errorf("slot %d collapsed opacity = %v, want 0", slot, g.Opacity)
		}
		if g.ShadowRadius != 8 {
			t.Errorf("slot %d shadow = %v, want 8", slot, g.ShadowRadius)
		}
	}
}

func TestSatelliteGeometryExpanded(t *testing.T) {
	tests := []struct {
		slot int
		want graphics.Offset
	}{
		{1, graphics.Offset{X: -64, Y: 0}},
		{2, graphics.Offset{X: -56, Y: -56}},
		{3, graphics.Offset{X: 0, Y: -64}},
	}
	for _, tt := range tests {
		g := satelliteGeometry(tt.slot, true, 32)
		if g.Offset != tt.want {
			t.Errorf("slot %d expanded offset = %v, want %v", tt.slot, g.Offset, tt.want)
		}
		if g.Opacity != 1 {
			t.Errorf("slot %d expanded opacity = %v, want 1", tt.slot, g.Opacity)
		}
		if g.ShadowRadius != 8 {
			t.Errorf("slot %d shadow = %v, want 8", tt.slot, g.ShadowRadius)
		}
	}
}

func TestSatelliteGeometryScalesWithButtonSize(t *testing.T) {
	g := satelliteGeometry(1, true, 48)
	if g.Offset.X != -96 {
		t.Errorf("slot 1 offset X at size 48 = %v, want -96", g.Offset.X)
	}
	g = satelliteGeometry(2, true, 48)
	if g.Offset.X != -84 || g.Offset.Y != -84 {
		t.Errorf("slot 2 offset at size 48 = %v, want (-84,-84)", g.Offset)
	}
}

func TestMainGeometry(t *testing.T) {
	rotation, scale, shadow := mainGeometry(false)
	if rotation != 0 || scale != 1.0 || shadow != 4 {
		t.Errorf("collapsed main = (%v, %v, %v), want (0, 1, 4)", rotation, scale, shadow)
	}

	rotation, scale, shadow = mainGeometry(true)
	if rotation != 405 || scale != 1.3 || shadow != 4 {
		t.Errorf("expanded main = (%v, %v, %v), want (405, 1.3, 4)", rotation, scale, shadow)
	}
}

func TestGradientForShades(t *testing.T) {
	base := graphics.RGB(0, 122, 255)
	g := gradientFor(base)

	stops := g.Stops()
	if len(stops) != 2 {
		t.Fatalf("gradient has %d stops, want 2", len(stops))
	}
	if stops[0].Position != 0 || stops[1].Position != 1 {
		t.Errorf("stop positions = %v/%v, want 0/1", stops[0].Position, stops[1].Position)
	}
	if stops[0].Color != base.Lighten(gradientLightenAmount) {
		t.Errorf("first stop = %08X, want lightened base", uint32(stops[0].Color))
	}
	if stops[1].Color != base.Darken(gradientDarkenAmount) {
		t.Errorf("second stop = %08X, want darkened base", uint32(stops[1].Color))
	}
}
