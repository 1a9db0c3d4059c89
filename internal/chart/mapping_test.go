package chart

import (
	"image"
	"testing"
)

func TestMappingZeroWidthDomainPinsToEdge(t *testing.T) {
	m := Mapping{Plot: image.Rect(40, 40, 760, 560), MinX: 0, MaxX: 0, MinY: 0, MaxY: 1}
	if got := m.MapX(0); got != 40 {
		t.Fatalf("expected left edge, got %d", got)
	}
	if got := m.MapX(5); got != 40 {
		t.Fatalf("expected left edge for out-of-domain value, got %d", got)
	}
}

func TestMappingCorners(t *testing.T) {
	m := Mapping{Plot: image.Rect(10, 20, 110, 70), MinX: 0, MaxX: 10, MinY: 0, MaxY: 1}
	if got := m.Map(0, 0); got != image.Pt(10, 69) {
		t.Fatalf("origin mapped to %v", got)
	}
	if got := m.Map(10, 1); got != image.Pt(109, 20) {
		t.Fatalf("far corner mapped to %v", got)
	}
	if got := m.Map(5, 0.5); got != image.Pt(60, 44) {
		t.Fatalf("centre mapped to %v", got)
	}
}
