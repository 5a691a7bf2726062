package render

import (
	"slices"
	"testing"

	"tm-sim/internal/tape"
)

func TestFlattenPlane(t *testing.T) {
	p, _ := tape.NewPlane(2, 3, 0)
	p.Move(1)
	p.Move(3)
	p.Write(2)
	f := Flatten(p)
	if f.W != 3 || f.H != 2 || f.Head != 4 || f.Cells[4] != 2 {
		t.Fatalf("frame = %+v", f)
	}
}

func TestFlattenVolumeSideBySide(t *testing.T) {
	v, _ := tape.NewVolume(2, 2, 2, 0)
	v.Move(1) // slice 1
	v.Move(3) // row 1
	v.Write(1)
	f := Flatten(v)
	if f.W != 4 || f.H != 2 {
		t.Fatalf("frame size = %dx%d", f.W, f.H)
	}
	want := []uint8{0, 0, 0, 0, 0, 0, 1, 0}
	if !slices.Equal(f.Cells, want) || f.Head != 6 {
		t.Fatalf("frame = %+v", f)
	}
}

func TestFillFrameMarksHead(t *testing.T) {
	l, _ := tape.NewLine(3, 1)
	l.Move(1)
	f := Flatten(l)
	buf := make([]byte, 4*len(f.Cells))
	FillFrame(buf, f, Palette(2))
	if buf[0] != 255 || buf[4] != HeadColor.R || buf[5] != HeadColor.G || buf[8] != 255 {
		t.Fatalf("pixels = %v", buf)
	}
}

func TestPalette(t *testing.T) {
	p := Palette(3)
	if len(p) != 3 || p[0].R != 0 || p[1].R != 127 || p[2].R != 255 {
		t.Fatalf("palette = %v", p)
	}
	if len(Palette(0)) != 1 {
		t.Fatal("empty palette")
	}
}
