package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshotCopiesCurrentGeneration(t *testing.T) {
	g := gridWith(t, 5, 5, point{1, 2}, point{2, 2}, point{3, 2})
	pool := NewSnapshotPool()

	snap := pool.Get(g)
	if snap.Width != 5 || snap.Height != 5 || snap.Population != 3 || snap.Generation != 0 {
		t.Fatalf("snapshot header = %+v", snap)
	}
	NewStepper(1, EdgeBounded).Step(g)
	if !snap.Alive(1, 2) || snap.Alive(2, 1) {
		t.Fatal("snapshot changed when the grid stepped")
	}
	if snap.Alive(-1, 0) || snap.Alive(5, 0) {
		t.Fatal("off-grid coordinates reported alive")
	}
	SnapshotToPool(snap, pool)

	again := pool.Get(g)
	if again.Generation != 1 || !again.Alive(2, 1) || again.Alive(1, 2) {
		t.Fatalf("recycled snapshot = %+v", again)
	}
	SnapshotToPool(again, nil)
}

func TestTerminalRendererDisplay(t *testing.T) {
	g := gridWith(t, 3, 2, point{0, 0}, point{2, 1})
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(NewSnapshotPool().Get(g)); err != nil {
		t.Fatal(err)
	}
	want := gridPosBlock + gridPosEmpty + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosBlock + "\n"
	if buf.String() != want {
		t.Fatalf("rendered %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\033[") {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
