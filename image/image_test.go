package image_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/haakonnh/knightbot"
	"github.com/haakonnh/knightbot/image"
)

func TestSVG(t *testing.T) {
	bb := knightbot.FileABB | knightbot.Rank1BB
	blockers := knightbot.SquareBB(knightbot.D6) | knightbot.SquareBB(knightbot.F2)

	var buf bytes.Buffer
	if err := image.SVG(&buf, bb, image.Origin(knightbot.A1), image.Blockers(blockers)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("output is not an svg document:\n%s", out)
	}
	if n := strings.Count(out, "fill:#dc3c3c"); n != bb.PopCount() {
		t.Fatalf("expected %d marked squares but got %d", bb.PopCount(), n)
	}
	if n := strings.Count(out, "stroke-width:3"); n != blockers.PopCount() {
		t.Fatalf("expected %d outlined blockers but got %d", blockers.PopCount(), n)
	}
	if n := strings.Count(out, "<circle"); n != 1 {
		t.Fatalf("expected one origin marker but got %d", n)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestSVGWriteError(t *testing.T) {
	err := image.SVG(failingWriter{}, knightbot.EmptyBB)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected %v but got %v", errDiskFull, err)
	}
}
