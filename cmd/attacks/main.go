// Command attacks resolves the squares a rook, bishop or queen attacks for a
// given occupancy and prints them as a grid or writes an SVG diagram.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"

	"github.com/haakonnh/knightbot"
	"github.com/haakonnh/knightbot/bitops"
	"github.com/haakonnh/knightbot/image"
)

type Params struct {
	Piece     string
	Square    string
	Blockers  string
	Occupancy uint64
	Start     bool
	BitOps    string
	Format    string
	Out       string
}

func main() {
	var params Params
	flag.StringVar(&params.Piece, "piece", "queen", "Slider to resolve: rook, bishop or queen")
	flag.StringVar(&params.Square, "square", "d4", "Square of the slider, e.g. e4")
	flag.StringVar(&params.Blockers, "blockers", "", "Comma-separated occupied squares, e.g. d6,b2")
	flag.Uint64Var(&params.Occupancy, "occupancy", 0, "Occupancy bitboard (A1 = bit 0), any Go integer literal base")
	flag.BoolVar(&params.Start, "start", false, "Add the starting position's pieces to the occupancy")
	flag.StringVar(&params.BitOps, "bitops", "auto", "Extract/deposit implementation: auto, hardware or software")
	flag.StringVar(&params.Format, "format", "text", "Output format: text or svg")
	flag.StringVar(&params.Out, "out", "", "Output path (default stdout)")
	flag.Parse()

	if err := run(params); err != nil {
		if hint := errors.FlattenHints(err); hint != "" {
			glog.Exitf("%v (%s)", err, hint)
		}
		glog.Exitf("%v", err)
	}
}

func run(params Params) error {
	pt, err := knightbot.ParsePieceType(params.Piece)
	if err != nil {
		return err
	}
	sq, err := knightbot.ParseSquare(params.Square)
	if err != nil {
		return errors.Wrap(err, "-square")
	}
	occ, err := occupancy(params)
	if err != nil {
		return err
	}
	mode, err := bitops.ParseMode(params.BitOps)
	if err != nil {
		return err
	}

	r, err := knightbot.NewResolver(knightbot.Config{BitOps: mode})
	if err != nil {
		return err
	}
	attacks, err := r.Attacks(pt, sq, occ)
	if err != nil {
		return err
	}
	glog.Infof("%s on %s (bitops=%s): %d squares attacked", pt, sq, r.BitOps(), attacks.PopCount())

	var w io.Writer = os.Stdout
	if params.Out != "" {
		f, err := os.Create(params.Out)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	switch params.Format {
	case "text":
		fmt.Fprint(bw, attacks.Draw())
		fmt.Fprintln(bw, attacks.Scan())
	case "svg":
		if err := image.SVG(bw, attacks, image.Origin(sq), image.Blockers(occ)); err != nil {
			return errors.Wrap(err, "render svg")
		}
	default:
		return errors.Newf("unknown format %q", params.Format)
	}
	return bw.Flush()
}

func occupancy(params Params) (knightbot.Bitboard, error) {
	occ := knightbot.Bitboard(params.Occupancy)
	if params.Start {
		occ |= knightbot.StartingBoard().Occupancy()
	}
	for _, s := range strings.Split(params.Blockers, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		bb, err := knightbot.ParseBitboard(s)
		if err != nil {
			return knightbot.EmptyBB, errors.Wrap(err, "-blockers")
		}
		occ |= bb
	}
	return occ, nil
}
