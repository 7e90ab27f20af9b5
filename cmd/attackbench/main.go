// Command attackbench times table construction and slider attack resolution,
// optionally checking every result against the ray-walking reference.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/profile"

	"github.com/haakonnh/knightbot"
	"github.com/haakonnh/knightbot/bitops"
)

type Params struct {
	Queries    int
	Seed       int64
	Verify     bool
	BitOps     string
	Profile    string
	ProfileDir string
	PprofAddr  string
}

func main() {
	var params Params
	flag.IntVar(&params.Queries, "n", 1000000, "Number of random queen queries")
	flag.Int64Var(&params.Seed, "seed", 1, "Seed for random occupancies")
	flag.BoolVar(&params.Verify, "verify", false, "Check every result against the ray reference")
	flag.StringVar(&params.BitOps, "bitops", "auto", "Extract/deposit implementation: auto, hardware or software")
	flag.StringVar(&params.Profile, "profile", "", "Write a cpu or mem profile")
	flag.StringVar(&params.ProfileDir, "profile_dir", ".", "Directory for profile output")
	flag.StringVar(&params.PprofAddr, "pprof_addr", "", "Serve net/http/pprof on this address while running")
	flag.Parse()

	if params.PprofAddr != "" {
		go func() {
			glog.Error(http.ListenAndServe(params.PprofAddr, nil))
		}()
	}

	switch params.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(params.ProfileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(params.ProfileDir), profile.NoShutdownHook).Stop()
	default:
		glog.Exitf("unknown profile %q: want cpu or mem", params.Profile)
	}

	mode, err := bitops.ParseMode(params.BitOps)
	if err != nil {
		glog.Exitf("%v", err)
	}

	start := time.Now()
	table := knightbot.GenerateRankAttackTable()
	glog.Infof("Rank attack table built in %v", time.Since(start))

	start = time.Now()
	masks := knightbot.PrecomputeMasks()
	glog.Infof("Structural masks built in %v", time.Since(start))

	ops, err := bitops.New(mode)
	if err != nil {
		glog.Exitf("%v", err)
	}
	r := knightbot.NewResolverFrom(table, masks, ops)

	if mismatches := run(r, params); mismatches > 0 {
		glog.Exitf("%d results differ from the ray reference", mismatches)
	}
}

func run(r *knightbot.Resolver, params Params) int {
	rng := rand.New(rand.NewSource(params.Seed))
	occ := make([]knightbot.Bitboard, 4096)
	for i := range occ {
		occ[i] = knightbot.Bitboard(rng.Uint64() & rng.Uint64())
	}

	var sink knightbot.Bitboard
	start := time.Now()
	for i := 0; i < params.Queries; i++ {
		sink ^= r.QueenAttacks(knightbot.Square(i&63), occ[i&4095])
	}
	elapsed := time.Since(start)
	glog.Infof("%d queen queries with %s bitops in %v (%.1f ns/query, checksum %x)",
		params.Queries, r.BitOps(), elapsed, float64(elapsed.Nanoseconds())/float64(max(params.Queries, 1)), uint64(sink))

	if !params.Verify {
		return 0
	}
	mismatches := 0
	for i := range occ {
		for sq := knightbot.A1; sq <= knightbot.H8; sq++ {
			got, want := r.QueenAttacks(sq, occ[i]), knightbot.GenerateQueenAttacks(sq, occ[i])
			if got != want {
				mismatches++
				if mismatches <= 10 {
					glog.Errorf("queen %s occupancy %s: got %s want %s", sq, occ[i], got, want)
				}
			}
		}
	}
	glog.Infof("Verified %d queries against the ray reference: %d mismatches", len(occ)*knightbot.NumOfSquaresInBoard, mismatches)
	return mismatches
}
