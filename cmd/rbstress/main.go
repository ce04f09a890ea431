// rbstress drives a red-black tree with random inserts, removes and finds
// and checks every answer against a pebble-backed reference store. Tree
// invariants are verified periodically and at the end of the run.
//
// A run can be recorded with -trace and reproduced exactly with -replay.
//
// Usage: go run ./cmd/rbstress [flags]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"rbkv/internal/logging"
)

var (
	numOps      = flag.Int("ops", 100_000, "Number of operations to run")
	numKeys     = flag.Int64("keys", 1000, "Number of keys in the key space")
	seed        = flag.Int64("seed", 0, "Random seed (0 for time-based)")
	verifyEvery = flag.Int("verify-every", 1000, "Verify invariants every N operations")
	valueSize   = flag.Int("value-size", 8, "Size of each value in bytes")
	nodePool    = flag.Int("pool", 0, "Removed nodes kept for reuse (0 disables)")
	insertW     = flag.Int("insert", 50, "Insert operation weight")
	removeW     = flag.Int("remove", 30, "Remove operation weight")
	findW       = flag.Int("find", 20, "Find operation weight")
	tracePath   = flag.String("trace", "", "Record generated operations to this file")
	replayPath  = flag.String("replay", "", "Replay operations from this trace instead of generating")
	logLevel    = flag.String("log-level", "info", "Log level: error, warn, info, debug")
)

func main() {
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	logger := logging.New(os.Stderr, level, "stress")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := stressConfig{
		Ops:          *numOps,
		Keys:         *numKeys,
		Seed:         *seed,
		VerifyEvery:  *verifyEvery,
		ValueSize:    *valueSize,
		NodePool:     *nodePool,
		InsertWeight: *insertW,
		RemoveWeight: *removeW,
		FindWeight:   *findW,
		TracePath:    *tracePath,
		ReplayPath:   *replayPath,
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	start := time.Now()
	sum, err := run(cfg, logger)
	elapsed := time.Since(start)
	if err != nil {
		logger.Errorf("FAILED after %s ops: %v", humanize.Comma(int64(sum.Ops)), err)
		if cfg.TracePath != "" {
			logger.Errorf("reproduce with: rbstress -replay %s", cfg.TracePath)
		}
		os.Exit(1)
	}

	fmt.Printf("ok: %s ops in %s (%s inserts, %s removes, %s finds, %s misses)\n",
		humanize.Comma(int64(sum.Ops)), elapsed.Round(time.Millisecond),
		humanize.Comma(int64(sum.Inserts)), humanize.Comma(int64(sum.Removes)),
		humanize.Comma(int64(sum.Finds)), humanize.Comma(int64(sum.Misses)))
	fmt.Printf("    final size %d, max height %d, %d verifications\n", sum.FinalSize, sum.MaxHeight, sum.Verifies)
	if cfg.TracePath != "" {
		if st, err := os.Stat(cfg.TracePath); err == nil {
			fmt.Printf("    trace %s (%s)\n", cfg.TracePath, humanize.Bytes(uint64(st.Size())))
		}
	}
}
