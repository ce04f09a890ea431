// rbdemo inserts a fixed set of keys into a red-black tree, then removes
// them one at a time, printing the tree and checking its invariants after
// every step.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"rbkv/internal/logging"
	"rbkv/rbtree"
)

var defaultKeys = []int{186, 78, 170, 132, 191, 102, 45, 28, 52, 158}

var (
	keysFlag  = flag.String("keys", "", "Comma-separated keys (default: built-in sample)")
	random    = flag.Int("random", 0, "Use N random keys in [0, 200) instead")
	seed      = flag.Int64("seed", 1, "Seed for -random")
	every     = flag.Int("print-every", 1, "Print the tree every N removals")
	rejectDup = flag.Bool("reject-duplicates", false, "Reject duplicate keys instead of overwriting")
)

func main() {
	flag.Parse()
	logger := logging.New(os.Stderr, logging.LevelInfo, "demo")

	keys, err := pickKeys()
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	cfg := rbtree.Config{}
	if *rejectDup {
		cfg.Duplicates = rbtree.RejectDuplicates
	}
	tree := rbtree.NewOrdered[int, string](cfg)

	// ---------------- Insert ----------------

	for i, k := range keys {
		fmt.Printf("%2d Insert: %-3d\n", i+1, k)
		if err := tree.Insert(k, strconv.Quote(strconv.Itoa(k))); err != nil {
			logger.Warnf("insert %d: %v", k, err)
		}
		if err := tree.Verify(); err != nil {
			logger.Errorf("after insert %d: %v", k, err)
			os.Exit(1)
		}
	}
	fmt.Println("size:", tree.Size())
	fmt.Println(tree)

	// ---------------- Remove ----------------

	for i, k := range keys {
		v, err := tree.Remove(k)
		if err != nil {
			fmt.Printf("%2d Delete: %3d(%v)\n", i+1, k, err)
		} else {
			fmt.Printf("%2d Delete: %3d(%s)\n", i+1, k, v)
		}
		if err := tree.Verify(); err != nil {
			logger.Errorf("after remove %d: %v", k, err)
			os.Exit(1)
		}
		if *every > 0 && (i+1)%*every == 0 {
			fmt.Println(tree)
		}
	}
	logger.Infof("done: %d keys, final size %d", len(keys), tree.Size())
}

func pickKeys() ([]int, error) {
	if *random > 0 {
		rng := rand.New(rand.NewSource(*seed))
		keys := make([]int, *random)
		for i := range keys {
			keys[i] = rng.Intn(200)
		}
		return keys, nil
	}
	if *keysFlag == "" {
		return defaultKeys, nil
	}
	var keys []int
	for _, f := range strings.Split(*keysFlag, ",") {
		k, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
