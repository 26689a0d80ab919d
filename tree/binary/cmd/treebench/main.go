package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go.lepak.sg/trees/tree/binary"
)

func main() {
	var (
		num  int
		seed int64
		avl  bool
	)

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cmd := &cobra.Command{
		Use:   "treebench",
		Short: "Insert a random workload into a search tree and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rd := rand.New(rand.NewSource(seed))

			tr := binary.New[int]()
			if avl {
				tr = binary.NewAVL[int]()
			}

			log.Info().
				Int("n", num).
				Int64("seed", seed).
				Bool("avl", avl).
				Msg("inserting")

			start := time.Now()
			since := start
			for i := 0; i < num; i++ {
				tr.Insert(rd.Int())
				if (i+1)%100_000 == 0 {
					log.Info().Msgf("inserted %s keys; %s keys/s",
						humanize.Comma(int64(i+1)),
						humanize.Comma(int64(100_000/time.Since(since).Seconds())))
					since = time.Now()
				}
			}

			log.Info().
				Str("elapsed", time.Since(start).String()).
				Int("size", tr.Size()).
				Int("height", tr.Height()).
				Msg("insert done")

			var prev int
			first, sorted := true, true
			tr.InOrderIter(func(k int) bool {
				if !first && k < prev {
					sorted = false
					return false
				}
				prev, first = k, false
				return true
			})
			if !sorted {
				return fmt.Errorf("in-order traversal out of order, seed %d", seed)
			}

			log.Info().Msgf("in-order check passed over %s keys",
				humanize.Comma(int64(tr.Size())))
			return nil
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", 1_000_000, "number of keys to insert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "rng seed (default current unix time in ns)")
	cmd.Flags().BoolVar(&avl, "avl", false, "use the AVL balance strategy")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
