// Command measure times word lookups in an unsorted list, in LinkedBSTs built
// in alphabetic and in random order, in a rebalanced LinkedBST, and in a few
// third-party containers holding the same words.
//
//	measure --words words.txt [--sample 900] [--lookups 10000] [--seed 0]
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type config struct {
	words   string
	sample  int
	lookups int
	seed    int64
}

// scenario is one container under measurement. keys are the words it holds.
type scenario struct {
	name string
	keys []string
	find func(string) bool
}

type result struct {
	name    string
	size    int
	nsPerOp int64
	n       int
}

type llrbWord string

func (x llrbWord) Less(than llrb.Item) bool {
	return x < than.(llrbWord)
}

var errNoWords = errors.New("word list is empty")

// loadWords reads one word per line, skipping blank lines.
func loadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := sc.Text(); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	if len(words) == 0 {
		return nil, errNoWords
	}
	return words, nil
}

// randomSubset picks each word with probability 1/2, in file order, until n are picked.
func randomSubset(words []string, n int, rnd *rand.Rand) []string {
	res := make([]string, 0, n)
	for len(res) < n {
		for _, w := range words {
			if len(res) == n {
				break
			}
			if rnd.Intn(2) == 1 {
				res = append(res, w)
			}
		}
	}
	return res
}

func scenarios(words []string, sample int, rnd *rand.Rand) []scenario {
	sample = min(sample, len(words))
	start := rnd.Intn(len(words) - sample + 1)
	window := words[start : start+sample]
	subset := randomSubset(words, sample, rnd)

	alphabetic, random, rebalanced := Trees.From(window), Trees.From(subset), Trees.From(subset)
	rebalanced.Rebalance()

	bt := btree.NewOrderedG[string](32)
	lt := llrb.New()
	rt := redblacktree.NewWithStringComparator()
	hx := haxmap.New[string, struct{}]()
	hm := hashmap.New[string, struct{}]()
	for _, w := range subset {
		bt.ReplaceOrInsert(w)
		lt.ReplaceOrInsert(llrbWord(w))
		rt.Put(w, struct{}{})
		hx.Set(w, struct{}{})
		hm.Set(w, struct{}{})
	}

	return []scenario{
		{"list", words, func(w string) bool { return slices.Index(words, w) >= 0 }},
		{"bst-alphabetic", window, alphabetic.Contains},
		{"bst-random", subset, random.Contains},
		{"bst-rebalanced", subset, rebalanced.Contains},
		{"btree", subset, bt.Has},
		{"llrb", subset, func(w string) bool { return lt.Has(llrbWord(w)) }},
		{"gods-rbt", subset, func(w string) bool {
			_, ok := rt.Get(w)
			return ok
		}},
		{"haxmap", subset, func(w string) bool {
			_, ok := hx.Get(w)
			return ok
		}},
		{"hashmap", subset, func(w string) bool {
			_, ok := hm.Get(w)
			return ok
		}},
	}
}

// measure times lookups of randomly chosen keys of sc. Every lookup must hit.
func measure(sc scenario, lookups int, rnd *rand.Rand) (result, error) {
	queries := make([]string, lookups)
	for i := range queries {
		queries[i] = sc.keys[rnd.Intn(len(sc.keys))]
	}
	var missed string
	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			for _, q := range queries {
				if !sc.find(q) {
					missed = q
					return
				}
			}
		}
	})
	if missed != "" {
		return result{}, fmt.Errorf("%s: lookup of %q missed", sc.name, missed)
	}
	return result{sc.name, len(sc.keys), br.NsPerOp(), br.N}, nil
}

func run(cfg config, r io.Reader, log logrus.FieldLogger) ([]result, error) {
	words, err := loadWords(r)
	if err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(cfg.seed))
	log.WithFields(logrus.Fields{"words": len(words), "sample": cfg.sample, "lookups": cfg.lookups}).Info("process begun")
	var res []result
	for _, sc := range scenarios(words, cfg.sample, rnd) {
		rs, err := measure(sc, cfg.lookups, rnd)
		if err != nil {
			return res, err
		}
		log.WithFields(logrus.Fields{
			"container": rs.name,
			"size":      rs.size,
			"ms/op":     float64(rs.nsPerOp) / 1e6,
			"runs":      rs.n,
		}).Infof("searching for %d words", cfg.lookups)
		res = append(res, rs)
	}
	log.Info("process finished")
	return res, nil
}

var errBadConfig = errors.New("sample and lookups must be positive")

// measureRunE opens the word list named by cfg and measures every scenario.
func measureRunE(cfg *config, log logrus.FieldLogger) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if cfg.sample <= 0 || cfg.lookups <= 0 {
			return errBadConfig
		}
		f, err := os.Open(cfg.words)
		if err != nil {
			return fmt.Errorf("opening word list: %w", err)
		}
		defer f.Close()
		_, err = run(*cfg, f, log)
		return
	}
}

func newMeasureCmd(log logrus.FieldLogger) *cobra.Command {
	cfg := new(config)
	cmd := &cobra.Command{
		Use:          "measure",
		Short:        "Time word lookups in linked BSTs and in third-party containers",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         measureRunE(cfg, log),
	}
	cmd.Flags().StringVarP(&cfg.words, "words", "w", "words.txt", "word list, one word per line")
	cmd.Flags().IntVarP(&cfg.sample, "sample", "s", 900, "number of words held by the trees")
	cmd.Flags().IntVarP(&cfg.lookups, "lookups", "n", 10000, "lookups per measurement")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 0, "random seed")
	return cmd
}

func main() {
	testing.Init()
	log := logrus.New()
	if err := newMeasureCmd(log).Execute(); err != nil {
		log.WithError(err).Fatal("measurement failed")
	}
}
