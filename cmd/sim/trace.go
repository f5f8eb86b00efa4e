package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// readTrace parses one integer key per line. Blank lines and lines
// starting with '#' are skipped.
func readTrace(r io.Reader) ([]int64, error) {
	var keys []int64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		k, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: %w", line, err)
		}
		keys = append(keys, k)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	return keys, nil
}

func loadTrace(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTrace(f)
}

// zipfTrace generates ops keys in [0, keys) with a Zipf(s, v) skew.
func zipfTrace(ops, keys int, s, v float64, seed int64) ([]int64, error) {
	if keys < 1 || ops < 0 {
		return nil, fmt.Errorf("zipf: keys must be > 0 and ops >= 0, got keys=%d ops=%d", keys, ops)
	}
	z := rand.NewZipf(rand.New(rand.NewSource(seed)), s, v, uint64(keys-1))
	if z == nil {
		return nil, fmt.Errorf("zipf: invalid parameters s=%v v=%v (need s > 1, v >= 1)", s, v)
	}
	out := make([]int64, ops)
	for i := range out {
		out[i] = int64(z.Uint64())
	}
	return out, nil
}
