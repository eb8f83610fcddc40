// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/inspect"
	"github.com/cybrota/avltree/keys"
)

const (
	defaultProbes        = 256
	bloomFalsePositive   = 0.01
	progressDescribeStep = "🌳 Checking n=%d"
)

// CheckOptions controls a randomized verification run.
type CheckOptions struct {
	Kind         keys.Kind
	Sizes        []int
	Seed         int64
	MaxKey       int64
	StringLength int
	Probes       int       // absent-key lookups per size; 0 means 256
	Progress     io.Writer // nil hides the progress bar
}

// CheckResult summarises one size of a randomized run.
type CheckResult struct {
	Size       int
	Distinct   int
	Duplicates int
	Erased     int
	Height     int
	Probes     int
}

// RunRandomCheck inserts random keys for every configured size, verifying the
// tree after each mutation, then erases half of them and probes for keys that
// were never inserted. It stops at the first failure.
func RunRandomCheck(opts CheckOptions) ([]CheckResult, error) {
	switch opts.Kind {
	case keys.KindInt:
		return runRandomCheck(opts, keys.IntCodec{Max: opts.MaxKey})
	case keys.KindString:
		return runRandomCheck(opts, keys.StringCodec{Length: opts.StringLength})
	case keys.KindFloat:
		return runRandomCheck(opts, keys.FloatCodec{})
	}
	return nil, fmt.Errorf("unsupported key type %v", opts.Kind)
}

func runRandomCheck[K comparable](opts CheckOptions, codec keys.Codec[K]) ([]CheckResult, error) {
	if len(opts.Sizes) == 0 {
		return nil, errors.New("no sizes to check")
	}
	probes := opts.Probes
	if probes <= 0 {
		probes = defaultProbes
	}

	var total int64
	for _, n := range opts.Sizes {
		if n < 0 {
			return nil, fmt.Errorf("invalid size %d", n)
		}
		total += int64(n + n/2)
	}
	bar := newProgressBar(opts.Progress, total, "🌳 Checking...")
	defer bar.Finish()

	rng := rand.New(rand.NewSource(opts.Seed))
	results := make([]CheckResult, 0, len(opts.Sizes))

	for _, n := range opts.Sizes {
		bar.Describe(fmt.Sprintf(progressDescribeStep, n))

		result, err := checkSize(n, probes, codec, rng, bar)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func checkSize[K comparable](n, probes int, codec keys.Codec[K], rng *rand.Rand, bar *progressbar.ProgressBar) (CheckResult, error) {
	result := CheckResult{Size: n}
	tree := avl.New(codec.Less)
	present := make(map[K]struct{}, n)
	order := make([]K, 0, n)
	seen := bloom.NewWithEstimates(uint(n)+1, bloomFalsePositive)

	verify := func(step string, key K, wantPresent bool) error {
		if err := inspect.Check(tree); err != nil {
			return fmt.Errorf("n=%d, %s %s: %w", n, step, codec.Format(key), err)
		}
		if err := inspect.CheckHeightBound(tree); err != nil {
			return fmt.Errorf("n=%d, %s %s: %w", n, step, codec.Format(key), err)
		}
		if tree.Exists(key) != wantPresent {
			return fmt.Errorf("n=%d, %s %s: Exists = %v, want %v", n, step, codec.Format(key), !wantPresent, wantPresent)
		}
		if tree.Len() != len(present) {
			return fmt.Errorf("n=%d, %s %s: Len = %d, want %d", n, step, codec.Format(key), tree.Len(), len(present))
		}
		return nil
	}

	for i := 0; i < n; i++ {
		key := codec.Random(rng)
		tree.Insert(key)
		if _, dup := present[key]; dup {
			result.Duplicates++
		} else {
			present[key] = struct{}{}
			order = append(order, key)
		}
		seen.AddString(codec.Format(key))

		if err := verify("insert", key, true); err != nil {
			return result, err
		}
		bar.Add(1)
	}
	result.Distinct = len(present)

	sorted := inspect.InOrder(tree)
	for i := 1; i < len(sorted); i++ {
		if !tree.Less(sorted[i-1], sorted[i]) {
			return result, fmt.Errorf("n=%d: in-order not strictly increasing at %d: %s, %s",
				n, i, codec.Format(sorted[i-1]), codec.Format(sorted[i]))
		}
	}

	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, key := range order[:len(order)/2] {
		tree.Erase(key)
		delete(present, key)
		if err := verify("erase", key, false); err != nil {
			return result, err
		}
		result.Erased++
		bar.Add(1)
	}

	// The filter has no false negatives, so a key it never saw must be absent.
	for i := 0; i < probes; i++ {
		key := codec.Random(rng)
		if seen.TestString(codec.Format(key)) {
			continue
		}
		if tree.Exists(key) {
			return result, fmt.Errorf("n=%d: never-inserted key %s reported present", n, codec.Format(key))
		}
		result.Probes++
	}

	result.Height = tree.Height()
	return result, nil
}

func newProgressBar(w io.Writer, total int64, description string) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
