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
	"strings"
)

// runEval executes one session command per line of r, writing results to out.
// Without keepGoing the first failing command stops the run and its error is
// returned. With keepGoing failures are reported to errOut and counted.
func runEval(r io.Reader, out, errOut io.Writer, s Session, keepGoing bool) (int, error) {
	lines, err := readKeys(r, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to read commands: %w", err)
	}

	failed := 0
	for _, line := range lines {
		result, err := s.Exec(line)
		if err != nil {
			if !keepGoing {
				return failed + 1, fmt.Errorf("%s: %w", line, err)
			}
			failed++
			fmt.Fprintf(errOut, "%s❌ %s: %v%s\n", Error, line, err, Reset)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	return failed, nil
}

// LoadOptions describes a bulk load of key files.
type LoadOptions struct {
	Insert   []string
	Erase    []string
	Order    string // pre, in, post, all or empty
	Print    bool
	Progress io.Writer // nil hides the progress bar
}

// LoadStats counts what a load changed.
type LoadStats struct {
	Inserted   int
	Duplicates int
	Erased     int
	Absent     int
}

var errViolation = errors.New("tree verification failed")

// runLoad inserts and then erases the given raw keys, prints the requested
// traversals and drawing, and finally verifies the tree.
func runLoad(out io.Writer, s Session, opts LoadOptions) (LoadStats, error) {
	var stats LoadStats

	orders, err := traversalOrders(opts.Order)
	if err != nil {
		return stats, err
	}

	bar := newProgressBar(opts.Progress, int64(len(opts.Insert)+len(opts.Erase)), "🌱 Loading keys...")

	for _, raw := range opts.Insert {
		added, err := s.InsertKey(raw)
		if err != nil {
			return stats, fmt.Errorf("insert: %w", err)
		}
		if added {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}
		bar.Add(1)
	}

	bar.Describe("🍂 Erasing keys...")
	for _, raw := range opts.Erase {
		removed, err := s.EraseKey(raw)
		if err != nil {
			return stats, fmt.Errorf("erase: %w", err)
		}
		if removed {
			stats.Erased++
		} else {
			stats.Absent++
		}
		bar.Add(1)
	}
	bar.Finish()

	fmt.Fprintf(out, "inserted %d (%d duplicates), erased %d (%d absent), %d keys stored\n",
		stats.Inserted, stats.Duplicates, stats.Erased, stats.Absent, s.Len())

	for _, order := range orders {
		result, _ := s.Exec(order)
		fmt.Fprintf(out, "%-5s %s\n", order+":", result)
	}
	if opts.Print {
		fmt.Fprintln(out, s.Render())
	}

	if _, err := s.Exec("check"); err != nil {
		return stats, fmt.Errorf("%w: %v", errViolation, err)
	}
	fmt.Fprintf(out, "%s✅ tree verified%s\n", Green, Reset)
	return stats, nil
}

func traversalOrders(order string) ([]string, error) {
	switch strings.ToLower(order) {
	case "":
		return nil, nil
	case "pre", "in", "post":
		return []string{strings.ToLower(order)}, nil
	case "all":
		return []string{"pre", "in", "post"}, nil
	}
	return nil, fmt.Errorf("unknown traversal order %q (supported: pre, in, post, all)", order)
}

func printCheckResults(out io.Writer, results []CheckResult) {
	fmt.Fprintf(out, "%8s %9s %11s %7s %7s %7s\n", "size", "distinct", "duplicates", "erased", "height", "probes")
	for _, r := range results {
		fmt.Fprintf(out, "%8d %9d %11d %7d %7d %7d\n", r.Size, r.Distinct, r.Duplicates, r.Erased, r.Height, r.Probes)
	}
}
