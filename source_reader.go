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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// readKeyFile reads one key per line from path. Blank lines and lines starting
// with '#' are skipped; surrounding whitespace is trimmed.
func readKeyFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found. Create it with one key per line, then try again", path)
		}
		return nil, err
	}
	defer file.Close()

	// Pre-allocate with an estimate of ~8 bytes per line
	var estimate int
	if stat, err := file.Stat(); err == nil {
		estimate = int(stat.Size() / 8)
	}
	return readKeys(file, estimate)
}

func readKeys(r io.Reader, estimate int) ([]string, error) {
	entries := make([]string, 0, estimate)

	scanner := bufio.NewScanner(r)
	// Long string keys need more than the default 64 KiB line limit
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
