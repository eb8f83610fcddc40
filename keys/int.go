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

package keys

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// IntCodec handles base-10 int64 keys
type IntCodec struct {
	// Max bounds Random to [0, Max). Zero means the full non-negative range.
	Max int64
}

func (c IntCodec) Name() string {
	return KindInt.String()
}

func (c IntCodec) Parse(text string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int key %q: %w", text, err)
	}
	return v, nil
}

func (c IntCodec) Format(key int64) string {
	return strconv.FormatInt(key, 10)
}

func (c IntCodec) Less(a, b int64) bool {
	return a < b
}

func (c IntCodec) Random(rng *rand.Rand) int64 {
	if c.Max > 0 {
		return rng.Int63n(c.Max)
	}
	return rng.Int63()
}
