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
	"math/rand"
	"strconv"
)

const defaultStringLength = 8

// StringCodec handles raw string keys ordered byte-wise.
type StringCodec struct {
	// Length of keys produced by Random. Zero means 8.
	Length int
}

func (c StringCodec) Name() string {
	return KindString.String()
}

func (c StringCodec) Parse(text string) (string, error) {
	return text, nil
}

// Format quotes keys so that empty strings and whitespace stay visible.
func (c StringCodec) Format(key string) string {
	return strconv.Quote(key)
}

func (c StringCodec) Less(a, b string) bool {
	return a < b
}

func (c StringCodec) Random(rng *rand.Rand) string {
	n := c.Length
	if n <= 0 {
		n = defaultStringLength
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('a' + rng.Intn(26))
	}
	return string(buf)
}
