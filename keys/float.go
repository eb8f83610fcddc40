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
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ErrNaN is returned for NaN input, which has no place in a total order.
var ErrNaN = errors.New("NaN is not an orderable key")

// FloatCodec handles float64 keys.
type FloatCodec struct{}

func (c FloatCodec) Name() string {
	return KindFloat.String()
}

func (c FloatCodec) Parse(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float key %q: %w", text, err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("invalid float key %q: %w", text, ErrNaN)
	}
	return v, nil
}

func (c FloatCodec) Format(key float64) string {
	return strconv.FormatFloat(key, 'g', -1, 64)
}

func (c FloatCodec) Less(a, b float64) bool {
	return a < b
}

func (c FloatCodec) Random(rng *rand.Rand) float64 {
	return rng.Float64()
}
