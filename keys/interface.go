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
	"strings"
)

// Codec converts between text and a typed tree key, and supplies the ordering
// used by the tree.
type Codec[K any] interface {
	Name() string
	Parse(text string) (K, error)
	Format(key K) string
	Less(a, b K) bool
	Random(rng *rand.Rand) K
}

// Kind names a supported key type.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindFloat
)

var kindNames = map[Kind]string{
	KindInt:    "int",
	KindString: "string",
	KindFloat:  "float",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Names lists the accepted key type names in declaration order.
func Names() []string {
	return []string{KindInt.String(), KindString.String(), KindFloat.String()}
}

// ParseKind resolves a key type name, ignoring case.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "integer":
		return KindInt, nil
	case "string", "str":
		return KindString, nil
	case "float", "number":
		return KindFloat, nil
	}
	return 0, fmt.Errorf("unknown key type %q (supported: %s)", name, strings.Join(Names(), ", "))
}
