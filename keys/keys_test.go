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
	"math/rand"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"int", KindInt, false},
		{" INT ", KindInt, false},
		{"integer", KindInt, false},
		{"string", KindString, false},
		{"Str", KindString, false},
		{"float", KindFloat, false},
		{"number", KindFloat, false},
		{"bytes", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseKind(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error", tc.input)
				}
				if !strings.Contains(err.Error(), "int, string, float") {
					t.Errorf("error should list supported names, got %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseKind(%q) = %v; want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindString.String() != "string" {
		t.Errorf("KindString.String() = %q", KindString.String())
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("unknown kind String() = %q", Kind(9).String())
	}
}

func TestIntCodec(t *testing.T) {
	c := IntCodec{}
	v, err := c.Parse(" -42 ")
	if err != nil || v != -42 {
		t.Fatalf("Parse(-42) = %d, %v", v, err)
	}
	if c.Format(v) != "-42" {
		t.Errorf("Format(-42) = %q", c.Format(v))
	}
	if _, err := c.Parse("4x"); err == nil {
		t.Errorf("Parse(4x) expected error")
	}
	if !c.Less(-1, 0) || c.Less(0, 0) {
		t.Errorf("Less is not a strict order")
	}

	bounded := IntCodec{Max: 10}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if r := bounded.Random(rng); r < 0 || r >= 10 {
			t.Fatalf("Random() = %d outside [0, 10)", r)
		}
	}
}

func TestStringCodec(t *testing.T) {
	c := StringCodec{}
	v, _ := c.Parse("hello world")
	if v != "hello world" {
		t.Errorf("Parse altered the key: %q", v)
	}
	if c.Format("") != `""` {
		t.Errorf("Format(\"\") = %q", c.Format(""))
	}
	if !c.Less("apple", "banana") {
		t.Errorf("Less(apple, banana) = false")
	}

	rng := rand.New(rand.NewSource(1))
	if got := c.Random(rng); len(got) != defaultStringLength {
		t.Errorf("Random() length = %d; want %d", len(got), defaultStringLength)
	}
	if got := (StringCodec{Length: 3}).Random(rng); len(got) != 3 || strings.Trim(got, "abcdefghijklmnopqrstuvwxyz") != "" {
		t.Errorf("Random() = %q; want 3 lowercase letters", got)
	}
}

func TestFloatCodec(t *testing.T) {
	c := FloatCodec{}
	v, err := c.Parse("2.5")
	if err != nil || v != 2.5 {
		t.Fatalf("Parse(2.5) = %v, %v", v, err)
	}
	if c.Format(0.1) != "0.1" {
		t.Errorf("Format(0.1) = %q", c.Format(0.1))
	}

	_, err = c.Parse("NaN")
	if !errors.Is(err, ErrNaN) {
		t.Errorf("Parse(NaN) error = %v; want ErrNaN", err)
	}
	if _, err := c.Parse("abc"); err == nil {
		t.Errorf("Parse(abc) expected error")
	}
	if _, err := c.Parse("-Inf"); err != nil {
		t.Errorf("Parse(-Inf) should be accepted: %v", err)
	}
}
