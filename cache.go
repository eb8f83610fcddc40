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
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for ASCII tree drawings. A non-positive
// expiration falls back to 30 minutes.
func NewRenderCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = renderCacheExpiration
	}
	return cache.New(expiration, renderCacheCleanup)
}

// renderCacheKey identifies a tree shape. A BST is fully determined by its
// pre-order sequence, so kind plus pre-order is unique per shape.
func renderCacheKey(kind string, preOrder []string) string {
	return kind + "|" + strings.Join(preOrder, "\x1f")
}

func CacheRender(c *cache.Cache, key string, drawing string) {
	c.Set(key, drawing, cache.DefaultExpiration)
}

func GetRender(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// GetOrFillRender returns the cached drawing for key, calling draw and
// caching its result on a miss.
func GetOrFillRender(c *cache.Cache, key string, draw func() string) string {
	if drawing, ok := GetRender(c, key); ok {
		return drawing
	}
	drawing := draw()
	CacheRender(c, key, drawing)
	return drawing
}
