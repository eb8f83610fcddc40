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

// Package avl is a height-balanced binary search tree keyed by a
// caller-supplied strict weak ordering.
//
// Insert, Erase and Find are O(log n) in the worst case. Duplicate inserts
// are ignored (first writer wins) and erasing an absent key does nothing.
//
// A Tree is not safe for concurrent use. Serialise Insert/Erase calls; readers
// may share a tree only while no writer is active.
package avl
