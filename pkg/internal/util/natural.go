// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// NaturalCompare compares two strings so that runs of digits are ordered
// by value: "club-2" sorts before "club-10". The result follows the
// convention of strings.Compare.
func NaturalCompare(a, b string) int {
	chunksA := chunkRegexp.FindAllString(a, -1)
	chunksB := chunkRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		x, xErr := strconv.Atoi(chunksA[i])
		y, yErr := strconv.Atoi(chunksB[i])

		switch {
		case xErr == nil && yErr == nil:
			if x != y {
				if x < y {
					return -1
				}
				return 1
			}

		default:
			if c := strings.Compare(chunksA[i], chunksB[i]); c != 0 {
				return c
			}
		}
	}

	switch {
	case len(chunksA) < len(chunksB):
		return -1
	case len(chunksA) > len(chunksB):
		return 1
	}

	// "a01" and "a1" have equal chunks, fall back to the raw text
	return strings.Compare(a, b)
}
