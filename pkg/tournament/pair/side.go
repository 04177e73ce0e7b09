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

package pair

import "fmt"

// Side represents which player of a pair has won it, if any.
type Side int

const (
	None Side = iota
	Left
	Right
)

// Valid reports whether side is one of None, Left or Right.
func (side Side) Valid() bool {
	return side >= None && side <= Right
}

// Other returns the opposing side. None has no opposite.
func (side Side) Other() Side {
	switch side {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// String returns a string representation of the given Side.
func (side Side) String() string {
	switch side {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// ParseSide parses the output of Side.String. The shorthands l, r and n
// are accepted as well.
func ParseSide(s string) (Side, error) {
	switch s {
	case "none", "n", "":
		return None, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	default:
		return None, fmt.Errorf("parse side %q: %w", s, ErrInvalidSide)
	}
}

func (side Side) MarshalText() ([]byte, error) {
	if !side.Valid() {
		return nil, ErrInvalidSide
	}

	return []byte(side.String()), nil
}

func (side *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}

	*side = parsed
	return nil
}
