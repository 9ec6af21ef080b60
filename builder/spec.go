// SPDX-License-Identifier: MIT
// Package: arenagraph/builder
//
// spec.go - textual generator specs for command-line use.
//
// Grammar:
//
//	isolated:N | path:N | cycle:N | star:N | complete:N | random:N:P:SEED
//
// Several specs may be joined with "+" to build disjoint blocks,
// e.g. "path:5+isolated:2" has 3 components. Each random block is seeded by
// its own SEED, so a block's edges do not depend on its neighbours.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// FromSpec parses a generator spec and builds the EdgeList it describes.
func FromSpec(spec string) (*EdgeList, error) {
	var cons []Constructor
	for _, part := range strings.Split(spec, "+") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		kind := fields[0]

		var simple func(int) Constructor
		switch kind {
		case "isolated":
			simple = Isolated
		case "path":
			simple = Path
		case "cycle":
			simple = Cycle
		case "star":
			simple = Star
		case "complete":
			simple = Complete
		case "random":
			if len(fields) != 4 {
				return nil, fmt.Errorf("FromSpec(%q): want random:N:P:SEED: %w", part, ErrUnknownKind)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("FromSpec(%q): n: %w", part, err)
			}
			p, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("FromSpec(%q): p: %w", part, err)
			}
			seed, err := strconv.ParseInt(fields[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("FromSpec(%q): seed: %w", part, err)
			}
			cons = append(cons, RandomSparseSeeded(n, p, seed))
			continue
		default:
			return nil, fmt.Errorf("FromSpec(%q): %w", part, ErrUnknownKind)
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("FromSpec(%q): want %s:N: %w", part, kind, ErrUnknownKind)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("FromSpec(%q): n: %w", part, err)
		}
		cons = append(cons, simple(n))
	}

	return Build(nil, cons...)
}
