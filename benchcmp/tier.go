// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import "fmt"

// A Tier is a discrete qualitative interpretation of a speedup ratio
// for human-facing reporting.
type Tier int

const (
	// ASlower means candidate A was in fact the slower one
	// (speedup below 1). The comparison still succeeds; callers
	// decide how to present the upset.
	ASlower Tier = iota
	// NoDifference means the two means were identical.
	NoDifference
	// ModerateAdvantage covers speedups above 1x, up to and
	// including 2x.
	ModerateAdvantage
	// SignificantAdvantage covers speedups above 2x.
	SignificantAdvantage
)

// cutoffs maps speedup ranges to tiers. The table is ordered and
// evaluated top to bottom; the first match wins, so a speedup of
// exactly 2 falls in ModerateAdvantage. These are fixed constants of
// the report format, not tunables: callers that need different
// cutoffs must classify the raw Speedup field themselves.
var cutoffs = []struct {
	above float64 // exclusive lower bound on speedup
	tier  Tier
}{
	{2, SignificantAdvantage},
	{1, ModerateAdvantage},
}

func classify(speedup float64) Tier {
	for _, c := range cutoffs {
		if speedup > c.above {
			return c.tier
		}
	}
	if speedup == 1 {
		return NoDifference
	}
	return ASlower
}

func (t Tier) String() string {
	switch t {
	case ASlower:
		return "A slower"
	case NoDifference:
		return "no difference"
	case ModerateAdvantage:
		return "moderate advantage"
	case SignificantAdvantage:
		return "significant advantage"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}
