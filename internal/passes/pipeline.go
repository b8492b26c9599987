/*
 * Copyright 2026 Glow Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package passes

import (
	"github.com/VincentLin78/glow/internal/graph"
	"github.com/VincentLin78/glow/internal/opts"
)

// Mode mirrors the three OptimizationMode values.
// Defined here (not in the root package) so internal/passes has no
// import-cycle back to the public API; the root package's
// glow.OptimizationMode is a separate type that converts into this one
// through its internal() method (mode.go).
type Mode uint8

const (
	ModeNone Mode = iota
	ModeInfer
	ModeTrain
)

// Run executes the fixed pipeline described by :
//
//	mode == None: no-op.
//	otherwise: Sink-Transpose, Optimize-Pool, DCE.
//	mode == Infer: additionally BatchNorm-Fold, DCE.
//
// Sink-Transpose runs opts.SinkTransposeRuns times per call; see DESIGN.md for why this module
// makes that a knob instead of hardcoding the single-pass behavior
// flags as possibly incomplete.
func Run(g *graph.Graph, mode Mode, o opts.Options) {
	if mode == ModeNone {
		return
	}

	sink := SinkTranspose{}
	for i := 0; i < o.SinkTransposeRuns; i++ {
		sink.Apply(g)
	}

	OptimizePool{}.Apply(g)
	DCE{}.Apply(g, o.MaxDCEIterations)

	if mode == ModeInfer {
		BatchNormFold{}.Apply(g)
		DCE{}.Apply(g, o.MaxDCEIterations)
	}
}
