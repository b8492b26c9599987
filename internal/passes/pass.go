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

// Package passes implements the five-pass pipeline described in :
// Sink-Transpose, Optimize-Pool, DCE, BatchNorm-Fold, DCE again. Each pass
// is a single linear scan over the node list with local pattern matching;
// there is no cross-pass analysis and no worklist persisted between
// passes beyond the fixed-point iteration DCE performs on its
// own.
//
// The shape of this package — a Pass interface plus one file per pass —
// follows the teacher's internal/atm/ssa package (optimize.go's Pass
// interface and _passes table, pass_deadcode.go, pass_tdce.go,
// pass_copyelim.go), adapted from an SSA register-CFG to a use-list DAG
// of tensor operations.
package passes

import "github.com/VincentLin78/glow/internal/graph"

// Pass is implemented by every pass except DCE: SinkTranspose,
// OptimizePool and BatchNormFold. Apply reports whether it changed the
// graph; Run (pipeline.go) does not consult that result and runs each
// follow-up DCE unconditionally. DCE itself takes an extra
// maxIterations argument (dce.go) rather than satisfying this interface,
// since it is the only pass whose Apply needs a caller-supplied tunable.
type Pass interface {
	Apply(g *graph.Graph) bool
}
