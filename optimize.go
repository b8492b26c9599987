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

// Package glow is the graph-rewrite engine of a neural-network
// compiler's optimizer: a pass-based rewriter that transforms a mutable
// DAG of typed tensor operations into a semantically equivalent but more
// efficient form prior to code generation.
//
// Optimize is the sole entry point. It runs a fixed pipeline — Sink-
// Transpose, Optimize-Pool, Dead-Code Elimination, and (Infer mode only)
// BatchNorm-Fold followed by DCE again — directly on the graph passed in;
// there is no separate IR and no persisted worklist between passes
//.
package glow

import (
	"github.com/VincentLin78/glow/internal/opts"
	"github.com/VincentLin78/glow/internal/passes"
)

// Optimize rewrites g in place according to mode:
//
//	None: returns immediately, g is untouched.
//	Infer: runs the full pipeline, folding BatchNorm into the preceding
//	 Convolution's weights.
//	Train: runs the layout/pool passes but leaves BatchNorm alone, since
//	 its running statistics are still being trained.
//
// Pattern non-match is the overwhelming common case and is silent, but a
// genuine invariant violation — a malformed Concat, mismatched transpose
// permutation sizes, an unreachable node variant — surfaces as a non-nil
// *InvariantError. Rewrites made by passes that ran before the violation
// are not undone, so g may be left partially rewritten when an error is
// returned.
func Optimize(g *Graph, mode OptimizationMode, options ...Option) (err error) {
	o := opts.GetDefaultOptions()
	for _, opt := range options {
		opt(&o)
	}

	defer func() {
		if r := recover(); r != nil {
			err = &InvariantError{Pass: "optimize", Reason: formatRecover(r)}
		}
	}()

	passes.Run(g, mode.internal(), o)
	return nil
}

func formatRecover(r interface{}) string {
	if e, ok := r.(error); ok {
		return e.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unknown panic"
}
