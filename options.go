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

package glow

import "github.com/VincentLin78/glow/internal/opts"

// Option is the property setter function for opts.Options, in the shape
// of the teacher's frugal.Option / internal/opts pairing.
type Option func(*opts.Options)

// WithMaxDCEIterations sets the multiplier for DCE's worklist cap: a DCE
// call that dequeues more than (node count + 1) * n nodes treats that
// non-convergence as an invariant violation, and n == 0 disables the
// cap. The default, sourced from the GRAPHOPT_MAX_DCE_ITERATIONS
// environment variable, is generous enough that well-formed graphs never
// come close to it.
func WithMaxDCEIterations(n int) Option {
	if n < 0 {
		panic("graphopt: invalid max DCE iterations")
	}
	return func(o *opts.Options) { o.MaxDCEIterations = n }
}

// WithSinkTransposeRuns controls how many times Sink-Transpose's single
// linear pass runs within one Optimize call. The default is 1, 's literal behavior.
func WithSinkTransposeRuns(n int) Option {
	if n < 1 {
		panic("graphopt: invalid sink-transpose run count")
	}
	return func(o *opts.Options) { o.SinkTransposeRuns = n }
}
