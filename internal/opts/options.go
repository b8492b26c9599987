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

package opts

// Options collects the tunables each Optimize call runs with. Zero value
// is meaningless; always obtain one through GetDefaultOptions.
type Options struct {
	// MaxDCEIterations scales the cap on DCE's worklist: one DCE call
	// panics once it has dequeued more than (node count + 1) *
	// MaxDCEIterations nodes, and 0 disables the cap. A well-formed graph
	// needs at most one dequeue per node; the cap exists only as a safety
	// valve against a malformed graph that would otherwise iterate
	// forever (it cannot — DCE strictly shrinks the node list — but the
	// cap makes that property an assertion rather than an assumption).
	MaxDCEIterations int

	// SinkTransposeRuns controls how many times Sink-Transpose's single
	// linear pass runs per Optimize call.
	// flags that a single pass can miss chained sinking opportunities
	// (three stacked transposes); running it more than once inside one
	// Optimize call is this module's resolution of that open question —
	// see DESIGN.md.
	SinkTransposeRuns int
}

// GetDefaultOptions returns the package defaults, seeded from environment
// variables at process start (see defaults.go).
func GetDefaultOptions() Options {
	return Options{
		MaxDCEIterations:  MaxDCEIterations,
		SinkTransposeRuns: SinkTransposeRuns,
	}
}
