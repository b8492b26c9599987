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

// Package opts holds the optimizer's tunable knobs, in the shape of the
// teacher's internal/opts package: env-var-seeded package-level defaults,
// overridable per call through glow.Option.
package opts

import (
	"os"
	"strconv"
)

const (
	_DefaultMaxDCEIterations  = 64
	_DefaultSinkTransposeRuns = 1
)

var (
	MaxDCEIterations  = parseOrDefault("GRAPHOPT_MAX_DCE_ITERATIONS", _DefaultMaxDCEIterations, 0)
	SinkTransposeRuns = parseOrDefault("GRAPHOPT_SINK_TRANSPOSE_RUNS", _DefaultSinkTransposeRuns, 0)
)

func parseOrDefault(key string, def int, min int) int {
	env := os.Getenv(key)
	if env == "" {
		return def
	}
	val, err := strconv.Atoi(env)
	if err != nil {
		panic("graphopt: invalid value for " + key)
	}
	if val < min {
		panic("graphopt: value too small for " + key)
	}
	return val
}
