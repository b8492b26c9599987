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

import (
	"fmt"

	"github.com/VincentLin78/glow/internal/backend"
)

// InvariantError occurs when a rewrite's preconditions are not merely
// unmet but
// actively violated: a Concat with <=1 inputs, a permutation-size
// mismatch between paired transposes, an unreachable variant in a closed
// switch. These signal bugs in the graph builder or in the optimizer
// itself; Optimize does not attempt to recover from one, it recovers the
// panic into this error so library callers can decide what "abort" means
// for them (tests assert on it; cmd/graphopt-dump logs it and exits).
type InvariantError struct {
	Pass   string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("graphopt: invariant violated in %s: %s", e.Pass, e.Reason)
}

// ConfigError occurs when the caller asks for something the current
// build/host cannot provide — requesting a backend kind that isn't
// available. It is an alias for
// internal/backend's type so callers can type-assert on it without
// importing an internal package.
type ConfigError = backend.ConfigError
