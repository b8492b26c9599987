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

import "github.com/VincentLin78/glow/internal/passes"

// OptimizationMode selects which passes Optimize runs.
type OptimizationMode int

const (
	None OptimizationMode = iota
	Infer
	Train
)

func (m OptimizationMode) String() string {
	switch m {
	case None:
		return "None"
	case Infer:
		return "Infer"
	case Train:
		return "Train"
	default:
		return "Unknown"
	}
}

func (m OptimizationMode) internal() passes.Mode {
	switch m {
	case None:
		return passes.ModeNone
	case Infer:
		return passes.ModeInfer
	case Train:
		return passes.ModeTrain
	default:
		panic("graphopt: unreachable OptimizationMode")
	}
}
