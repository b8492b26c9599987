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

import "github.com/VincentLin78/glow/internal/graph"

// OptimizePool swaps Pool[Max] <- Relu <- X to Relu <- Pool[Max] <- X
// whenever Relu's only user is the pool. Max over a
// non-negative-clamped window equals clamp of the max, so the two
// operators commute; performing Relu after the (smaller) pooled output
// shrinks the buffer Relu operates on and frees the pool's input buffer
// for reuse.
type OptimizePool struct{}

func (OptimizePool) Apply(g *graph.Graph) bool {
	changed := false

	for _, n := range g.Nodes() {
		pl, ok := n.(*graph.Pool)
		if !ok {
			continue
		}
		if swapPoolRelu(g, pl) {
			changed = true
		}
	}

	return changed
}

func swapPoolRelu(g *graph.Graph, pl *graph.Pool) bool {
	rl, ok := pl.Input().(*graph.Relu)
	if !ok {
		return false
	}

	// This equivalence only holds for max pooling.
	if pl.Mode != graph.PoolMax {
		return false
	}

	// Don't increase operation count: only fire when the pool is Relu's
	// sole consumer.
	if !rl.HasOneUse() {
		return false
	}

	// Relu is shape-preserving, so rl.Input() has exactly the shape pl used
	// to consume; the new Pool's output type is unchanged from the old
	// one's.
	newPool := graph.NewPool(g, pl.Name(), rl.Input(), pl.Mode, pl.Kernel, pl.Stride, pl.Pad, pl.Type())
	newRelu := graph.NewRelu(g, rl.Name(), newPool)

	graph.ReplaceAllUsesOfWith(pl, newRelu)
	return true
}
