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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VincentLin78/glow/internal/graph"
)

func TestOptimizePoolSwapsMaxPoolBelowSoleUseRelu(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)
	rl := graph.NewRelu(g, "rl", p)
	poolOutType := f32(1, 3, 4, 4)
	pl := graph.NewPool(g, "pl", rl, graph.PoolMax, []int{2, 2}, []int{2, 2}, []int{0, 0}, poolOutType)
	save := graph.NewSave(g, "out", pl)

	changed := OptimizePool{}.Apply(g)
	require.True(t, changed)

	newRelu, ok := save.Input().(*graph.Relu)
	require.True(t, ok, "Relu should now sit above Pool")
	newPool, ok := newRelu.Input().(*graph.Pool)
	require.True(t, ok)
	require.Equal(t, p, newPool.Input())
	require.Equal(t, poolOutType, newRelu.Type(), "Relu is shape-preserving so its type matches the old pool's output type")
}

func TestOptimizePoolLeavesAvgPoolAlone(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)
	rl := graph.NewRelu(g, "rl", p)
	pl := graph.NewPool(g, "pl", rl, graph.PoolAvg, []int{2, 2}, []int{2, 2}, []int{0, 0}, f32(1, 3, 4, 4))
	graph.NewSave(g, "out", pl)

	changed := OptimizePool{}.Apply(g)
	require.False(t, changed, "the commuting equivalence only holds for max pooling")
	require.Equal(t, rl, pl.Input())
}

func TestOptimizePoolSuppressedWhenReluHasMultipleUsers(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)
	rl := graph.NewRelu(g, "rl", p)
	pl := graph.NewPool(g, "pl", rl, graph.PoolMax, []int{2, 2}, []int{2, 2}, []int{0, 0}, f32(1, 3, 4, 4))
	graph.NewSave(g, "out1", pl)
	graph.NewSave(g, "out2", rl) // second consumer of rl

	changed := OptimizePool{}.Apply(g)
	require.False(t, changed, "swapping would duplicate Relu's work since it has more than one consumer")
	require.Equal(t, rl, pl.Input())
}
