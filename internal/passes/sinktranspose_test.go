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

func TestSinkTransposeAnnihilatesInversePair(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)

	tr1 := graph.NewTranspose(g, "tr1", p, []int{0, 2, 3, 1})   // NHWC
	tr2 := graph.NewTranspose(g, "tr2", tr1, []int{0, 3, 1, 2}) // back to NCHW
	save := graph.NewSave(g, "out", tr2)

	changed := SinkTranspose{}.Apply(g)
	require.True(t, changed)
	require.Equal(t, p, save.Input(), "the two inverse transposes should have annihilated, leaving Save reading p directly")
}

func TestSinkTransposeBelowConcatWhenAllBranchesShareShuffle(t *testing.T) {
	g := graph.NewGraph()
	v1 := graph.NewVariable("v1", f32(1, 3, 8, 8))
	v2 := graph.NewVariable("v2", f32(1, 3, 8, 8))
	p1 := graph.NewPlaceholder(g, "p1", v1)
	p2 := graph.NewPlaceholder(g, "p2", v2)

	shuffle := []int{0, 2, 3, 1}
	tr1 := graph.NewTranspose(g, "tr1", p1, shuffle)
	tr2 := graph.NewTranspose(g, "tr2", p2, shuffle)

	concatOutType := f32(1, 8, 8, 6)
	cn := graph.NewConcat(g, "cn", []graph.Value{tr1, tr2}, 3, concatOutType)
	graph.NewSave(g, "out", cn)

	changed := SinkTranspose{}.Apply(g)
	require.True(t, changed)

	var survivingTranspose *graph.Transpose
	for _, n := range g.Nodes() {
		if tr, ok := n.(*graph.Transpose); ok && tr.HasUsers() {
			survivingTranspose = tr
		}
	}
	require.NotNil(t, survivingTranspose, "a single Transpose should now sit above the rewritten Concat")

	newConcat, ok := survivingTranspose.Input().(*graph.Concat)
	require.True(t, ok, "the sunk Concat should feed directly into the surviving Transpose")
	require.Equal(t, shuffle[3], newConcat.Dim, "the rewritten Concat's dim should be shuffle[originalDim]")
	require.Equal(t, []graph.Value{p1, p2}, newConcat.Inputs(), "the rewritten Concat should consume the pre-transpose values directly")
}

func TestSinkTransposeBailsOutWhenArithmeticShufflesDiffer(t *testing.T) {
	g := graph.NewGraph()
	v1 := graph.NewVariable("v1", f32(1, 3, 8, 8))
	v2 := graph.NewVariable("v2", f32(1, 3, 8, 8))
	p1 := graph.NewPlaceholder(g, "p1", v1)
	p2 := graph.NewPlaceholder(g, "p2", v2)

	tr1 := graph.NewTranspose(g, "tr1", p1, []int{0, 2, 3, 1})
	tr2 := graph.NewTranspose(g, "tr2", p2, []int{0, 1, 3, 2})

	an := graph.NewArithmetic(g, "an", tr1, tr2, graph.ArithAdd)
	graph.NewSave(g, "out", an)

	changed := SinkTranspose{}.Apply(g)
	require.False(t, changed, "mismatched permutations on the two arithmetic operands must not be sunk")

	require.Equal(t, tr1, an.LHS())
	require.Equal(t, tr2, an.RHS())
}

func TestSinkTransposeBelowRelu(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)
	shuffle := []int{0, 2, 3, 1}
	tr := graph.NewTranspose(g, "tr", p, shuffle)
	rl := graph.NewRelu(g, "rl", tr)
	save := graph.NewSave(g, "out", rl)

	changed := SinkTranspose{}.Apply(g)
	require.True(t, changed)

	newTR, ok := save.Input().(*graph.Transpose)
	require.True(t, ok, "Transpose should now sit above Relu")
	require.Equal(t, shuffle, newTR.Shuffle)
	newRelu, ok := newTR.Input().(*graph.Relu)
	require.True(t, ok)
	require.Equal(t, p, newRelu.Input())
}
