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
	"github.com/VincentLin78/glow/internal/opts"
)

func buildPipelineGraph(g *graph.Graph) *graph.Save {
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)
	tr := graph.NewTranspose(g, "tr", p, []int{0, 2, 3, 1})
	rl := graph.NewRelu(g, "rl", tr)
	graph.NewRelu(g, "dead", p) // unused, DCE should reclaim
	return graph.NewSave(g, "out", rl)
}

func TestRunModeNoneLeavesGraphUntouched(t *testing.T) {
	g := graph.NewGraph()
	buildPipelineGraph(g)
	before := g.Fingerprint()

	Run(g, ModeNone, opts.GetDefaultOptions())

	require.Equal(t, before, g.Fingerprint())
}

func TestRunInferModeFoldsAndCleansUp(t *testing.T) {
	g := graph.NewGraph()
	buildPipelineGraph(g)

	Run(g, ModeInfer, opts.GetDefaultOptions())

	for _, n := range g.Nodes() {
		require.NotEqual(t, graph.KindBatchNorm, n.Kind(), "no BatchNorm existed in this graph so none should appear after folding")
		if n.Kind() == graph.KindSave {
			continue
		}
		require.True(t, n.HasUsers(), "%s survived the pipeline without a user", n.Name())
	}
}

func TestRunTrainModeSkipsBatchNormFold(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 2, 4, 4))
	p := graph.NewPlaceholder(g, "p", v)

	filter := graph.NewVariable("filter", f32(2, 2))
	bias := graph.NewVariable("bias", f32(2))
	cv := graph.NewConvolution(g, "cv", p, filter, bias, []int{2, 2}, []int{1, 1}, []int{0, 0}, f32(1, 2, 4, 4))

	scale := graph.NewVariable("scale", f32(2))
	bnBias := graph.NewVariable("bnBias", f32(2))
	mean := graph.NewVariable("mean", f32(2))
	variance := graph.NewVariable("variance", f32(2))
	bn := graph.NewBatchNorm(g, "bn", cv, scale, bnBias, mean, variance, 1, 0, 0.1)
	graph.NewSave(g, "out", bn)

	Run(g, ModeTrain, opts.GetDefaultOptions())

	stillThere := false
	for _, n := range g.Nodes() {
		if n == bn {
			stillThere = true
		}
	}
	require.True(t, stillThere, "Train mode must not fold BatchNorm away")
}

func TestRunWithExtraSinkTransposeRunsStillConverges(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(1, 3, 8, 8))
	p := graph.NewPlaceholder(g, "p", v)
	tr1 := graph.NewTranspose(g, "tr1", p, []int{0, 2, 3, 1})
	rl := graph.NewRelu(g, "rl", tr1)
	tr2 := graph.NewTranspose(g, "tr2", rl, []int{0, 3, 1, 2})
	save := graph.NewSave(g, "out", tr2)

	o := opts.GetDefaultOptions()
	o.SinkTransposeRuns = 3

	Run(g, ModeInfer, o)

	surviving, ok := save.Input().(*graph.Relu)
	require.True(t, ok, "the Relu itself is not eligible for removal; only the transpose pair around it annihilates")
	require.Equal(t, p, surviving.Input(), "running sink-transpose more than once on an already-converged graph must not undo the annihilation")
}
