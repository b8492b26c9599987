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

// SinkTranspose pushes axis-permutation nodes toward the graph sinks so
// that paired permutations annihilate. It is a single linear
// pass over the node list in its current order; it does not revisit nodes
// it just created, and it does not loop to a fixed point internally —
// chained sinking opportunities across more than one Transpose boundary
// need another run of the pass (Run repeats it opts.SinkTransposeRuns
// times) or a second Optimize call. Every rule follows GraphOptimizer.cpp's SinkTranspose
// function rule for rule.
type SinkTranspose struct{}

func (SinkTranspose) Apply(g *graph.Graph) bool {
	changed := false

	for _, n := range g.Nodes() {
		switch node := n.(type) {

		case *graph.BatchNorm:
			if sinkTransposeBelowBatchNorm(g, node) {
				changed = true
			}

		case *graph.Relu:
			if sinkTransposeBelowRelu(g, node) {
				changed = true
			}

		case *graph.Transpose:
			if mergeTransposePair(node) {
				changed = true
			}

		case *graph.Arithmetic:
			if sinkTransposeBelowArithmetic(g, node) {
				changed = true
			}

		case *graph.Concat:
			if sinkTransposeBelowConcat(g, node) {
				changed = true
			}
		}
	}

	return changed
}

// sinkTransposeBelowBatchNorm rewrites BatchNorm(channelIdx=i) <-
// Transpose(σ) <- X into Transpose(σ) <- BatchNorm(channelIdx=σ[i], same
// params) <- X.
func sinkTransposeBelowBatchNorm(g *graph.Graph, bn *graph.BatchNorm) bool {
	tr, ok := bn.Input().(*graph.Transpose)
	if !ok {
		return false
	}

	newChannelIdx := tr.Shuffle[bn.ChannelIdx]
	newBN := graph.NewBatchNorm(g, bn.Name(), tr.Input(), bn.Scale(), bn.Bias(), bn.Mean(), bn.Var(), newChannelIdx, bn.Epsilon, bn.Momentum)
	newTR := graph.NewTranspose(g, tr.Name(), newBN, tr.Shuffle)

	graph.ReplaceAllUsesOfWith(bn, newTR)
	return true
}

// sinkTransposeBelowRelu rewrites Relu <- Transpose(σ) <- X into
// Transpose(σ) <- Relu <- X.
func sinkTransposeBelowRelu(g *graph.Graph, rl *graph.Relu) bool {
	tr, ok := rl.Input().(*graph.Transpose)
	if !ok {
		return false
	}

	newRelu := graph.NewRelu(g, rl.Name(), tr.Input())
	newTR := graph.NewTranspose(g, tr.Name(), newRelu, tr.Shuffle)

	graph.ReplaceAllUsesOfWith(rl, newTR)
	return true
}

// mergeTransposePair drops Transpose(σ1) <- Transpose(σ2) <- X down to X
// when σ1∘σ2 is the identity. Any other composition is
// left alone — general composition is not performed in this pass.
func mergeTransposePair(tr1 *graph.Transpose) bool {
	tr2, ok := tr1.Input().(*graph.Transpose)
	if !ok {
		return false
	}

	if len(tr1.Shuffle) != len(tr2.Shuffle) {
		panic("graphopt: Sink-Transpose: mismatched permutation sizes between paired transposes")
	}

	if !isIdentityShuffle(tr1.Shuffle, tr2.Shuffle) {
		return false
	}

	graph.ReplaceAllUsesOfWith(tr1, tr2.Input())
	return true
}

// sinkTransposeBelowArithmetic rewrites Arithmetic(op, Transpose(σ) <- L,
// Transpose(σ) <- R) into Transpose(σ) <- Arithmetic(op, L, R), but only
// when both sides are Transposes sharing an identical σ.
func sinkTransposeBelowArithmetic(g *graph.Graph, an *graph.Arithmetic) bool {
	lhs, lok := an.LHS().(*graph.Transpose)
	rhs, rok := an.RHS().(*graph.Transpose)
	if !lok || !rok {
		return false
	}
	if !sameShuffle(lhs.Shuffle, rhs.Shuffle) {
		return false
	}

	newAN := graph.NewArithmetic(g, an.Name(), lhs.Input(), rhs.Input(), an.Mode)
	newTR := graph.NewTranspose(g, lhs.Name(), newAN, lhs.Shuffle)

	graph.ReplaceAllUsesOfWith(an, newTR)
	return true
}

// sinkTransposeBelowConcat rewrites Concat(dim=d, [Tσ<-Xi, ...]) into
// Transpose(σ) <- Concat(dim=σ[d], [Xi, ...]) when every input is a
// Transpose and all of them share the same σ.
func sinkTransposeBelowConcat(g *graph.Graph, cn *graph.Concat) bool {
	inputs := cn.Inputs()
	if len(inputs) <= 1 {
		panic("graphopt: Sink-Transpose: Concat with <=1 inputs")
	}

	transposes := make([]*graph.Transpose, len(inputs))
	underlying := make([]graph.Value, len(inputs))

	for i, in := range inputs {
		tr, ok := in.(*graph.Transpose)
		if !ok {
			return false
		}
		transposes[i] = tr
		underlying[i] = tr.Input()
	}

	first := transposes[0]
	for _, tr := range transposes[1:] {
		if !sameShuffle(tr.Shuffle, first.Shuffle) {
			return false
		}
	}

	newChannelIdx := first.Shuffle[cn.Dim]
	outType := cn.Type().Transposed(inversePermutation(first.Shuffle))
	newCN := graph.NewConcat(g, cn.Name(), underlying, newChannelIdx, outType)
	newTR := graph.NewTranspose(g, first.Name(), newCN, first.Shuffle)

	graph.ReplaceAllUsesOfWith(cn, newTR)
	return true
}
