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
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/VincentLin78/glow/internal/graph"
)

// BatchNormFold merges BatchNorm <- Convolution <- X into a single
// Convolution whenever the convolution has exactly one user.
// Only run in Infer mode — Train mode keeps BatchNorm because
// its running statistics are still being updated.
type BatchNormFold struct{}

func (BatchNormFold) Apply(g *graph.Graph) bool {
	changed := false

	for _, n := range g.Nodes() {
		bn, ok := n.(*graph.BatchNorm)
		if !ok {
			continue
		}
		if foldBatchNormIntoConv(bn) {
			changed = true
		}
	}

	return changed
}

func foldBatchNormIntoConv(bn *graph.BatchNorm) bool {
	cv, ok := bn.Input().(*graph.Convolution)
	if !ok {
		return false
	}

	// A convolution feeding more than one consumer can't have its weights
	// rewritten without silently changing those other consumers' output
	//.
	if !cv.HasOneUse() {
		return false
	}

	A, B := batchNormAffineCoefficients(bn)

	filter := cv.Filter().Handle()
	bias := cv.Bias().Handle()

	// Filter layout is channel-major: axis 0 indexes the output channel
	//. If that layout ever changes this pass must be
	// revisited — asserted by comment, not by a runtime check.
	for i := 0; i < filter.Size(); i++ {
		c := filter.GetDimForPtr(0, i)
		filter.SetRaw(i, filter.Raw(i)*float32(A[c]))
	}

	for i := 0; i < bias.Size(); i++ {
		c := bias.GetDimForPtr(0, i)
		bias.SetRaw(i, bias.Raw(i)*float32(A[c])+float32(B[c]))
	}

	graph.ReplaceAllUsesOfWith(bn, cv)
	return true
}

// batchNormAffineCoefficients computes the per-channel affine transform
// BatchNorm applies — y = A·x + B where A = γ/√(σ²+ε), B = β - μ·A — as two length-numChannels float64 slices, vectorized
// with gonum/floats rather than a scalar per-channel loop. Working in
// float64 here and truncating to float32 only at the point each filter/
// bias element is written keeps the reciprocal square root from
// compounding error across channels before it ever touches tensor data;
// numerical policy only constrains the filter/bias element
// arithmetic itself to the filter's element type.
func batchNormAffineCoefficients(bn *graph.BatchNorm) (A, B []float64) {
	scale := bn.Scale().Handle()
	bias := bn.Bias().Handle()
	mean := bn.Mean().Handle()
	variance := bn.Var().Handle()

	n := variance.Size()
	gamma := toFloat64(scale)
	beta := toFloat64(bias)
	mu := toFloat64(mean)
	varPlusEps := toFloat64(variance)

	floats.AddConst(float64(bn.Epsilon), varPlusEps)

	stdvar := make([]float64, n)
	for i, v := range varPlusEps {
		stdvar[i] = 1.0 / math.Sqrt(v)
	}

	A = make([]float64, n)
	floats.MulTo(A, gamma, stdvar)

	B = make([]float64, n)
	floats.MulTo(B, mu, A)
	floats.SubTo(B, beta, B)

	return A, B
}

func toFloat64(h *graph.Handle) []float64 {
	out := make([]float64, h.Size())
	for i := range out {
		out[i] = float64(h.Raw(i))
	}
	return out
}
