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

package graph

// BatchNorm normalizes its input along ChannelIdx using four per-channel
// parameter variables — scale (γ), bias (β), mean (μ), var (σ²) — plus a
// scalar epsilon and momentum. All four parameters are modeled
// as input edges (slots 1-4) rather than bare pointers, so that a
// BatchNorm node's existence keeps those variables' use-lists non-empty
// for DCE (internal/passes/dce.go) the same way a Convolution's Filter/
// Bias does.
type BatchNorm struct {
	base
	ChannelIdx int
	Epsilon    float32
	Momentum   float32
}

// NewBatchNorm creates a BatchNorm node and appends it to g.
func NewBatchNorm(g *Graph, name string, x Value, scale, bias, mean, variance *Variable, channelIdx int, epsilon, momentum float32) *BatchNorm {
	bn := &BatchNorm{
		base:       base{name: name, typ: valueType(x), inputs: make([]Value, 5)},
		ChannelIdx: channelIdx,
		Epsilon:    epsilon,
		Momentum:   momentum,
	}
	SetInput(bn, 0, x)
	SetInput(bn, 1, scale)
	SetInput(bn, 2, bias)
	SetInput(bn, 3, mean)
	SetInput(bn, 4, variance)
	g.AddNode(bn)
	return bn
}

func (bn *BatchNorm) Kind() NodeKind  { return KindBatchNorm }
func (bn *BatchNorm) Inputs() []Value { return bn.inputsSlice() }
func (bn *BatchNorm) Input() Value    { return bn.inputsSlice()[0] }
func (bn *BatchNorm) Scale() *Variable {
	return bn.inputsSlice()[1].(*Variable)
}
func (bn *BatchNorm) Bias() *Variable {
	return bn.inputsSlice()[2].(*Variable)
}
func (bn *BatchNorm) Mean() *Variable {
	return bn.inputsSlice()[3].(*Variable)
}
func (bn *BatchNorm) Var() *Variable {
	return bn.inputsSlice()[4].(*Variable)
}
func (*BatchNorm) isNode() {}
