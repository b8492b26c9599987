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

// Convolution applies a channel-major filter plus a per-channel bias. Filter and Bias are
// input edges (slots 1-2), not bare pointers, for the same use-list reason
// as BatchNorm's parameters.
type Convolution struct {
	base
	Kernel []int
	Stride []int
	Pad    []int
}

// NewConvolution creates a Convolution node and appends it to g. outType
// is supplied by the caller.
func NewConvolution(g *Graph, name string, x Value, filter, bias *Variable, kernel, stride, pad []int, outType TensorType) *Convolution {
	c := &Convolution{
		base:   base{name: name, typ: outType, inputs: make([]Value, 3)},
		Kernel: kernel,
		Stride: stride,
		Pad:    pad,
	}
	SetInput(c, 0, x)
	SetInput(c, 1, filter)
	SetInput(c, 2, bias)
	g.AddNode(c)
	return c
}

func (c *Convolution) Kind() NodeKind  { return KindConvolution }
func (c *Convolution) Inputs() []Value { return c.inputsSlice() }
func (c *Convolution) Input() Value    { return c.inputsSlice()[0] }
func (c *Convolution) Filter() *Variable {
	return c.inputsSlice()[1].(*Variable)
}
func (c *Convolution) Bias() *Variable {
	return c.inputsSlice()[2].(*Variable)
}
func (*Convolution) isNode() {}
