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

// PoolMode discriminates the two pooling reductions.
type PoolMode uint8

const (
	PoolMax PoolMode = iota
	PoolAvg
)

func (m PoolMode) String() string {
	if m == PoolMax {
		return "Max"
	}
	return "Avg"
}

// Pool is a spatial Max or Avg pooling window.
type Pool struct {
	base
	Mode   PoolMode
	Kernel []int
	Stride []int
	Pad    []int
}

// NewPool creates a Pool node over x and appends it to g. The caller
// supplies outType explicitly since treats shape inference as
// given, not performed by the optimizer.
func NewPool(g *Graph, name string, x Value, mode PoolMode, kernel, stride, pad []int, outType TensorType) *Pool {
	p := &Pool{
		base:   base{name: name, typ: outType, inputs: make([]Value, 1)},
		Mode:   mode,
		Kernel: kernel,
		Stride: stride,
		Pad:    pad,
	}
	SetInput(p, 0, x)
	g.AddNode(p)
	return p
}

func (p *Pool) Kind() NodeKind  { return KindPool }
func (p *Pool) Inputs() []Value { return p.inputsSlice() }
func (p *Pool) Input() Value    { return p.inputsSlice()[0] }
func (*Pool) isNode()           {}
