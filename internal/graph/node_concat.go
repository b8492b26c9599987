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

// Concat joins its inputs along Dim. The original source asserts
// len(inputs) > 1 as a programming-error check (GraphOptimizer.cpp's
// OptimizeBatchNorm/SinkTranspose concat handling); NewConcat enforces the
// same invariant.
type Concat struct {
	base
	Dim int
}

// NewConcat creates a Concat(dim) node over inputs and appends it to g.
// It panics if fewer than two inputs are given — this is a
// programming-error assertion, not a recoverable condition.
func NewConcat(g *Graph, name string, inputs []Value, dim int, outType TensorType) *Concat {
	if len(inputs) <= 1 {
		panic("graph: Concat requires more than one input")
	}
	c := &Concat{
		base: base{name: name, typ: outType, inputs: make([]Value, len(inputs))},
		Dim:  dim,
	}
	for i, in := range inputs {
		SetInput(c, i, in)
	}
	g.AddNode(c)
	return c
}

func (c *Concat) Kind() NodeKind  { return KindConcat }
func (c *Concat) Inputs() []Value { return c.inputsSlice() }
func (*Concat) isNode()           {}
