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

// Relu is the element-wise rectified-linear activation: output = max(0,
// input), shape-preserving.
type Relu struct {
	base
}

// NewRelu creates a Relu <- x node and appends it to g.
func NewRelu(g *Graph, name string, x Value) *Relu {
	r := &Relu{base: base{name: name, typ: valueType(x), inputs: make([]Value, 1)}}
	SetInput(r, 0, x)
	g.AddNode(r)
	return r
}

func (r *Relu) Kind() NodeKind  { return KindRelu }
func (r *Relu) Inputs() []Value { return r.inputsSlice() }
func (r *Relu) Input() Value    { return r.inputsSlice()[0] }
func (*Relu) isNode()           {}
