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

// Placeholder is a graph-internal leaf that gives a Variable reference a
// node-shaped presence on the producing end of an edge, so that "X" in the
// rewrite tables always has a Kind/Inputs to match on. It is
// not listed among node variants (Convolution, BatchNormalization,
// Pool, Relu, Transpose, Concat, Arithmetic, Save); it exists purely so
// callers can feed a Variable into a node constructor that expects a
// Value without special-casing "Variables are also producers" everywhere.
type Placeholder struct {
	base
	Var *Variable
}

// NewPlaceholder wraps v as a node of v's type whose single input edge
// is v itself, so v keeps a use while the placeholder is live.
func NewPlaceholder(g *Graph, name string, v *Variable) *Placeholder {
	p := &Placeholder{
		base: base{name: name, typ: v.Type(), inputs: make([]Value, 1)},
		Var:  v,
	}
	SetInput(p, 0, v)
	g.AddNode(p)
	return p
}

func (p *Placeholder) Kind() NodeKind  { return KindPlaceholder }
func (p *Placeholder) Inputs() []Value { return p.inputsSlice() }
func (*Placeholder) isNode()           {}
