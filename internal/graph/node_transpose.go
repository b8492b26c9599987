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

// Transpose permutes the axes of its input according to Shuffle, a
// bijection on [0..rank).
type Transpose struct {
	base
	Shuffle []int
}

// NewTranspose creates a Transpose(shuffle) <- x node and appends it to g.
// The output type is x's type with Shape permuted by shuffle.
func NewTranspose(g *Graph, name string, x Value, shuffle []int) *Transpose {
	t := &Transpose{
		base:    base{name: name, typ: valueType(x).Transposed(shuffle), inputs: make([]Value, 1)},
		Shuffle: append([]int(nil), shuffle...),
	}
	SetInput(t, 0, x)
	g.AddNode(t)
	return t
}

func (t *Transpose) Kind() NodeKind  { return KindTranspose }
func (t *Transpose) Inputs() []Value { return t.inputsSlice() }
func (t *Transpose) Input() Value    { return t.inputsSlice()[0] }
func (*Transpose) isNode()           {}
