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

// ArithmeticMode discriminates the binary elementwise operations.
type ArithmeticMode uint8

const (
	ArithAdd ArithmeticMode = iota
	ArithMul
	ArithSub
	ArithDiv
)

func (m ArithmeticMode) String() string {
	switch m {
	case ArithAdd:
		return "Add"
	case ArithMul:
		return "Mul"
	case ArithSub:
		return "Sub"
	case ArithDiv:
		return "Div"
	default:
		return "Unknown"
	}
}

// Arithmetic is a binary elementwise operation over LHS and RHS, which
// must share a shape.
type Arithmetic struct {
	base
	Mode ArithmeticMode
}

// NewArithmetic creates an Arithmetic(mode, lhs, rhs) node and appends it
// to g.
func NewArithmetic(g *Graph, name string, lhs, rhs Value, mode ArithmeticMode) *Arithmetic {
	a := &Arithmetic{
		base: base{name: name, typ: valueType(lhs), inputs: make([]Value, 2)},
		Mode: mode,
	}
	SetInput(a, 0, lhs)
	SetInput(a, 1, rhs)
	g.AddNode(a)
	return a
}

func (a *Arithmetic) Kind() NodeKind  { return KindArithmetic }
func (a *Arithmetic) Inputs() []Value { return a.inputsSlice() }
func (a *Arithmetic) LHS() Value      { return a.inputsSlice()[0] }
func (a *Arithmetic) RHS() Value      { return a.inputsSlice()[1] }
func (*Arithmetic) isNode()           {}
