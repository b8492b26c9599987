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

import "fmt"

// ElemKind is the element type of a tensor. The set is closed; BatchNorm
// folding (internal/passes/batchnormfold.go) only ever exercises Float32,
// but Concat/Arithmetic/Save are not restricted to floating-point data,
// so the other kinds exist to keep Inputs/Type meaningful for graphs that
// mix dtypes.
type ElemKind uint8

const (
	Float32 ElemKind = iota
	Int32
	Bool
)

func (k ElemKind) String() string {
	switch k {
	case Float32:
		return "f32"
	case Int32:
		return "i32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// TensorType is shape + element type. It is immutable once a node is
// constructed: rewrites that change a node's shape must build a
// replacement node with the new type rather than mutate one in place.
type TensorType struct {
	Shape []int
	Elem  ElemKind
}

// Rank is the number of dimensions.
func (t TensorType) Rank() int {
	return len(t.Shape)
}

// Size is the element count, the product of Shape.
func (t TensorType) Size() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

func (t TensorType) String() string {
	return fmt.Sprintf("%v:%s", t.Shape, t.Elem)
}

// Transposed returns the type obtained by permuting Shape with shuffle,
// i.e. the output type of Transpose(shuffle) applied to a value of type t.
func (t TensorType) Transposed(shuffle []int) TensorType {
	shape := make([]int, len(shuffle))
	for i, s := range shuffle {
		shape[i] = t.Shape[s]
	}
	return TensorType{Shape: shape, Elem: t.Elem}
}
