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

// NodeKind discriminates the closed variant set. New operators require
// extending this enum and, where behaviorally relevant, the sink/fold
// rules in internal/passes.
type NodeKind uint8

const (
	KindPlaceholder NodeKind = iota
	KindConvolution
	KindBatchNorm
	KindPool
	KindRelu
	KindTranspose
	KindConcat
	KindArithmetic
	KindSave
)

func (k NodeKind) String() string {
	switch k {
	case KindPlaceholder:
		return "Placeholder"
	case KindConvolution:
		return "Convolution"
	case KindBatchNorm:
		return "BatchNormalization"
	case KindPool:
		return "Pool"
	case KindRelu:
		return "Relu"
	case KindTranspose:
		return "Transpose"
	case KindConcat:
		return "Concat"
	case KindArithmetic:
		return "Arithmetic"
	case KindSave:
		return "Save"
	default:
		return "Unknown"
	}
}

// Node is implemented by every operation-node variant. The set is closed
// (see NodeKind); callers discriminate with Kind() or with a type
// assertion or type switch to the concrete variant.
type Node interface {
	Value
	Name() string
	Type() TensorType
	Kind() NodeKind
	Inputs() []Value
	isNode()

	// inputsSlice/setInputSlot back SetInput (edge.go), the single helper
	// that sets or clears an input edge.
	inputsSlice() []Value
	setInputSlot(slot int, v Value)
}
