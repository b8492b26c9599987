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

import (
	"fmt"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

// Handle is a typed accessor to a Variable's element storage with
// multidimensional indexing. Storage is a flat row-major
// []float32; BatchNorm-Fold (internal/passes/batchnormfold.go) is the only
// pass that writes through a Handle, and it does so in the filter's
// element type numerical policy.
type Handle struct {
	shape []int
	data []float32
}

// NewHandle allocates a row-major buffer for shape. The backing slice is
// uninitialized (dirtmakeFloats skips the zero-fill malloc normally does)
// because callers always populate it immediately after — either from a
// loaded model's parameter data or, in tests, element-by-element — the
// same allocation discipline the teacher uses for per-request decode
// buffers in internal/reflect/xread.go.
func NewHandle(shape []int) *Handle {
	size := 1
	for _, d := range shape {
		size *= d
	}
	return &Handle{shape: shape, data: dirtmakeFloats(size)}
}

// dirtmakeFloats allocates n uninitialized float32s. dirtmake only ships a
// byte-slice constructor; re-slicing that buffer as float32 avoids an extra
// zero-fill pass over memory the caller is about to overwrite anyway.
func dirtmakeFloats(n int) []float32 {
	raw := dirtmake.Bytes(n*4, n*4)
	return unsafeFloat32s(raw)
}

// Shape is the handle's multidimensional extent.
func (h *Handle) Shape() []int {
	return h.shape
}

// Size is the total element count.
func (h *Handle) Size() int {
	return len(h.data)
}

// At returns the element at the given multidimensional index.
func (h *Handle) At(idx ...int) float32 {
	return h.data[h.linear(idx)]
}

// Set stores the element at the given multidimensional index.
func (h *Handle) Set(v float32, idx ...int) {
	h.data[h.linear(idx)] = v
}

// Raw returns the element at flat index i, in row-major storage order.
func (h *Handle) Raw(i int) float32 {
	return h.data[i]
}

// SetRaw stores the element at flat index i.
func (h *Handle) SetRaw(i int, v float32) {
	h.data[i] = v
}

// GetDimForPtr returns the coordinate along axis that linear index i
// corresponds to, without materializing the full multidimensional index.
// BatchNorm-Fold uses this to recover the output-channel index of each
// filter element it scales: "consult the producer's
// 'dimension for linear index' helper on axis 0".
func (h *Handle) GetDimForPtr(axis int, i int) int {
	if axis < 0 || axis >= len(h.shape) {
		panic(fmt.Sprintf("graph: GetDimForPtr: axis %d out of range for shape %v", axis, h.shape))
	}
	stride := 1
	for d := axis + 1; d < len(h.shape); d++ {
		stride *= h.shape[d]
	}
	return (i / stride) % h.shape[axis]
}

func (h *Handle) linear(idx []int) int {
	if len(idx) != len(h.shape) {
		panic(fmt.Sprintf("graph: index %v does not match shape %v", idx, h.shape))
	}
	off := 0
	stride := 1
	for d := len(h.shape) - 1; d >= 0; d-- {
		off += idx[d] * stride
		stride *= h.shape[d]
	}
	return off
}
