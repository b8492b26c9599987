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
	"testing"

	"github.com/stretchr/testify/require"
)

func f32(shape ...int) TensorType {
	return TensorType{Shape: shape, Elem: Float32}
}

func TestSetInputMaintainsUseListOnBothEnds(t *testing.T) {
	g := NewGraph()
	v := NewVariable("v", f32(2, 2))
	p := NewPlaceholder(g, "p", v)

	relu := NewRelu(g, "relu", p)
	require.True(t, p.HasUsers())
	require.Equal(t, []Use{{Consumer: relu, Slot: 0}}, p.Uses())

	relu2 := NewRelu(g, "relu2", v)
	SetInput(relu, 0, relu2)

	require.False(t, p.HasUsers(), "p should have lost its only use after rewiring")
	require.True(t, relu2.HasUsers())
	require.Equal(t, []Use{{Consumer: relu, Slot: 0}}, relu2.Uses())
}

func TestReplaceAllUsesOfWithRewiresEveryConsumer(t *testing.T) {
	g := NewGraph()
	v := NewVariable("v", f32(2, 2))
	p := NewPlaceholder(g, "p", v)

	r1 := NewRelu(g, "r1", p)
	r2 := NewRelu(g, "r2", p)
	require.Len(t, p.Uses(), 2)

	replacement := NewPlaceholder(g, "p2", v)
	ReplaceAllUsesOfWith(p, replacement)

	require.False(t, p.HasUsers())
	require.True(t, replacement.HasUsers())
	require.ElementsMatch(t, []Use{{Consumer: r1, Slot: 0}, {Consumer: r2, Slot: 0}}, replacement.Uses())
}

func TestRemoveNodeDetachesInputs(t *testing.T) {
	g := NewGraph()
	v := NewVariable("v", f32(2, 2))
	p := NewPlaceholder(g, "p", v)
	r := NewRelu(g, "r", p)

	require.True(t, p.HasUsers())
	g.RemoveNode(r)
	require.False(t, p.HasUsers())

	for _, n := range g.Nodes() {
		require.NotEqual(t, r, n, "removed node must not remain in the node list")
	}
}

func TestHandleGetDimForPtrChannelMajor(t *testing.T) {
	h := NewHandle([]int{3, 2, 2}) // channel-major: axis 0 has extent 3

	for c := 0; c < 3; c++ {
		for rest := 0; rest < 4; rest++ {
			i := c*4 + rest
			require.Equal(t, c, h.GetDimForPtr(0, i))
		}
	}
}

func TestHandleAtRoundTrips(t *testing.T) {
	h := NewHandle([]int{2, 3})
	h.Set(1.5, 0, 1)
	h.Set(2.5, 1, 2)

	require.Equal(t, float32(1.5), h.At(0, 1))
	require.Equal(t, float32(2.5), h.At(1, 2))
	require.Equal(t, float32(0), h.At(0, 0))
}

func TestTensorTypeTransposed(t *testing.T) {
	typ := f32(1, 3, 8, 8)
	out := typ.Transposed([]int{0, 2, 3, 1})
	require.Equal(t, []int{1, 8, 8, 3}, out.Shape)
}
