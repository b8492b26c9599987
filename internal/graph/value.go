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

// Use is one back-edge in a producer's use-list: the consumer node and the
// input slot on that consumer which references the producer. The use-list
// integrity invariant is: for every node N, Uses(N) equals the set of
// (consumer, slot) pairs whose input(slot) == N.
type Use struct {
	Consumer Node
	Slot     int
}

// Value is anything that can occupy the producing end of an edge: an
// operation Node or a leaf Variable. Edges are ownership-neutral — the
// graph owns both endpoints — but every edge contributes exactly one
// entry to the producer's use-list, maintained by addUse/removeUse.
//
// HasUsers/HasOneUse/Uses are exported because passes in internal/passes
// call them directly (the OptimizePool/BatchNorm-Fold preconditions both
// test HasOneUse).
type Value interface {
	HasUsers() bool
	HasOneUse() bool
	Uses() []Use
	addUse(u Use)
	removeUse(consumer Node, slot int)
}

// base is embedded by every Node variant and by Variable. It is the single
// place that owns a use-list; SetInput in edge.go is the single helper
// that sets or clears an input edge, and it talks to producers only
// through addUse/removeUse here.
type base struct {
	name   string
	typ    TensorType
	inputs []Value
	used   []Use
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Type() TensorType {
	return b.typ
}

func (b *base) HasUsers() bool {
	return len(b.used) > 0
}

func (b *base) HasOneUse() bool {
	return len(b.used) == 1
}

func (b *base) Uses() []Use {
	return b.used
}

func (b *base) addUse(u Use) {
	b.used = append(b.used, u)
}

func (b *base) removeUse(consumer Node, slot int) {
	for i, u := range b.used {
		if u.Consumer == consumer && u.Slot == slot {
			b.used = append(b.used[:i], b.used[i+1:]...)
			return
		}
	}
}

func (b *base) inputsSlice() []Value {
	return b.inputs
}

func (b *base) setInputSlot(slot int, v Value) {
	b.inputs[slot] = v
}

// valueType returns the TensorType of any Value — a Node or a Variable —
// so that node constructors can compute an output type from whichever
// kind of producer they were handed without a caller-side type switch.
func valueType(v Value) TensorType {
	switch t := v.(type) {
	case Node:
		return t.Type()
	case *Variable:
		return t.Type()
	default:
		panic("graph: valueType: unreachable value kind")
	}
}
