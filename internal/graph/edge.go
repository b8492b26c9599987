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

// SetInput rewires the input slot of node to v, maintaining use-list
// integrity on both the old and new producer. This is the single helper
// that sets or clears an input edge; every node constructor and
// every rewrite in internal/passes goes through it rather than touching
// base.inputs directly.
func SetInput(node Node, slot int, v Value) {
	inputs := node.inputsSlice()
	if old := inputs[slot]; old != nil {
		old.removeUse(node, slot)
	}
	node.setInputSlot(slot, v)
	if v != nil {
		v.addUse(Use{Consumer: node, Slot: slot})
	}
}

// ReplaceAllUsesOfWith rewires every edge that currently references old so
// that it references with instead.
// old becomes use-less and is left in the graph for DCE to reclaim; with's
// use-list grows by exactly the set of uses old had. Iterating over a
// snapshot of old's use-list is required here because SetInput mutates
// old's use-list as it goes.
func ReplaceAllUsesOfWith(old, with Value) {
	snapshot := append([]Use(nil), old.Uses()...)
	for _, u := range snapshot {
		SetInput(u.Consumer, u.Slot, with)
	}
}
