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

// Save is the designated output sink. It has no output consumers by
// construction — it is where the graph's observable results leave the
// DAG — but it still participates in the use-list machinery as a
// consumer of its input.
type Save struct {
	base
}

// NewSave creates a Save <- x node and appends it to g.
func NewSave(g *Graph, name string, x Value) *Save {
	s := &Save{base: base{name: name, typ: valueType(x), inputs: make([]Value, 1)}}
	SetInput(s, 0, x)
	g.AddNode(s)
	return s
}

func (s *Save) Kind() NodeKind  { return KindSave }
func (s *Save) Inputs() []Value { return s.inputsSlice() }
func (s *Save) Input() Value    { return s.inputsSlice()[0] }
func (*Save) isNode()           {}
