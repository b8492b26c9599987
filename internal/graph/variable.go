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

// Variable is a named, mutable tensor appearing as a graph leaf — the
// public interface to the user program: model parameters and I/O. A
// Variable has no Inputs of its own; it is a Value, not a Node.
type Variable struct {
	base
	handle *Handle
}

// NewVariable creates a variable of the given name and type, backed by a
// freshly-allocated Handle.
func NewVariable(name string, typ TensorType) *Variable {
	return &Variable{
		base:   base{name: name, typ: typ},
		handle: NewHandle(typ.Shape),
	}
}

// Handle exposes the variable's tensor storage for element access.
func (v *Variable) Handle() *Handle {
	return v.handle
}
