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

package glow

import "github.com/VincentLin78/glow/internal/graph"

// Graph is the DAG Optimize rewrites. Building one — the node and
// variable constructors, parsing a model file into it — is out of scope
// for this module; Graph is exposed here only so that whatever
// upstream builder constructs a graph has a type to hand to Optimize.
type Graph = graph.Graph

// NewGraph returns an empty graph, for tests and for the demo graph
// cmd/graphopt-dump builds.
func NewGraph() *Graph {
	return graph.NewGraph()
}
