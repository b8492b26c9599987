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

// Package graph is the DAG substrate the optimizer rewrites: Graph owns
// operation nodes and parameter variables, Node is a closed variant set
// (Convolution, BatchNorm, Pool, Relu, Transpose, Concat, Arithmetic,
// Save, plus the internal Placeholder leaf), and every edge between them
// is tracked by a producer-side use-list maintained through the single
// SetInput helper.
//
// There is no separate IR: passes in internal/passes mutate Graph values
// in place. This package owns no pass logic of its own — it only
// guarantees that, however a pass rewires edges, use-list integrity holds.
package graph
