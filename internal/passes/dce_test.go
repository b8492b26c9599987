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

package passes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VincentLin78/glow/internal/graph"
	"github.com/VincentLin78/glow/internal/opts"
)

func f32(shape ...int) graph.TensorType {
	return graph.TensorType{Shape: shape, Elem: graph.Float32}
}

func defaultMaxIterations() int {
	return opts.GetDefaultOptions().MaxDCEIterations
}

func TestDCERemovesUnusedChain(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(2, 2))
	p := graph.NewPlaceholder(g, "p", v)

	dead2 := graph.NewRelu(g, "dead2", p)
	dead1 := graph.NewRelu(g, "dead1", dead2) // dead1 has no users at all
	_ = dead1

	changed := DCE{}.Apply(g, defaultMaxIterations())
	require.True(t, changed)

	for _, n := range g.Nodes() {
		require.NotEqual(t, graph.KindRelu, n.Kind(), "both relus should have been removed as a chain")
	}
}

func TestDCEPreservesSaveRegardlessOfUseCount(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(2, 2))
	p := graph.NewPlaceholder(g, "p", v)
	save := graph.NewSave(g, "out", p)

	DCE{}.Apply(g, defaultMaxIterations())

	found := false
	for _, n := range g.Nodes() {
		if n == save {
			found = true
		}
	}
	require.True(t, found, "Save must survive DCE even though nothing consumes it")
}

func TestDCERemovesUnusedVariables(t *testing.T) {
	g := graph.NewGraph()
	used := graph.NewVariable("used", f32(2, 2))
	unused := graph.NewVariable("unused", f32(2, 2))
	g.AddVariable(used)
	g.AddVariable(unused)

	p := graph.NewPlaceholder(g, "p", used)
	graph.NewSave(g, "out", p)

	DCE{}.Apply(g, defaultMaxIterations())

	for _, v := range g.Variables() {
		require.NotEqual(t, "unused", v.Name())
	}
}

// TestDCERemovesUnusedVariablesEvenWhenANodeIsRemovedInTheSameApply pins
// down the case the || short-circuit used to skip: a node going dead in
// the same Apply call that also strands one of its input variables. The
// variable sweep must run unconditionally, not only when changed is
// already false going into it.
func TestDCERemovesUnusedVariablesEvenWhenANodeIsRemovedInTheSameApply(t *testing.T) {
	g := graph.NewGraph()
	orphanVar := graph.NewVariable("orphanVar", f32(2, 2))
	g.AddVariable(orphanVar)

	v := graph.NewVariable("v", f32(2, 2))
	p := graph.NewPlaceholder(g, "p", v)
	graph.NewSave(g, "out", p)
	// orphan is a dead node whose only input is orphanVar; removing orphan
	// in this same Apply call also strands orphanVar.
	graph.NewRelu(g, "orphan", graph.NewPlaceholder(g, "orphanPh", orphanVar))

	changed := DCE{}.Apply(g, defaultMaxIterations())
	require.True(t, changed)

	for _, v := range g.Variables() {
		require.NotEqual(t, "orphanVar", v.Name(), "orphanVar lost its last user in this same Apply call and must be swept")
	}
}

func TestDCESoundnessEveryNonSaveSurvivorHasAUser(t *testing.T) {
	g := graph.NewGraph()
	v := graph.NewVariable("v", f32(2, 2))
	p := graph.NewPlaceholder(g, "p", v)
	r := graph.NewRelu(g, "r", p)
	graph.NewSave(g, "out", r)
	graph.NewRelu(g, "orphan", p) // unused byproduct

	DCE{}.Apply(g, defaultMaxIterations())

	for _, n := range g.Nodes() {
		if n.Kind() == graph.KindSave {
			continue
		}
		require.True(t, n.HasUsers(), "%s survived DCE without a user", n.Name())
	}
}
