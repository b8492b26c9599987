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

// Command graphopt-dump builds a small fixed demo graph, runs the
// optimizer over it, and prints a colorized before/after node dump. It is
// not a model-file loader — parsing real model formats stays out of
// scope — it exists only so the five passes have something a
// person can look at end to end, the way the teacher's fuzz/ and tests/
// exercise frugal's codec from outside the package.
//
// The colorized-diagnostic convention (fatih/color) is borrowed from
// Benny93-axon-go's CLI output, the closest sibling in the retrieval pack
// that ships a human-facing terminal tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"

	"github.com/VincentLin78/glow"
	"github.com/VincentLin78/glow/internal/backend"
	igraph "github.com/VincentLin78/glow/internal/graph"
)

func main() {
	modeFlag := flag.String("mode", "infer", "optimization mode: none, infer, train")
	backendFlag := flag.String("backend", "interpreter", "dispatch target: interpreter, cpu, opencl")
	flag.Parse()

	mode, err := parseMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	g := buildDemoGraph()
	before := g.Fingerprint()

	if err := glow.Optimize(g, mode); err != nil {
		log.Fatalf("graphopt-dump: optimize failed: %v", err)
	}

	after := g.Fingerprint()
	printDiff(before, after)

	kind, err := parseBackendKind(*backendFlag)
	if err != nil {
		log.Fatal(err)
	}
	b, err := backend.Create(kind, g)
	if err != nil {
		log.Fatalf("graphopt-dump: %v", err)
	}
	fmt.Printf("dispatched optimized graph to %s backend\n", b.Kind())
}

func parseBackendKind(s string) (backend.Kind, error) {
	switch strings.ToLower(s) {
	case "interpreter":
		return backend.Interpreter, nil
	case "cpu":
		return backend.CPU, nil
	case "opencl":
		return backend.OpenCL, nil
	default:
		return backend.Interpreter, fmt.Errorf("graphopt-dump: unknown backend %q", s)
	}
}

func parseMode(s string) (glow.OptimizationMode, error) {
	switch strings.ToLower(s) {
	case "none":
		return glow.None, nil
	case "infer":
		return glow.Infer, nil
	case "train":
		return glow.Train, nil
	default:
		return glow.None, fmt.Errorf("graphopt-dump: unknown mode %q", s)
	}
}

// buildDemoGraph constructs conv -> batchnorm -> relu -> pool -> transpose
// -> save, the exact shape of scenario 6 (BN fold) composed with
// scenario 4 (pool-relu swap) and a trailing layout transpose, so a single
// -mode=infer run exercises four of the five passes in one dump.
func buildDemoGraph() *glow.Graph {
	g := glow.NewGraph()

	x := igraph.NewVariable("input", igraph.TensorType{Shape: []int{1, 3, 8, 8}, Elem: igraph.Float32})
	filter := igraph.NewVariable("filter", igraph.TensorType{Shape: []int{4, 3, 3, 3}, Elem: igraph.Float32})
	bias := igraph.NewVariable("conv_bias", igraph.TensorType{Shape: []int{4}, Elem: igraph.Float32})
	scale := igraph.NewVariable("bn_scale", igraph.TensorType{Shape: []int{4}, Elem: igraph.Float32})
	bnBias := igraph.NewVariable("bn_bias", igraph.TensorType{Shape: []int{4}, Elem: igraph.Float32})
	mean := igraph.NewVariable("bn_mean", igraph.TensorType{Shape: []int{4}, Elem: igraph.Float32})
	variance := igraph.NewVariable("bn_var", igraph.TensorType{Shape: []int{4}, Elem: igraph.Float32})

	for _, v := range []*igraph.Variable{x, filter, bias, scale, bnBias, mean, variance} {
		g.AddVariable(v)
	}

	xph := igraph.NewPlaceholder(g, "x", x)

	convType := igraph.TensorType{Shape: []int{1, 4, 8, 8}, Elem: igraph.Float32}
	conv := igraph.NewConvolution(g, "conv1", xph, filter, bias, []int{3, 3}, []int{1, 1}, []int{1, 1}, convType)
	bn := igraph.NewBatchNorm(g, "bn1", conv, scale, bnBias, mean, variance, 1, 1e-5, 0.9)
	relu := igraph.NewRelu(g, "relu1", bn)
	pool := igraph.NewPool(g, "pool1", relu, igraph.PoolMax, []int{2, 2}, []int{2, 2}, []int{0, 0},
		igraph.TensorType{Shape: []int{1, 4, 4, 4}, Elem: igraph.Float32})
	transposed := igraph.NewTranspose(g, "tr1", pool, []int{0, 2, 3, 1})
	igraph.NewSave(g, "out", transposed)

	return g
}

func printDiff(before, after string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	beforeLines := splitNonEmpty(before)
	afterLines := splitNonEmpty(after)
	afterSet := make(map[string]bool, len(afterLines))
	for _, l := range afterLines {
		afterSet[l] = true
	}

	fmt.Println(yellow("before:"))
	for _, l := range beforeLines {
		if afterSet[l] {
			fmt.Println(" " + faint(l))
		} else {
			fmt.Println(" " + l)
		}
	}

	fmt.Println(green("after:"))
	for _, l := range afterLines {
		fmt.Println(" " + l)
	}
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
