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

// Package backend is the dispatch layer describes as an external
// collaborator: "After optimization, the host calls createBackend(kind,
// function)... CPU and OpenCL are conditionally available; requesting an
// unavailable backend is a fatal configuration error." It does not
// execute anything — materializing the optimized graph into executable
// form is out of scope for this module — it only models the
// dispatch contract faithfully enough that a caller has somewhere
// realistic to hand the optimized graph off to.
//
// Supplemented from _examples/original_source/lib/Backends/Backends.cpp's
// createBackend switch.
package backend

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"

	"github.com/VincentLin78/glow/internal/graph"
)

// ConfigError occurs when the caller asks Create for a backend kind the
// current build/host cannot provide. The root package aliases this type as glow.ConfigError so
// callers never need to import internal/backend directly to type-assert
// on it.
type ConfigError struct {
	Note string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("backend: configuration error: %s", e.Note)
}

// Kind enumerates the backend targets names.
type Kind int

const (
	Interpreter Kind = iota
	CPU
	OpenCL
)

func (k Kind) String() string {
	switch k {
	case Interpreter:
		return "Interpreter"
	case CPU:
		return "CPU"
	case OpenCL:
		return "OpenCL"
	default:
		return "Unknown"
	}
}

// Backend is the minimal interface the dispatcher hands back. It carries
// no Run/Execute method — kernel execution is out of scope —
// it exists only to give Create's return value a concrete shape.
type Backend interface {
	Kind() Kind
}

type interpreterBackend struct{}

func (interpreterBackend) Kind() Kind { return Interpreter }

type cpuBackend struct{}

func (cpuBackend) Kind() Kind { return CPU }

// openCLAvailable is true only in builds tagged "opencl" (see
// opencl_stub.go / opencl_enabled.go), mirroring Glow's GLOW_WITH_OPENCL
// compile-time gate.
var openCLAvailable = openCLBuildTagPresent

// Create dispatches on kind, returning a fatal *ConfigError-shaped error
// (the caller decides whether "fatal" means process-abort) if the
// requested backend isn't available on this build/host. fn is the
// optimized graph being handed off; Create does not read it — it exists
// in the signature only because describes the call as
// createBackend(kind, function).
func Create(kind Kind, fn *graph.Graph) (Backend, error) {
	switch kind {
	case Interpreter:
		return interpreterBackend{}, nil

	case CPU:
		// The CPU backend is conditionally available the way Glow gates
		// it behind the GLOW_WITH_CPU build flag; here the gate is a
		// runtime feature check instead of a compile-time one, since a
		// Go binary can't statically know the host's instruction set the
		// way a C++ build matrix can. AVX2 is the floor this module
		// assumes a "real" CPU backend would need for the convolution
		// kernels BatchNorm-Fold feeds it.
		if !cpuid.CPU.Supports(cpuid.AVX2) {
			return nil, &ConfigError{Note: "CPU backend requires AVX2, not available on this host"}
		}
		return cpuBackend{}, nil

	case OpenCL:
		if !openCLAvailable {
			return nil, &ConfigError{Note: "must build with the opencl tag to use the OpenCL backend"}
		}
		return newOpenCLBackend(), nil

	default:
		return nil, &ConfigError{Note: fmt.Sprintf("unreachable backend kind %d", kind)}
	}
}
