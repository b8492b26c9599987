//go:build !opencl

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

package backend

// Without the opencl build tag, the OpenCL backend is unavailable,
// mirroring Glow's #ifndef GLOW_WITH_OPENCL branch in Backends.cpp.
const openCLBuildTagPresent = false

func newOpenCLBackend() Backend {
	panic("backend: OpenCL backend not built into this binary")
}
