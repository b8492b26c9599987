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

// isIdentityShuffle reports whether shuffle1 and shuffle2 are the inverse
// of one another — applying both in sequence is the identity permutation
//. Ported directly from the
// original optimizer's isIdentityShuffle in GraphOptimizer.cpp.
func isIdentityShuffle(shuffle1, shuffle2 []int) bool {
	if len(shuffle1) != len(shuffle2) {
		return false
	}
	for i, s := range shuffle1 {
		if shuffle2[s] != i {
			return false
		}
	}
	return true
}

// inversePermutation returns σ⁻¹ such that σ⁻¹[σ[i]] == i for all i. Used
// by the Concat sinking rule to recover the pre-transpose output type of
// the rewritten Concat from the original (post-transpose) Concat's type.
func inversePermutation(shuffle []int) []int {
	inv := make([]int, len(shuffle))
	for i, s := range shuffle {
		inv[s] = i
	}
	return inv
}

// sameShuffle reports whether two permutations are element-wise equal —
// the precondition the Arithmetic and Concat sinking rules both check
// before agreeing to fire.
func sameShuffle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
