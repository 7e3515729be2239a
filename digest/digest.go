// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package digest is used to create a fingerprint of the machine state. The
// fingerprint can be compared against a fingerprint from another run of the
// same program to check that the emulation has not changed.
//
// The State type is chained: each call to Update() includes the previous hash
// in the new hash. This means that the hash after several updates depends on
// the state at each update and not just the final state.
package digest

// Digest implementations compute a hash of the emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
