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

package curated_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/test"
	"github.com/pkg/errors"
)

const testPattern = "test error: %d"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	err := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(err, testPattern))
	test.ExpectEquality(t, err.Error(), "test error: 10")

	// a wrapped error is not the same as the error it wraps
	f := curated.Errorf(wrapPattern, err)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// plain errors are not curated
	test.ExpectFailure(t, curated.Is(fmt.Errorf(testPattern, 10), testPattern))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestDuplicateParts(t *testing.T) {
	err := curated.Errorf("cpu: %v", curated.Errorf("cpu: %v", curated.Errorf("unknown")))
	test.ExpectEquality(t, err.Error(), "cpu: unknown")
}

func TestThirdPartyWrapping(t *testing.T) {
	err := errors.Wrapf(curated.Errorf(testPattern, 99), "loader")
	test.ExpectFailure(t, curated.Is(err, testPattern))
	test.ExpectSuccess(t, curated.Has(err, testPattern))

	// the standard library walks the chain through the placeholder values
	test.ExpectSuccess(t, stderrors.Unwrap(errors.Cause(err)))
	inner := stderrors.Unwrap(curated.Errorf(wrapPattern, curated.Errorf(testPattern, 1)))
	test.ExpectSuccess(t, curated.Is(inner, testPattern))

	v := curated.Values(err, testPattern)
	test.DemandEquality(t, len(v), 1)
	test.ExpectEquality(t, v[0].(int), 99)

	test.ExpectEquality(t, len(curated.Values(err, wrapPattern)), 0)
}
