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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and
// placeholder values in the manner of fmt.Errorf().
//
// The pattern is what identifies an error. Packages export the patterns they
// use as string constants and callers check for them with Is() or Has():
//
//	err := mc.Execute(1000)
//	if curated.Is(err, cpu.UnknownOpcode) {
//		...
//	}
//
// Is() checks only the outermost curated error. Has() checks the entire chain,
// including curated errors passed as placeholder values and errors wrapped by
// third-party packages that implement Unwrap().
//
// The Error() function normalises the chain by removing duplicate adjacent
// parts, the parts being separated by the sub-string ": ". This means that a
// wrapping function need not worry about whether the error it is wrapping
// already carries the same prefix.
package curated

import (
	"errors"
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The first argument is named pattern
// rather than format because it is the pattern string that is tested by Is()
// and Has().
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for i := range p {
		if i > 0 && p[i] == p[i-1] {
			continue
		}
		n = append(n, p[i])
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the first error found in the placeholder values.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if a curated error with a specific pattern occurs anywhere in the
// error chain.
func Has(err error, pattern string) bool {
	for err != nil {
		if Is(err, pattern) {
			return true
		}

		if er, ok := err.(curated); ok {
			for _, v := range er.values {
				if e, ok := v.(error); ok && Has(e, pattern) {
					return true
				}
			}
		}

		err = errors.Unwrap(err)
	}

	return false
}

// Values returns the placeholder values of a curated error with the specified
// pattern, searching the chain in the same way as Has(). Returns nil if the
// pattern is not found.
func Values(err error, pattern string) []interface{} {
	for err != nil {
		if er, ok := err.(curated); ok {
			if er.pattern == pattern {
				return er.values
			}
			for _, v := range er.values {
				if e, ok := v.(error); ok {
					if vs := Values(e, pattern); vs != nil {
						return vs
					}
				}
			}
		}
		err = errors.Unwrap(err)
	}
	return nil
}
