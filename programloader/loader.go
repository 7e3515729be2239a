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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/pkg/errors"
)

// Loader specifies the program image to load into memory.
type Loader struct {
	// filename of the image to load. for images created with
	// NewLoaderFromData() this is a name only and will not be read from
	Filename string

	// expected hash of the image. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value will
	// be the hash of the loaded data
	Hash string

	// copy of the loaded data, including the origin address
	Data []byte
}

// NewLoaderFromFile is the preferred method of initialisation for the Loader
// type when the image is in a file or at a URL.
func NewLoaderFromFile(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData is the preferred method of initialisation for the Loader
// type when the image is already in memory. The data is copied.
func NewLoaderFromData(name string, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Data:     make([]byte, len(data)),
	}
	copy(ld.Data, data)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	name := filepath.Base(ld.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Filenames with a URL scheme of http or https are
// fetched over the network. Everything else is a local file.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	// single letter schemes are windows drive letters
	if u, err := url.Parse(ld.Filename); err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return errors.Wrapf(err, "programloader: fetching %s", ld.Filename)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("programloader: fetching %s: %s", ld.Filename, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrapf(err, "programloader: reading %s", ld.Filename)
		}

	case "file":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return errors.Wrapf(err, "programloader: reading %s", ld.Filename)
		}

	default:
		return curated.Errorf("programloader: unsupported URL scheme (%s)", scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("programloader: unexpected hash value for %s", ld.ShortName())
	}
	ld.Hash = hash

	return nil
}

// Origin returns the address the program is loaded at.
func (ld Loader) Origin() (uint16, error) {
	if len(ld.Data) < HeaderSize {
		return 0, curated.Errorf(ImageTooShort, len(ld.Data))
	}
	return uint16(ld.Data[0]) | uint16(ld.Data[1])<<8, nil
}

// Program returns the program data without the origin address.
func (ld Loader) Program() []byte {
	if len(ld.Data) < HeaderSize {
		return nil
	}
	return ld.Data[HeaderSize:]
}

// Install copies the program into memory at the origin and writes the origin
// to the reset vector. Writing the program wraps from 0xffff to 0x0000.
//
// The reset vector is written last, so a program that covers the vector is
// overwritten by the origin address.
func (ld Loader) Install(mem cpubus.Memory) (uint16, error) {
	origin, err := ld.Origin()
	if err != nil {
		return 0, err
	}

	address := origin
	for _, b := range ld.Program() {
		if err := mem.Write(address, b); err != nil {
			return 0, curated.Errorf("programloader: %v", err)
		}
		address++
	}

	if err := mem.Write(addresses.Reset, ld.Data[0]); err != nil {
		return 0, curated.Errorf("programloader: %v", err)
	}
	if err := mem.Write(addresses.Reset+1, ld.Data[1]); err != nil {
		return 0, curated.Errorf("programloader: %v", err)
	}

	return origin, nil
}
