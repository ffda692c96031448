// This file is part of Chips.
//
// Chips is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chips is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chips.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"path"
	"strings"

	"github.com/jetsetilly/chips/curated"
	"github.com/spf13/afero"
)

// Sentinal error patterns.
const (
	LoadError = "imageloader: %v"
	NoImage   = "imageloader: %s contains no data"
	TooLarge  = "imageloader: %s is too large (%d bytes at %#04x)"
)

// FileExtensions is the list of file extensions that are recognised by the
// imageloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".COM", ".PRG"}

// Image is a program ready to be copied into memory.
type Image struct {
	Filename string

	// the address of the first byte of Data
	Origin uint16

	Data []uint8

	// sha1 hash of the file
	Hash string
}

func (img Image) String() string {
	return fmt.Sprintf("%s [%#04x-%#04x]", img.ShortName(), img.Origin, int(img.Origin)+len(img.Data)-1)
}

// ShortName returns the filename without the path or the extension.
func (img Image) ShortName() string {
	n := path.Base(img.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

// Load reads filename from the filesystem. The origin argument is ignored for
// PRG files.
func Load(fs afero.Fs, filename string, origin uint16) (Image, error) {
	img := Image{
		Filename: filename,
		Origin:   origin,
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return Image{}, curated.Errorf(LoadError, err)
	}

	img.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	if strings.ToUpper(path.Ext(filename)) == ".PRG" {
		if len(data) < 2 {
			return Image{}, curated.Errorf(NoImage, filename)
		}
		img.Origin = uint16(data[0]) | uint16(data[1])<<8
		data = data[2:]
	}

	if len(data) == 0 {
		return Image{}, curated.Errorf(NoImage, filename)
	}

	if int(img.Origin)+len(data) > 0x10000 {
		return Image{}, curated.Errorf(TooLarge, filename, len(data), img.Origin)
	}

	img.Data = data

	return img, nil
}
