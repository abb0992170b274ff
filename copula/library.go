// SPDX-License-Identifier: MIT

package copula

import (
	"fmt"
	"strconv"
	"strings"
)

// LibrarySize is the number of entries in a family selection vector.
const LibrarySize = 8

// libraryOrder fixes the selection-vector index of every base family.
var libraryOrder = [LibrarySize]string{
	NameIndependence,
	NameGauss,
	NameStudent,
	NameClayton,
	NameFrank,
	NameGumbel,
	NameFGM,
	NameGalambos,
}

// LibraryNames returns the base family tags in selection-vector order.
func LibraryNames() []string {
	return append([]string(nil), libraryOrder[:]...)
}

// AllFamilies returns a selection vector with every entry set.
func AllFamilies() []bool {
	sel := make([]bool, LibrarySize)
	for i := range sel {
		sel[i] = true
	}

	return sel
}

// Library instantiates the selected families with their library values.
//
// selection is indexed in LibraryNames order; nil selects everything.
// Clayton and Gumbel expand to four entries each (0°, 90°, 180°, 270°), so a
// full selection yields 14 families. The result order is deterministic.
func Library(selection []bool) ([]Family, error) {
	if selection == nil {
		selection = AllFamilies()
	}
	if len(selection) != LibrarySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSelectionLength, len(selection), LibrarySize)
	}

	var out []Family
	for i, on := range selection {
		if !on {
			continue
		}
		name := libraryOrder[i]
		fams, err := expand(name)
		if err != nil {
			return nil, err
		}
		out = append(out, fams...)
	}

	return out, nil
}

// expand returns the library instances for one base tag.
func expand(name string) ([]Family, error) {
	base, err := New(name)
	if err != nil {
		return nil, err
	}
	if name != NameClayton && name != NameGumbel {
		return []Family{base}, nil
	}

	out := []Family{base}
	for _, angle := range []Rotation{Rotate90, Rotate180, Rotate270} {
		f, err := New(name + strconv.Itoa(int(angle)))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// New returns the family named by tag with its library value. Rotated tags
// ("C90", "Gu180", ...) are accepted. Unknown tags yield ErrUnsupported.
func New(tag string) (Family, error) {
	switch tag {
	case NameIndependence:
		return NewIndependence(), nil
	case NameGauss:
		return NewGauss(0.5)
	case NameStudent:
		return NewStudent(0.5, 1)
	case NameClayton:
		return NewClayton(2)
	case NameFrank:
		return NewFrank(0.5)
	case NameGumbel:
		return NewGumbel(3)
	case NameFGM:
		return NewFGM(0)
	case NameGalambos:
		return NewGalambos(1)
	}

	for _, base := range []string{NameGumbel, NameClayton} {
		rest, ok := strings.CutPrefix(tag, base)
		if !ok {
			continue
		}
		angle, err := strconv.Atoi(rest)
		if err != nil {
			break
		}
		f, err := New(base)
		if err != nil {
			return nil, err
		}

		r, err := Rotate(f, Rotation(angle))
		if err != nil {
			return nil, err
		}

		return r, nil
	}

	return nil, fmt.Errorf("%w: family %q", ErrUnsupported, tag)
}
