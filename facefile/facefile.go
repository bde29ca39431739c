// Package facefile reads the whitespace-delimited mesh "faces" file format:
// one face per line, an integer face id followed by the vertex indices of
// the face.
package facefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadFaces parses the faces listed in r, in file order, with the leading
// face id of each line stripped. Lines with more than three vertex indices
// describe boundary faces and are skipped, as are blank lines. A line with
// a non-integer field or with no vertex indices after the id is an error.
func ReadFaces(r io.Reader) ([][]int, error) {
	var faces [][]int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("facefile: line %d: bad face id %q", lineNo, fields[0])
		}
		if len(fields) == 1 {
			return nil, fmt.Errorf("facefile: line %d: face with no vertices", lineNo)
		}
		face := make([]int, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("facefile: line %d: bad vertex index %q", lineNo, f)
			}
			face[i] = v
		}
		if len(face) > 3 {
			// boundary face
			continue
		}
		faces = append(faces, face)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("facefile: %w", err)
	}
	return faces, nil
}
