package builder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/0xCUB3/Modified-Dots-and-Boxes/core"
)

// FromFile reads a comma-separated edge list, one "u,v" vertex-index pair
// per line, and returns the multigraph it describes. A self-loop is
// written as "v,v".
//
// FromFile accepts any path rather than a fixed filename.
func FromFile(path string) (*core.Multigraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("FromFile: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var edges []core.EdgeRecord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("FromFile: %w", ErrFileFormat)
		}

		u, errU := strconv.Atoi(record[0])
		v, errV := strconv.Atoi(record[1])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("FromFile: %w", ErrFileFormat)
		}

		edges = append(edges, core.EdgeRecord{U: u, V: v})
	}

	return core.NewMultigraph(edges...), nil
}
