package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/dampsim/internal/physics"
	"github.com/san-kum/dampsim/internal/regime"
)

var CSVHeader = []string{"regime", "damping", "time", "displacement", "velocity"}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func WriteCSV(w io.Writer, results regime.Results) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, res := range results {
		key := res.Label.Key()
		damping := formatFloat(res.Damping)
		tr := res.Trajectory

		for i, s := range tr.States {
			row := []string{
				key,
				damping,
				formatFloat(tr.Times[i]),
				formatFloat(s[physics.PositionIndex]),
				formatFloat(s[physics.VelocityIndex]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func SaveCSV(path string, results regime.Results) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, results); err != nil {
		return err
	}
	return file.Close()
}
