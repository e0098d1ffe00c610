package wastedata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ecowaste/site/internal/domain"
)

// WriteCSV writes the area table of an analysis: one row per area and one
// column per selected stream.
func WriteCSV(w io.Writer, a domain.Analysis) error {
	cw := csv.NewWriter(w)

	header := []string{"area"}
	for _, s := range a.Streams {
		header = append(header, strings.ToLower(StreamLabel(s)))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, area := range a.Areas {
		row := []string{area.Area}
		for _, s := range a.Streams {
			row = append(row, strconv.Itoa(StreamValue(area, s)))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", area.Code, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
