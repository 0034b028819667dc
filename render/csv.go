package render

import (
	"encoding/csv"
	"gitlab.com/aoterocom/AOBankroll/models"
	"io"
	"strconv"
)

// CSVRenderer writes one row per hand with one column per path
type CSVRenderer struct{}

func (CSVRenderer) Render(w io.Writer, result models.SimulationResult) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(result.Trajectories)+1)
	header = append(header, "hand")
	for p := range result.Trajectories {
		header = append(header, "path_"+strconv.Itoa(p+1))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for hand := 0; hand <= result.Config.NumHands; hand++ {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(hand))
		for _, trajectory := range result.Trajectories {
			value := 0.0
			if hand < len(trajectory) {
				value = trajectory[hand]
			}
			row = append(row, strconv.FormatFloat(value, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
