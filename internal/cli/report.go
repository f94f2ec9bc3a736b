package cli

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/solve"
)

// report is the JSON document written by "solve --format json".
type report struct {
	RunID   uuid.UUID      `json:"run_id"`
	Rows    int            `json:"rows"`
	Cols    int            `json:"cols"`
	Seed    int64          `json:"seed"`
	Results []resultReport `json:"results"`
}

type resultReport struct {
	Algorithm string   `json:"algorithm"`
	Length    int      `json:"length"`
	Cost      *int     `json:"cost,omitempty"`
	Order     []int    `json:"order,omitempty"`
	Path      [][2]int `json:"path"`
}

func newReport(cfg config.Config) *report {
	return &report{
		RunID: uuid.New(),
		Rows:  cfg.Rows,
		Cols:  cfg.Cols,
		Seed:  cfg.Seed,
	}
}

func (r *report) add(out solve.Outcome) {
	res := resultReport{
		Algorithm: out.Algorithm.String(),
		Length:    len(out.Path),
		Path:      pathPairs(out.Path),
	}
	if out.HasCost {
		cost := out.Cost
		res.Cost = &cost
	}
	if out.Tour != nil {
		res.Order = out.Tour.Order[:]
	}
	r.Results = append(r.Results, res)
}

func (r *report) write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func pathPairs(p grid.Path) [][2]int {
	out := make([][2]int, len(p))
	for i, pt := range p {
		out[i] = [2]int{pt.Row, pt.Col}
	}
	return out
}
