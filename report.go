package smoother

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/aouyang1/go-smoother/naive"
	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Param is a named smoothing weight
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func namedParams(names []string, values []float64) []Param {
	params := make([]Param, len(values))
	for i, v := range values {
		name := fmt.Sprintf("p%d", i)
		if i < len(names) {
			name = names[i]
		}
		params[i] = Param{Name: name, Value: v}
	}
	return params
}

// Report is the outcome of analyzing one smoothing method. Training holds the smoothed training
// window followed by the predicted test window and Forecast the smoothed full series followed by
// Horizon future points.
type Report struct {
	Method   string    `json:"method"`
	MAE      float64   `json:"mae"`
	RMSE     float64   `json:"rmse"`
	Params   []Param   `json:"params"`
	Trials   int       `json:"trials"`
	Found    bool      `json:"found"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Horizon  int       `json:"horizon"`
	Training []float64 `json:"training,omitempty"`
	Forecast []float64 `json:"forecast,omitempty"`
}

var printer = message.NewPrinter(language.English)

func (r *Report) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sError analysis for `exponential %s` method\n", prefix, IndentExpand(indent, 0), r.Method); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sPeriod: %s - %s\n", prefix, IndentExpand(indent, 1),
		r.Start.Format("2006-01"), r.End.Format("2006-01")); err != nil {
		return err
	}
	if !r.Found {
		if _, err := fmt.Fprintf(w, "%s%sBEST: none, no finite score\n", prefix, IndentExpand(indent, 1)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s%sBEST MAE: %.4f\n", prefix, IndentExpand(indent, 1), r.MAE); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sBEST RMSE: %.4f\n", prefix, IndentExpand(indent, 1), r.RMSE); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s%sBEST PARAMS:", prefix, IndentExpand(indent, 1)); err != nil {
		return err
	}
	for i, p := range r.Params {
		sep := ","
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s %s `%g`", sep, p.Name, p.Value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	_, err := printer.Fprintf(w, "%s%sTRAIN ITERATIONS: %d\n", prefix, IndentExpand(indent, 1), r.Trials)
	return err
}

// JSON returns the indented json encoding of the report
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// NaiveReport holds the rolling evaluation of each baseline
type NaiveReport struct {
	Results []*naive.Result `json:"results"`
}

func (nr *NaiveReport) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sBaselines:\n", prefix, IndentExpand(indent, 0)); err != nil {
		return err
	}
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%sMethod\tMAE\tRMSE\t\n", prefix, IndentExpand(indent, 1)); err != nil {
		return err
	}
	for _, res := range nr.Results {
		if _, err := fmt.Fprintf(tbl, "%s%s%s\t%.4f\t%.4f\t\n", prefix, IndentExpand(indent, 1), res.Name, res.MAE, res.RMSE); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

// JSON returns the indented json encoding of the baseline report
func (nr *NaiveReport) JSON() ([]byte, error) {
	return json.MarshalIndent(nr, "", "  ")
}
