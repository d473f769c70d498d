package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/enescakir/emoji"
	"github.com/pterm/pterm"
	"github.com/yangrq1018/holdem-equity/montecarlo"
	"github.com/yangrq1018/holdem-equity/texas"
)

func emojiSuite(s texas.Suite) string {
	var representation string
	switch s {
	case texas.Spade:
		representation = emoji.SpadeSuit.String()
	case texas.Heart:
		representation = emoji.HeartSuit.String()
	case texas.Club:
		representation = emoji.ClubSuit.String()
	case texas.Diamond:
		representation = emoji.DiamondSuit.String()
	}
	return representation
}

// Cards shows cards with suit symbols, "None" for an empty list.
func Cards(cs []texas.Card) string {
	if len(cs) == 0 {
		return "None"
	}
	acc := make([]string, 0, len(cs))
	for i := range cs {
		acc = append(acc, emojiSuite(cs[i].Suite)+" "+cs[i].Rank.Symbol())
	}
	return strings.Join(acc, "  ")
}

func percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// Deal prints the hero hand and the community cards.
func Deal(w io.Writer, hand, board []texas.Card) {
	fmt.Fprintf(w, "Hand: %s\n", Cards(hand))
	fmt.Fprintf(w, "Community Cards: %s\n", Cards(board))
}

// Equity prints the outcome table followed by a bar chart of the rates.
func Equity(w io.Writer, eq texas.Equity, method texas.Method, trials int) error {
	header := fmt.Sprintf("Method: %s", method)
	if method == texas.MethodMonteCarlo {
		header += fmt.Sprintf(" (%d trials)", trials)
	}
	fmt.Fprintln(w, header)

	table, err := pterm.DefaultTable.WithHasHeader().WithData([][]string{
		{"Outcome", "Probability"},
		{"Win", percent(eq.Win)},
		{"Lose", percent(eq.Lose)},
		{"Tie", percent(eq.Tie)},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	chart, err := barChart(
		[]string{"Win", "Lose", "Tie"},
		[]float64{eq.Win, eq.Lose, eq.Tie},
	)
	if err != nil {
		return err
	}
	fmt.Fprint(w, chart)
	return nil
}

// Exact prints the enumeration counters next to the equity.
func Exact(w io.Writer, res texas.ExactResult) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData([][]string{
		{"Opponent holdings", "Wins", "Ties", "Losses", "Win", "Lose"},
		{
			fmt.Sprint(res.Combinations),
			fmt.Sprint(res.Wins),
			fmt.Sprint(res.Ties),
			fmt.Sprint(res.Losses),
			percent(res.Win),
			percent(res.Lose),
		},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

// Histogram is the one line per category form.
func Histogram(hist []texas.CategoryProbability) string {
	sb := strings.Builder{}
	for _, h := range hist {
		sb.WriteString(fmt.Sprintf("%s: %.2f%%, acc: %.2f%%\n", h.Category.String(), h.Prob*100, h.AccProb*100))
	}
	return sb.String()
}

// HistogramTable prints the distribution as a table and a bar chart.
func HistogramTable(w io.Writer, title string, hist []texas.CategoryProbability) error {
	data := [][]string{{"Hand", "Count", "Probability", "This or better"}}
	labels := make([]string, 0, len(hist))
	values := make([]float64, 0, len(hist))
	for _, h := range hist {
		data = append(data, []string{h.Category.String(), fmt.Sprint(h.Count), percent(h.Prob), percent(h.AccProb)})
		labels = append(labels, h.Category.String())
		values = append(values, h.Prob)
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, table)

	chart, err := barChart(labels, values)
	if err != nil {
		return err
	}
	fmt.Fprint(w, chart)
	return nil
}

// barChart draws probabilities as whole percents. Nothing is drawn when every
// bar rounds to zero.
func barChart(labels []string, probs []float64) (string, error) {
	bars := make(pterm.Bars, 0, len(probs))
	top := 0
	for i, p := range probs {
		v := int(math.Round(p * 100))
		if v > top {
			top = v
		}
		bars = append(bars, pterm.Bar{Label: labels[i], Value: v})
	}
	if top == 0 {
		return "", nil
	}
	return pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Srender()
}

// Pi prints a π estimate with its error analysis.
func Pi(w io.Writer, est montecarlo.PiEstimate) {
	fmt.Fprintf(w, "Monte Carlo π Estimation Results\n")
	fmt.Fprintf(w, "Number of Experiments: %d\n", est.N)
	fmt.Fprintf(w, "Points Inside Circle: %d\n", est.Inside)
	fmt.Fprintf(w, "Estimated π ≈ %.10f\n", est.Estimate)
	fmt.Fprintf(w, "Absolute Error from True π: %.8e\n", est.AbsError)
	fmt.Fprintf(w, "Relative Error: %.6f%%\n", est.RelError*100)
	if !est.HasErrorAnalysis {
		return
	}
	fmt.Fprintf(w, "\nError analysis (n > 100)\n")
	fmt.Fprintf(w, "Theoretical Standard Deviation: ±%.6e\n", est.StdDev)
	fmt.Fprintf(w, "95%% Confidence Interval: [%.8f, %.8f]\n", est.CILow, est.CIHigh)
	fmt.Fprintf(w, "Theoretical / Actual Error Ratio: %.3f\n", est.ErrorRatio)
}
