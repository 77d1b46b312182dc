// Command report prints the dashboard report for one filter state to the
// console, for quick inspection without running the HTTP server.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkumar312/movie-ratings-dashboard/internal/charts"
	"github.com/mkumar312/movie-ratings-dashboard/internal/dataset"
	"github.com/mkumar312/movie-ratings-dashboard/internal/domain"
	"github.com/mkumar312/movie-ratings-dashboard/internal/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataPath  string
		genre     string
		yearFrom  int
		yearTo    int
		jointKind string
		bins      int
		limit     int
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Print movie ratings dashboard KPIs and chart digests",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			kind := charts.JointKind(jointKind)
			if !charts.ValidJointKind(kind) {
				return fmt.Errorf("invalid joint kind %q", jointKind)
			}

			table, err := dataset.Load(dataPath)
			if err != nil {
				return err
			}

			gen := report.New(table, report.Options{})
			filter := table.FullSpan()
			if genre != "" {
				filter.Genre = genre
			}
			if cmd.Flags().Changed("year-from") {
				filter.YearFrom = yearFrom
			}
			if cmd.Flags().Changed("year-to") {
				filter.YearTo = yearTo
			}

			rep := gen.Build(filter, report.Params{JointKind: kind, Bins: bins, PreviewLimit: limit})
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "Movie-Rating.csv", "path to the ratings CSV")
	cmd.Flags().StringVar(&genre, "genre", domain.GenreAll, "genre to filter on, or All")
	cmd.Flags().IntVar(&yearFrom, "year-from", 0, "inclusive lower year bound")
	cmd.Flags().IntVar(&yearTo, "year-to", 0, "inclusive upper year bound")
	cmd.Flags().StringVar(&jointKind, "joint-kind", string(charts.JointHex), "joint chart kind (scatter|hex|reg|kde|hist|resid)")
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bin count (default 20)")
	cmd.Flags().IntVar(&limit, "limit", 0, "preview row limit")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func printReport(out io.Writer, rep report.Report) {
	title := color.New(color.FgHiRed, color.Bold)
	heading := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgHiCyan)

	title.Fprintln(out, "Movie Ratings Dashboard")
	fmt.Fprintf(out, "filter: genre=%s years=[%d,%d]\n\n", rep.Filter.Genre, rep.Filter.YearFrom, rep.Filter.YearTo)

	heading.Fprintln(out, "KPIs")
	fmt.Fprintf(out, "  Avg Critic Rating    %s\n", value.Sprint(formatKPI(rep.Aggregates.AvgCriticRating)))
	fmt.Fprintf(out, "  Avg Audience Rating  %s\n", value.Sprint(formatKPI(rep.Aggregates.AvgAudienceRating)))
	fmt.Fprintf(out, "  Avg Budget (M)       %s\n", value.Sprint(formatKPI(rep.Aggregates.AvgBudgetMillions)))
	fmt.Fprintf(out, "  Total Movies         %s\n\n", value.Sprint(rep.Aggregates.Count))

	if len(rep.Summary) > 0 {
		heading.Fprintln(out, "Summary Statistics")
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  field\tcount\tmean\tstd\tmin\tq1\tmedian\tq3\tmax")
		for _, s := range rep.Summary {
			fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				s.Field, s.Count,
				formatKPI(s.Mean), formatKPI(s.Std), formatKPI(s.Min),
				formatKPI(s.Q1), formatKPI(s.Median), formatKPI(s.Q3), formatKPI(s.Max))
		}
		tw.Flush()
		fmt.Fprintln(out)
	}

	heading.Fprintln(out, "Preview")
	for _, m := range rep.Preview {
		fmt.Fprintf(out, "  %-40s %-10s %4d  critic=%.0f audience=%.0f budget=%.1fM\n",
			m.Film, m.Genre, m.Year, m.CriticRating, m.AudienceRating, m.BudgetMillions)
	}
	if len(rep.Preview) == 0 {
		fmt.Fprintln(out, "  no data")
	}
	fmt.Fprintln(out)

	heading.Fprintln(out, "Charts")
	printChartDigests(out, rep.Charts)
}

func printChartDigests(out io.Writer, set report.ChartSet) {
	digest := func(name, line string, empty bool) {
		if empty {
			line = "no data"
		}
		fmt.Fprintf(out, "  %-20s %s\n", name, line)
	}

	digest(report.ChartJoint, fmt.Sprintf("kind=%s points=%d cells=%d", set.Joint.Kind, len(set.Joint.Points), len(set.Joint.Cells)), set.Joint.Empty)
	digest(report.ChartScatterByGenre, fmt.Sprintf("series=%d", len(set.ScatterByGenre.Series)), set.ScatterByGenre.Empty)
	digest(report.ChartAudienceHistogram, fmt.Sprintf("bins=%d", len(set.AudienceHistogram.Counts)), set.AudienceHistogram.Empty)
	digest(report.ChartBudgetHistogram, fmt.Sprintf("bins=%d", len(set.BudgetHistogram.Counts)), set.BudgetHistogram.Empty)
	digest(report.ChartBudgetAudienceKDE, fmt.Sprintf("grid=%dx%d", len(set.BudgetAudienceKDE.X), len(set.BudgetAudienceKDE.Y)), set.BudgetAudienceKDE.Empty)
	digest(report.ChartBudgetCriticKDE, fmt.Sprintf("grid=%dx%d", len(set.BudgetCriticKDE.X), len(set.BudgetCriticKDE.Y)), set.BudgetCriticKDE.Empty)
	digest(report.ChartBudgetByGenre, fmt.Sprintf("layers=%d", len(set.BudgetByGenre.Series)), set.BudgetByGenre.Empty)
	digest(report.ChartCriticBox, fmt.Sprintf("groups=%d", len(set.CriticBox.Groups)), set.CriticBox.Empty)
	digest(report.ChartCriticViolin, fmt.Sprintf("groups=%d", len(set.CriticViolin.Groups)), set.CriticViolin.Empty)
	digest(report.ChartGenreYearFacets, fmt.Sprintf("cells=%d", len(set.GenreYearFacets.Cells)), set.GenreYearFacets.Empty)
	digest(report.ChartComposite, fmt.Sprintf("panels=%d", len(set.Composite.Panels)), set.Composite.Empty)
}

func formatKPI(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
