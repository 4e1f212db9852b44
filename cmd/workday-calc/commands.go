package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/nsw-workday-calc/internal/api"
	"github.com/username/nsw-workday-calc/internal/client"
	"github.com/username/nsw-workday-calc/internal/daemon"
	"github.com/username/nsw-workday-calc/internal/workday"
	"github.com/username/nsw-workday-calc/pkg/dateutil"
	"github.com/username/nsw-workday-calc/pkg/random"
	"go.uber.org/zap"
)

func calcCmd() *cobra.Command {
	var pattern string
	var verbose bool
	var remote string

	cmd := &cobra.Command{
		Use:   "calc START [END]",
		Short: "Count work days strictly between two dates (END defaults to today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote != "" {
				if len(args) < 2 {
					return errors.New("--remote needs both START and END")
				}
				c := client.NewClient(remote, logger)
				result, err := c.WorkDays(cmd.Context(), args[0], args[1], patternOrDefault(pattern))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.WorkDays)
				return nil
			}

			calc, err := initializeCalculator(cfg)
			if err != nil {
				return err
			}

			start, end, err := parseRangeArgs(calc, args, patternOrDefault(pattern))
			if err != nil {
				return err
			}

			result, err := calc.Calculate(start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !verbose {
				fmt.Fprintln(out, result.WorkDays)
				return nil
			}

			fmt.Fprintf(out, "Range:     %s .. %s (endpoints excluded)\n",
				dateutil.FormatDate(result.AdjustedStart), dateutil.FormatDate(result.AdjustedEnd))
			fmt.Fprintf(out, "Weekdays:  %d\n", result.Weekdays)
			fmt.Fprintf(out, "Holidays:  %d\n", result.Holidays)
			printOccurrences(out, result)
			fmt.Fprintf(out, "Work days: %d\n", result.WorkDays)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Date pattern (default from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the weekday and holiday breakdown")
	cmd.Flags().StringVar(&remote, "remote", "", "Ask a running server instead of computing locally (e.g. http://localhost:8080)")

	return cmd
}

func weekdaysCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "weekdays START [END]",
		Short: "Count Monday-Friday days in an inclusive range (END defaults to today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := initializeCalculator(cfg)
			if err != nil {
				return err
			}

			start, end, err := parseRangeArgs(calc, args, patternOrDefault(pattern))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), calc.CountWeekdays(start, end))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Date pattern (default from config)")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var pattern string
	var output string

	cmd := &cobra.Command{
		Use:   "holidays START END",
		Short: "List observed public holidays in an inclusive range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := initializeCalculator(cfg)
			if err != nil {
				return err
			}

			start, end, err := calc.ParseRange(args[0], args[1], patternOrDefault(pattern))
			if err != nil {
				return err
			}

			occurrences := calc.Holidays().Occurrences(start, end)
			holidays := api.HolidaysResponse{
				Start:    dateutil.FormatDate(start),
				End:      dateutil.FormatDate(end),
				Count:    len(occurrences),
				Holidays: api.ToHolidayDTOs(occurrences),
			}

			return writeOutput(cmd.OutOrStdout(), output, holidays, holidays.Holidays, func(out io.Writer) {
				for _, o := range occurrences {
					line := fmt.Sprintf("%s  %-3s  %s", dateutil.FormatDate(o.Observed), o.Observed.Weekday().String()[:3], o.Name)
					if !dateutil.IsSameDay(o.Nominal, o.Observed) {
						line += fmt.Sprintf(" (from %s)", dateutil.FormatDate(o.Nominal))
					}
					if o.Gazetted {
						line += " [gazetted]"
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintf(out, "Total: %d\n", len(occurrences))
			})
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Date pattern (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json, yaml or csv")

	return cmd
}

func monthCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "month YEAR MONTH",
		Short: "Show the work day calendar of a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q: must be 1-12", args[1])
			}

			calc, err := initializeCalculator(cfg)
			if err != nil {
				return err
			}

			info, err := calc.MonthInfo(year, time.Month(month))
			if err != nil {
				return err
			}

			view := api.ToMonthResponse(info)
			return writeOutput(cmd.OutOrStdout(), output, view, view.Days, func(out io.Writer) {
				fmt.Fprintf(out, "%s %d\n", info.Month, info.Year)
				fmt.Fprintln(out, "═══════════════════════════════════════")
				for _, day := range info.Days {
					line := fmt.Sprintf("  %s %s  %-8s", dateutil.FormatDate(day.Date), day.Date.Weekday().String()[:3], day.Type)
					if day.Note != "" {
						line += "  " + day.Note
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintf(out, "\nWork days: %d  Weekends: %d  Holidays: %d\n", info.WorkDays, info.Weekends, info.Holidays)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json, yaml or csv")

	return cmd
}

func verifyCmd() *cobra.Command {
	var ranges int
	var maxDays int
	var seed int64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the weekday counter against a day-by-day scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := cfg.Calendar.NewCalendar()
			if err != nil {
				return err
			}

			from, err := cal.Date(1990, time.January, 1)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			gen := random.NewGenerator(seed)
			mismatches := 0
			for _, r := range gen.Ranges(ranges, from, 365*60, maxDays) {
				fast := workday.CountWeekdays(cal, r.Start, r.End)
				slow := workday.CountWeekdaysByScan(cal, r.Start, r.End)
				if fast != slow {
					mismatches++
					fmt.Fprintf(out, "MISMATCH %s .. %s: counter %d, scan %d\n",
						dateutil.FormatDate(r.Start), dateutil.FormatDate(r.End), fast, slow)
				}
			}

			logger.Info("Verification finished",
				zap.Int("ranges", ranges),
				zap.Int("max_days", maxDays),
				zap.Int64("seed", seed),
				zap.Int("mismatches", mismatches))

			if mismatches > 0 {
				return fmt.Errorf("%d of %d ranges mismatched", mismatches, ranges)
			}
			fmt.Fprintf(out, "OK: %d ranges agree\n", ranges)
			return nil
		},
	}

	cmd.Flags().IntVar(&ranges, "ranges", 500, "Number of random ranges")
	cmd.Flags().IntVar(&maxDays, "max-days", 3650, "Maximum range length in days")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")

	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := initializeCalculator(cfg)
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Server.Addr
			}

			handler := api.NewHandler(calc, cfg.Calendar.DatePattern, logger)
			router := api.NewRouter(handler, cfg.Server.AllowedOrigins)

			d := daemon.NewDaemon(addr, router, cfg.Server.GetShutdownTimeout(), logger)
			return d.Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}

// parseRangeArgs parses START and the optional END argument; a missing END
// is today in the calculator's timezone
func parseRangeArgs(calc *workday.Calculator, args []string, pattern string) (time.Time, time.Time, error) {
	if len(args) == 2 {
		return calc.ParseRange(args[0], args[1], pattern)
	}

	start, err := calc.ParseDate(args[0], pattern)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, dateutil.Today(calc.Calendar().Location()), nil
}

func patternOrDefault(pattern string) string {
	if pattern != "" {
		return pattern
	}
	return cfg.Calendar.DatePattern
}

func printOccurrences(out io.Writer, result *workday.Result) {
	for _, o := range result.Occurrences {
		fmt.Fprintf(out, "  - %s %s\n", dateutil.FormatDate(o.Observed), o.Name)
	}
}
