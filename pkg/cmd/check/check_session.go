package check

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/config"
	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

func newLoader() (*session.Loader, error) {
	cache, err := api.NewDiskCache(config.CacheDir)
	if err != nil {
		return nil, err
	}
	client := api.NewClient(
		api.WithBaseURL(config.APIURL),
		api.WithDiskCache(cache))
	ttl, err := time.ParseDuration(config.CacheTTL)
	if err != nil {
		ttl = 24 * time.Hour
	}
	return session.NewLoader(
		session.WithClient(client),
		session.WithTTL(ttl)), nil
}

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <year>",
		Short: "list the events of a season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			ldr, err := newLoader()
			if err != nil {
				return err
			}
			schedule, err := ldr.Schedule(context.Background(), year)
			if err != nil {
				return err
			}
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Round", "Event", "Circuit", "Date"})
			for _, e := range schedule.RaceEvents() {
				t.AppendRow(table.Row{e.Round, e.Name, e.CircuitName, e.Date})
			}
			t.Render()
			return nil
		},
	}
}

//nolint:funlen // mostly table output
func newSessionCmd() *cobra.Command {
	kind := "R"
	cmd := &cobra.Command{
		Use:   "session <year> <round>",
		Short: "load a session and summarize its data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			round, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid round %q: %w", args[1], err)
			}
			ldr, err := newLoader()
			if err != nil {
				return err
			}
			sess, err := ldr.Load(
				context.Background(), year, round, model.SessionKind(kind))
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println("no data available for this session")
				return nil
			}
			fmt.Printf("%s %d, %s (%s)\n",
				sess.Event.Name, sess.Event.Year, sess.Event.CircuitName, sess.Kind)
			fmt.Printf("laps: %d, results: %d, weather samples: %d, corners: %d\n",
				len(sess.Laps), len(sess.Results), len(sess.Weather), len(sess.Corners))

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Pos", "Driver", "Team", "Laps", "Fastest"})
			for _, abbr := range sess.Drivers() {
				d := session.Resolve(sess, abbr)
				fastest := "N/A"
				if lap, ok := sess.FastestLap(abbr); ok {
					fastest = fmt.Sprintf("%.3f (lap %d)", lap.LapTime, lap.LapNumber)
				}
				t.AppendRow(table.Row{
					d.Position, d.FullName, d.TeamName,
					len(sess.DriverLaps(abbr)), fastest,
				})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "R",
		"session kind (R, Q, S, FP1, FP2, FP3)")
	return cmd
}
