package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/output"
)

func calendarCmd(a *app) *cobra.Command {
	var month, selectDate string

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Show the sticker calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := a.planner.Calendar

			if selectDate != "" {
				if err := cal.SelectDate(selectDate); err != nil {
					return err
				}
				if month == "" {
					month = selectDate[:7]
				}
			}

			view := cal.Grid(cmd.Context())
			if month != "" {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("%w: --month wants YYYY-MM", domain.ErrInvalidMonth)
				}
				view, err = cal.GridFor(cmd.Context(), t.Year(), t.Month())
				if err != nil {
					return err
				}
			}

			output.FormatMonth(a.out, view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to show, YYYY-MM (default current)")
	cmd.Flags().StringVar(&selectDate, "select", "", "Highlight a day, YYYY-MM-DD")

	cmd.AddCommand(stickerCmd(a))
	return cmd
}

func stickerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sticker DATE STICKER",
		Short: "Place a sticker on a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, sticker := args[0], args[1]

			added, err := a.planner.Calendar.AssignSticker(cmd.Context(), date, sticker)
			if err != nil && !added {
				return err
			}
			if !added {
				fmt.Fprintln(a.out, "already there")
			}

			output.FormatStickers(a.out, date, a.planner.Calendar.StickersOn(date))
			return err
		},
	}
}

func statsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FormatSummary(a.out, a.planner.Stats.Summary(cmd.Context()))
			return nil
		},
	}
}
