package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/comitanigiacomo/kanso-planner/internal/output"
)

func habitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track daily habits",
	}

	cmd.AddCommand(habitAddCmd(a))
	cmd.AddCommand(habitDoneCmd(a))
	cmd.AddCommand(habitRmCmd(a))
	cmd.AddCommand(habitLsCmd(a))

	return cmd
}

func (a *app) habitIDs(cmd *cobra.Command) []string {
	views := a.planner.Habits.List(cmd.Context())
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func (a *app) resolveHabit(cmd *cobra.Command, ref string) (string, error) {
	id, ok := resolveRef(ref, a.habitIDs(cmd))
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrHabitNotFound, ref)
	}
	return id, nil
}

func habitAddCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habit, err := a.planner.Habits.Add(cmd.Context(), services.CreateHabitInput{
				Name:     args[0],
				Category: category,
			})
			if habit != nil {
				fmt.Fprintf(a.out, "added habit %q\n", habit.Name)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category tag")
	return cmd
}

func habitDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done REF",
		Short: "Mark a habit done for today",
		Long:  "REF is the habit's position in 'kanso habit ls' or its id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveHabit(cmd, args[0])
			if err != nil {
				return err
			}

			habit, changed, err := a.planner.Habits.ToggleToday(cmd.Context(), id)
			if habit != nil {
				if changed {
					fmt.Fprintf(a.out, "%s done, streak %d\n", habit.Name, habit.Streak)
				} else {
					fmt.Fprintf(a.out, "%s already done today, streak %d\n", habit.Name, habit.Streak)
				}
			}
			return err
		},
	}
}

func habitRmCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm REF",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveHabit(cmd, args[0])
			if err != nil {
				return err
			}

			habit, err := a.planner.Habits.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !yes && !confirm(a.in, a.out, fmt.Sprintf("Are you sure you want to delete habit %q?", habit.Name)) {
				fmt.Fprintln(a.out, "cancelled")
				return nil
			}

			err = a.planner.Habits.Delete(cmd.Context(), id)
			if err == nil || errors.Is(err, domain.ErrPersistence) {
				fmt.Fprintf(a.out, "deleted habit %q\n", habit.Name)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func habitLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FormatHabits(a.out, a.planner.Habits.List(cmd.Context()))
			return nil
		},
	}
}
