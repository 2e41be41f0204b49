package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/comitanigiacomo/kanso-planner/internal/output"
)

func todoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the to-do list",
	}

	cmd.AddCommand(todoAddCmd(a))
	cmd.AddCommand(todoToggleCmd(a))
	cmd.AddCommand(todoRmCmd(a))
	cmd.AddCommand(todoLsCmd(a))

	return cmd
}

// resolveTodo accepts positions in the sorted listing, matching 'todo ls'.
func (a *app) resolveTodo(cmd *cobra.Command, ref string) (string, error) {
	views := a.planner.Todos.SortedView(cmd.Context())
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	id, ok := resolveRef(ref, ids)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrTodoNotFound, ref)
	}
	return id, nil
}

func todoAddCmd(a *app) *cobra.Command {
	var subject, due, priority string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, err := a.planner.Todos.Add(cmd.Context(), services.CreateTodoInput{
				Title:    args[0],
				Subject:  subject,
				DueDate:  due,
				Priority: priority,
			})
			if todo != nil {
				fmt.Fprintf(a.out, "added todo %q due %s (%s)\n", todo.Title, todo.DueDate, todo.Priority)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date, YYYY-MM-DD")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high (default medium)")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func todoToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle REF",
		Short: "Flip a todo between open and done",
		Long:  "REF is the todo's position in 'kanso todo ls' or its id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveTodo(cmd, args[0])
			if err != nil {
				return err
			}

			todo, err := a.planner.Todos.Toggle(cmd.Context(), id)
			if todo != nil {
				state := "open"
				if todo.Completed {
					state = "done"
				}
				fmt.Fprintf(a.out, "%s is now %s\n", todo.Title, state)
			}
			return err
		},
	}
}

func todoRmCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm REF",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveTodo(cmd, args[0])
			if err != nil {
				return err
			}

			todo, err := a.planner.Todos.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !yes && !confirm(a.in, a.out, fmt.Sprintf("Are you sure you want to delete todo %q?", todo.Title)) {
				fmt.Fprintln(a.out, "cancelled")
				return nil
			}

			err = a.planner.Todos.Delete(cmd.Context(), id)
			if err == nil || errors.Is(err, domain.ErrPersistence) {
				fmt.Fprintf(a.out, "deleted todo %q\n", todo.Title)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func todoLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List todos, open ones first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FormatTodos(a.out, a.planner.Todos.SortedView(cmd.Context()))
			return nil
		},
	}
}
