package cmd

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/levels"
	"github.com/abhisek/mathrush/internal/session"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the game modes",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "TIME", "DESCRIPTION")
			for _, m := range session.Modes() {
				clock := "untimed"
				if m.Timed {
					clock = fmt.Sprintf("%ds", m.Seconds)
				}
				t.Row(m.ID, m.Name, clock, m.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the difficulty levels",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("LEVEL", "NAME", "NUMBERS", "LEVEL UP AT")
			for _, lc := range levels.All() {
				next := "max"
				if lc.Level < levels.MaxLevel {
					next = strconv.Itoa(levels.Threshold(lc.Level)) + " correct"
				}
				t.Row(strconv.Itoa(lc.Level), lc.Name, fmt.Sprintf("%d-%d", lc.Min, lc.Max), next)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}
