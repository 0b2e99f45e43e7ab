package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/levels"
	"github.com/abhisek/mathrush/internal/problemgen"
)

func newPreviewCmd() *cobra.Command {
	preview := &cobra.Command{
		Use:   "preview",
		Short: "Print generated questions for a level",
		Long: `Generate questions for a level and print them with their answers.

This is a stateless developer tool: no timer, no energy, no journal.
Useful for checking question quality and template gates. With --quiz the
answers are hidden and read from stdin instead.`,
		RunE: runPreview,
	}
	preview.Flags().Int("level", levels.MinLevel, "Difficulty level (1-6)")
	preview.Flags().Int("count", 5, "Number of questions to generate")
	preview.Flags().Uint64("seed", 1, "Question generator seed")
	preview.Flags().Bool("quiz", false, "Ask for answers instead of printing them")
	return preview
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	quiz, _ := cmd.Flags().GetBool("quiz")

	if level < levels.MinLevel || level > levels.MaxLevel {
		return fmt.Errorf("invalid level %d: must be between %d and %d", level, levels.MinLevel, levels.MaxLevel)
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	gen := problemgen.New(problemgen.NewRand(seed), problemgen.DefaultConfig())
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	lc := levels.Get(level)
	fmt.Fprintf(out, "Level %d: %s (numbers %d-%d), seed %d\n\n", lc.Level, lc.Name, lc.Min, lc.Max, seed)

	var correct, asked int
	for i := 1; i <= count; i++ {
		q := gen.Generate(level)

		fmt.Fprintf(out, "── Question %d/%d [%s] ──\n", i, count, q.Category)
		fmt.Fprintln(out, q.Text)

		if !quiz {
			fmt.Fprintf(out, "Answer: %s\n", q.AnswerString())
			fmt.Fprintf(out, "Hint: %s\n\n", q.Hint)
			continue
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintf(out, "(skipped) Answer: %s\n\n", q.AnswerString())
			continue
		}

		asked++
		if problemgen.CheckAnswer(answer, q) {
			correct++
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", q.AnswerString())
		}
		fmt.Fprintln(out)
	}

	if quiz {
		fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", correct, asked)
	}
	return nil
}
