package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathrush/internal/app"
	"github.com/abhisek/mathrush/internal/logging"
	"github.com/abhisek/mathrush/internal/session"
)

func newPlayCmd() *cobra.Command {
	play := &cobra.Command{
		Use:   "play",
		Short: "Start a game",
		Long: `Start a game in the terminal.

Without --mode the splash screen and mode menu are shown first. With
--mode the chosen mode starts right away.`,
		RunE: runPlay,
	}
	addPlayFlags(play)
	return play
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", session.DefaultMode, "Game mode: classic, blitz, zen or challenge")
	cmd.Flags().Uint64("seed", 0, "Question generator seed (0 picks one at random)")
	cmd.Flags().Duration("feedback-delay", session.DefaultFeedbackDelay, "How long answer feedback stays on screen")
	cmd.Flags().Bool("dedupe-achievements", false, "Log score and level achievements only once per game")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.WithField("mode", cfg.Mode).
		WithField("feedback_delay", cfg.FeedbackDelay.String()).
		Info("mathrush starting")
	start := time.Now()
	defer func() {
		log.WithField("uptime", time.Since(start).Round(time.Second).String()).Info("mathrush exiting")
	}()

	return app.Run(app.Options{
		Config: cfg,
		Logger: log,
		Direct: cmd.Flags().Changed("mode"),
	})
}
