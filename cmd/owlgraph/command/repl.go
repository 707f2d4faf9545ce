package command

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlgraph/internal/repl"
)

func getContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		select {
		case <-ch:
		case <-ctx.Done():
		}
		signal.Stop(ch)
		cancel()
	}()
	return ctx, cancel
}

func NewReplCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drop into an interactive shell over the ontology.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			printBackendInfo(conf)
			m, err := openModel(cmd, conf)
			if err != nil {
				return err
			}
			defer m.Graph().Close()

			ctx, cancel := getContext()
			defer cancel()

			timeout, _ := cmd.Flags().GetDuration("timeout")
			s := repl.NewSession(m, conf.Axioms, conf.CacheSize, cmd.OutOrStdout())
			return repl.Repl(ctx, s, timeout)
		},
	}
	cmd.Flags().Bool("init", false, "initialize the database before using it")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until an individual command times out")
	registerLoadFlags(cmd)
	return cmd
}
