package command

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/owlgraph/clog"
	"github.com/cayleygraph/owlgraph/internal/config"
	chttp "github.com/cayleygraph/owlgraph/internal/http"
)

func NewHttpCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve an HTTP endpoint on the given host and port.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := newConfig(cmd, v)
			printBackendInfo(conf)
			p, err := setupProfile(cmd)
			if err != nil {
				return err
			}
			defer finishProfile(p)

			m, err := openModel(cmd, conf)
			if err != nil {
				return err
			}
			defer m.Graph().Close()

			ro, _ := cmd.Flags().GetBool("read_only")
			h := chttp.NewHandler(m, &chttp.Config{
				ReadOnly:  ro,
				Timeout:   conf.Timeout,
				Batch:     conf.LoadBatch,
				CacheSize: conf.CacheSize,
				Axioms:    conf.Axioms,
			})
			addr := net.JoinHostPort(conf.ListenHost, conf.ListenPort)
			srv := &http.Server{Addr: addr, Handler: h}

			ctx, cancel := getContext()
			defer cancel()
			go func() {
				<-ctx.Done()
				sctx, done := context.WithTimeout(context.Background(), 5*time.Second)
				defer done()
				srv.Shutdown(sctx)
			}()

			phost := addr
			if conf.ListenHost == "" {
				phost = net.JoinHostPort("localhost", conf.ListenPort)
			}
			clog.Infof("listening on %s, API at http://%s/api/v1/", addr, phost)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().String("host", config.DefaultHost, "host to listen on")
	cmd.Flags().String("port", config.DefaultPort, "port to listen on")
	cmd.Flags().Bool("read_only", false, "disable writing via HTTP")
	cmd.Flags().Bool("init", false, "initialize the database before using it")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "elapsed time until an individual request times out")
	registerLoadFlags(cmd)
	v.BindPFlag(config.KeyHost, cmd.Flags().Lookup("host"))
	v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	v.BindPFlag(config.KeyTimeout, cmd.Flags().Lookup("timeout"))
	return cmd
}
