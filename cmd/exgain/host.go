package main

import (
	"os"
	"os/signal"
	"syscall"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"exgain/host"
	"exgain/store/duck"
	"exgain/util"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Serve a reference plugin host for panels to connect to",
	RunE:  runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, _ []string) (err error) {

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return
	}

	lgr := util.NewLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jrnl, err := duck.New(ctx, cfg.Journal, lgr)
	if err != nil {
		return
	}
	defer jrnl.Close()

	hst := cfg.Host.New(jrnl, lgr)

	latest, err := jrnl.Latest(ctx)
	if err != nil {
		return
	}
	restored := hst.Restore(latest)

	lgr.Info(ctx, "starting host", "addr", cfg.Host.Addr, "journal", jrnl.Name(), "restored", restored)

	err = host.NewServer(hst, cfg.Host, lgr).Run(ctx)
	err = errors.Wrapf(err, "host exited")
	return
}
