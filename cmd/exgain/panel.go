package main

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"exgain"
	"exgain/bridge"
	"exgain/message"
	"exgain/util"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Run the control panel against a host",
	RunE:  runPanel,
}

var transport string

func init() {
	panelCmd.Flags().StringVarP(&transport, "transport", "t", "", "override bridge transport (ws or unix)")
	rootCmd.AddCommand(panelCmd)
}

func runPanel(cmd *cobra.Command, _ []string) (err error) {

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return
	}
	if transport != "" {
		cfg.Bridge.Transport = transport
	}

	logFile := util.OpenLog(cfg.Log.Path, 0o644)
	defer util.CloseLog(logFile)
	lgr := util.NewLogger(logFile)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	lnk, err := cfg.Bridge.Dial(ctx, lgr)
	if err != nil {
		return
	}
	defer lnk.Close()

	model := exgain.NewModel(ctx, cfg.Panel, lnk, lgr)
	model.Transport = lnk.Name()

	program := tea.NewProgram(model)
	relay(ctx, lnk, program)

	lgr.Info(ctx, "starting panel", "transport", lnk.Name(), "size", cfg.Panel.Width)

	_, err = program.Run()
	err = errors.Wrapf(err, "panel exited")
	return
}

// sender takes messages into a running program.
type sender interface {
	Send(msg tea.Msg)
}

// relay forwards host messages to prg and tells it when the link drops.
func relay(ctx context.Context, lnk *bridge.Link, prg sender) {

	lnk.OnReceive(func(in message.Inbound) {
		prg.Send(in)
	})

	go func() {
		select {
		case <-lnk.Done():
			prg.Send(message.ErrorMsg{Err: errors.Wrapf(bridge.ErrClosed, "host went away")})
		case <-ctx.Done():
		}
	}()
}
