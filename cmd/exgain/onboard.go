package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	nt "exgain/entity"
	"exgain/bridge"
	"exgain/util"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create exgain.yaml interactively",
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, _ []string) (err error) {

	if exists(cfgPath) {
		fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at:", cfgPath)
		return
	}

	cfg := defaultConfig()
	width := strconv.Itoa(cfg.Panel.Width)
	height := strconv.Itoa(cfg.Panel.Height)

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Bridge transport").
				Description("How the panel reaches the host.").
				Options(
					huh.NewOption("websocket", bridge.Socket),
					huh.NewOption("unix socket", bridge.Unix),
				).
				Value(&cfg.Bridge.Transport),
		),
	).Run()
	if err != nil {
		return
	}

	address := huh.NewInput().
		Title("Host websocket url").
		Value(&cfg.Bridge.URL)
	if cfg.Bridge.Transport == bridge.Unix {
		address = huh.NewInput().
			Title("Host socket path").
			Value(&cfg.Bridge.Path)
	}

	err = huh.NewForm(
		huh.NewGroup(
			address,
			huh.NewInput().
				Title("Panel width").
				Description("Pixels, at least 100.").
				Validate(validDim).
				Value(&width),
			huh.NewInput().
				Title("Panel height").
				Validate(validDim).
				Value(&height),
			huh.NewInput().
				Title("Journal file").
				Description("DuckDB file for the host; leave empty to keep it in memory.").
				Value(&cfg.Journal),
		),
	).Run()
	if err != nil {
		return
	}

	cfg.Panel.Width, _ = strconv.Atoi(width)
	cfg.Panel.Height, _ = strconv.Atoi(height)
	if cfg.Bridge.Transport == bridge.Unix {
		cfg.Host.Socket = cfg.Bridge.Path
	}

	err = util.WriteConfig(cfg, cfgPath, cfgMode)
	if err != nil {
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgPath)
	return
}

func validDim(val string) error {

	dim, err := strconv.Atoi(val)
	if err != nil {
		return errors.Errorf("%q is not a number", val)
	}
	if dim < nt.MinDim {
		return errors.Errorf("must be at least %d", nt.MinDim)
	}
	return nil
}
