package main

import (
	"fmt"
	"io"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	nt "exgain/entity"
	"exgain/store/duck"
	"exgain/util"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print recent parameter changes recorded by the host",
	RunE:  runJournal,
}

var limit int

func init() {
	journalCmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of changes to show")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, _ []string) (err error) {

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return
	}
	if cfg.Journal == "" {
		err = errors.Errorf("no journal configured in %s", cfgPath)
		return
	}

	ctx := cmd.Context()
	lgr := util.NewLogger(io.Discard)

	jrnl, err := duck.New(ctx, cfg.Journal, lgr)
	if err != nil {
		return
	}
	defer jrnl.Close()

	changes, err := jrnl.Recent(ctx, limit)
	if err != nil {
		return
	}

	printChanges(cmd.OutOrStdout(), changes)
	return
}

func printChanges(out io.Writer, changes []nt.Change) {

	if len(changes) == 0 {
		fmt.Fprintln(out, "no changes recorded")
		return
	}

	for _, change := range changes {
		fmt.Fprintf(out, "%s  %-8s %-10s %.4f  %s\n",
			change.At.Format("2006-01-02 15:04:05"), change.Param, change.Text, change.Normalized, change.Session)
	}
}
