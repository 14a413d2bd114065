package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbiloops/path"
)

func (a *app) segmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segments FILE",
		Short: "List the segments the next edge of an open path may end in",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runSegments,
	}
}

func (a *app) runSegments(_ *cobra.Command, args []string) error {
	_, s, err := a.load(args[0])
	if err != nil {
		return err
	}
	if s.Phase() != path.Open {
		return fmt.Errorf("orbiloop: path is %s, segments need an open path", s.Phase())
	}

	cur, _ := s.Current()
	fmt.Fprintf(a.out, "from %s\n", cur)
	for _, seg := range s.ValidSegments() {
		fmt.Fprintln(a.out, seg)
	}
	if e, v := s.CanClose(); v.OK() {
		fmt.Fprintf(a.out, "close %s\n", e)
	}

	return nil
}
