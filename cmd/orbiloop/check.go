package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orbiloops/path"
	"github.com/katalvlaran/orbiloops/wallpaper"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Replay a YAML or JSON loop document and report its state",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCheck,
	}
}

func (a *app) runCheck(_ *cobra.Command, args []string) error {
	doc, s, err := a.load(args[0])
	if err != nil {
		return err
	}
	if err := s.CheckInvariants(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "type:   %s\n", s.Type())
	fmt.Fprintf(a.out, "phase:  %s\n", s.Phase())
	fmt.Fprintf(a.out, "edges:  %d\n", s.NumEdges())
	if doc.ID != "" {
		fmt.Fprintf(a.out, "id:     %s\n", doc.ID)
	}

	switch s.Phase() {
	case path.Open:
		if e, v := s.CanClose(); v.OK() {
			fmt.Fprintf(a.out, "close:  yes, %s\n", e)
		} else {
			fmt.Fprintf(a.out, "close:  no, %v\n", v.Err())
		}
	case path.Closed:
		e, _ := s.ClosingEdge()
		fmt.Fprintf(a.out, "close:  closed by %s\n", e)
	}

	g := wallpaper.MustGroup(s.Type())
	trace := g.Trace(s.Edges())
	fmt.Fprintf(a.out, "trace:  %d crossings\n", len(trace))
	for _, tr := range trace {
		fmt.Fprintf(a.out, "  %2d  %-8s  %-10s  %s\n", tr.Edge, s.Edge(tr.Edge), tr.Side, tr.Index)
	}
	fmt.Fprintf(a.out, "index:  %s\n", g.PathIndex(s.Edges()))

	return nil
}
