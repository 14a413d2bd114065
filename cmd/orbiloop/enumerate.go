package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orbiloops/enumerate"
	"github.com/katalvlaran/orbiloops/exchange"
	"github.com/katalvlaran/orbiloops/wallpaper"
)

// loopRecord is the structured output of one enumerated loop.
type loopRecord struct {
	Signature string            `json:"signature" yaml:"signature"`
	Edges     int               `json:"edges" yaml:"edges"`
	Index     wallpaper.Index   `json:"index" yaml:"index"`
	Document  exchange.Document `json:"document" yaml:"document"`
}

func (a *app) enumerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List distinct closed loops by edge count",
		Args:  cobra.NoArgs,
		RunE:  a.runEnumerate,
	}
	cmd.Flags().IntP("max-edges", "L", 0, "largest edge count searched, closing edge included")
	cmd.Flags().IntP("count", "k", 0, "stop after this many loops; 0 lists all")
	cmd.Flags().StringP("output", "o", formatText, "output format: text|yaml|json")

	return cmd
}

func (a *app) runEnumerate(cmd *cobra.Command, _ []string) error {
	e, err := enumerate.New(a.cfg.Type, enumerate.WithMaxEdges(a.cfg.MaxEdges), enumerate.WithLogger(a.logger))
	if err != nil {
		return err
	}

	var loops []enumerate.Loop
	if a.cfg.Count > 0 {
		loops = e.Take(a.cfg.Count)
	} else {
		for l := range e.All() {
			loops = append(loops, l)
		}
	}
	a.logger.Info("orbiloop: enumerated", "type", a.cfg.Type.String(), "loops", len(loops), "expanded", e.Expanded())

	if a.cfg.Format == formatText {
		for i, l := range loops {
			fmt.Fprintf(a.out, "%3d  %d  %-10s  %s\n", i+1, l.Edges(), l.Index, l.Signature)
		}
		return nil
	}

	records := make([]loopRecord, len(loops))
	for i, l := range loops {
		records[i] = loopRecord{Signature: l.Signature, Edges: l.Edges(), Index: l.Index, Document: exchange.Export(l.State)}
	}
	var data []byte
	if a.cfg.Format == formatJSON {
		data, err = json.MarshalIndent(records, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("encode loops: %w", err)
	}
	_, err = a.out.Write(data)

	return err
}
