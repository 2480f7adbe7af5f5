package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/config"
)

// layoutFlags are the layout overrides shared by split, layout and restore.
type layoutFlags struct {
	mode       string
	edgeToEdge bool
	gap        int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	f.registerMode(cmd)
	cmd.Flags().BoolVar(&f.edgeToEdge, "edge-to-edge", true, "fill the screen; --edge-to-edge=false uses the inset style")
	cmd.Flags().IntVar(&f.gap, "gap", 0, "pixels between the windows")
}

func (f *layoutFlags) registerMode(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "split mode: side-by-side, top-bottom or focus")
}

// parseMode returns the mode given with --mode, or ok=false when unset.
func (f *layoutFlags) parseMode(cmd *cobra.Command) (mode entity.SplitMode, ok bool, err error) {
	if !cmd.Flags().Changed("mode") {
		return entity.DefaultSplitMode, false, nil
	}
	mode, known := entity.LookupSplitMode(f.mode)
	if !known {
		return entity.DefaultSplitMode, false, fmt.Errorf("unknown mode %q (want side-by-side, top-bottom or focus)", f.mode)
	}
	return mode, true, nil
}

// input builds a split request. base is the mode and style used when the
// flags do not override them.
func (f *layoutFlags) input(cmd *cobra.Command, primary, secondary string, base layoutChoice) (usecase.SplitInput, error) {
	mode, set, err := f.parseMode(cmd)
	if err != nil {
		return usecase.SplitInput{}, err
	}
	if !set {
		mode = base.Mode
	}

	edgeToEdge := base.EdgeToEdge
	if cmd.Flags().Changed("edge-to-edge") {
		edgeToEdge = f.edgeToEdge
	}

	input := usecase.SplitInput{
		PrimaryURL:   primary,
		SecondaryURL: secondary,
		Mode:         mode,
		EdgeToEdge:   &edgeToEdge,
	}
	if cmd.Flags().Changed("gap") {
		if f.gap < 0 {
			return usecase.SplitInput{}, fmt.Errorf("--gap must be >= 0, got %d", f.gap)
		}
		gap := f.gap
		input.Gap = &gap
	}
	return input, nil
}

// layoutChoice is the mode and style a split uses without flags.
type layoutChoice struct {
	Mode       entity.SplitMode
	EdgeToEdge bool
}

// defaultLayout returns the remembered layout when remember_layout is on,
// otherwise the configured one.
func defaultLayout(cfg config.LayoutConfig, prefs entity.Preferences) layoutChoice {
	if prefs.RememberLayout {
		return layoutChoice{Mode: prefs.Mode.Resolve(), EdgeToEdge: prefs.EdgeToEdge}
	}
	return configuredLayout(cfg)
}

func configuredLayout(cfg config.LayoutConfig) layoutChoice {
	return layoutChoice{Mode: entity.ParseSplitMode(cfg.Mode), EdgeToEdge: cfg.EdgeToEdge}
}
