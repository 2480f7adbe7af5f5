package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/infrastructure/screen"
)

const (
	layoutPreviewPrimary   = "https://primary.example"
	layoutPreviewSecondary = "https://secondary.example"
)

var (
	layoutCmdFlags layoutFlags
	layoutWidth    int
	layoutHeight   int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the window layout for a split",
	Long: `Compute the two window rectangles for the current screen and print them
with a scaled preview. No window is opened and no data is stored.

Pass --width and --height to plan for a screen other than the detected one.

Examples:
  splitview layout
  splitview layout --mode focus
  splitview layout --width 2560 --height 1440 --edge-to-edge=false`,
	Args:        cobra.NoArgs,
	Annotations: noDB(),
	RunE:        runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmdFlags.register(layoutCmd)
	layoutCmd.Flags().IntVar(&layoutWidth, "width", 0, "screen width in pixels")
	layoutCmd.Flags().IntVar(&layoutHeight, "height", 0, "screen height in pixels")
	layoutCmd.MarkFlagsRequiredTogether("width", "height")
}

func runLayout(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	input, err := layoutCmdFlags.input(cmd, layoutPreviewPrimary, layoutPreviewSecondary, configuredLayout(a.Config.Layout))
	if err != nil {
		return err
	}

	var screens port.ScreenInfoProvider = a.Screens()
	if layoutWidth > 0 || layoutHeight > 0 {
		info := entity.ScreenInfo{Width: layoutWidth, Height: layoutHeight}
		if !info.Valid() {
			return fmt.Errorf("invalid screen size %dx%d", layoutWidth, layoutHeight)
		}
		screens = screen.NewResolver(screen.Options{Backend: screen.BackendStatic, Static: info})
	}

	out, err := a.PreviewUseCase(nil, screens).Plan(a.Ctx(), input)
	if err != nil {
		return err
	}

	view := planView(out)
	view.PrimaryURL = ""
	view.SecondaryURL = ""
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewSplitRenderer(a.Theme).RenderPlan(view))
	return nil
}
