package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnema/splitview/internal/domain/entity"
)

const (
	detectorNameSway = "sway"
	prioritySway     = 90
)

type swayOutput struct {
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	Focused bool   `json:"focused"`
	Rect    struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"rect"`
}

// SwayDetector reads the focused output from swaymsg.
// Sway reports logical output rectangles without bar reservations.
type SwayDetector struct {
	run CommandRunner
}

// NewSwayDetector creates a detector using run to invoke swaymsg.
func NewSwayDetector(run CommandRunner) *SwayDetector {
	if run == nil {
		run = ExecRunner
	}
	return &SwayDetector{run: run}
}

// Name implements Detector.
func (*SwayDetector) Name() string { return detectorNameSway }

// Priority implements Detector.
func (*SwayDetector) Priority() int { return prioritySway }

// Available implements Detector.
func (*SwayDetector) Available() bool {
	return os.Getenv("SWAYSOCK") != ""
}

// Detect implements Detector.
func (d *SwayDetector) Detect(ctx context.Context) (entity.ScreenInfo, error) {
	out, err := d.run(ctx, "swaymsg", "-r", "-t", "get_outputs")
	if err != nil {
		return entity.ScreenInfo{}, err
	}
	return parseSwayOutputs(out)
}

// Check implements port.HealthChecker.
func (d *SwayDetector) Check(ctx context.Context) error {
	_, err := d.Detect(ctx)
	return err
}

func parseSwayOutputs(data []byte) (entity.ScreenInfo, error) {
	var outputs []swayOutput
	if err := json.Unmarshal(data, &outputs); err != nil {
		return entity.ScreenInfo{}, fmt.Errorf("parse swaymsg outputs: %w", err)
	}

	var chosen *swayOutput
	for i := range outputs {
		if !outputs[i].Active {
			continue
		}
		if chosen == nil || outputs[i].Focused {
			chosen = &outputs[i]
		}
		if outputs[i].Focused {
			break
		}
	}
	if chosen == nil {
		return entity.ScreenInfo{}, ErrNoDisplay
	}

	info := entity.ScreenInfo{
		Width:  chosen.Rect.Width,
		Height: chosen.Rect.Height,
		Left:   chosen.Rect.X,
		Top:    chosen.Rect.Y,
	}
	if !info.Valid() {
		return entity.ScreenInfo{}, fmt.Errorf("%w: output %s reports %dx%d+%d+%d",
			ErrInvalidDisplay, chosen.Name, info.Width, info.Height, info.Left, info.Top)
	}
	return info, nil
}
