package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/bnema/splitview/internal/domain/entity"
)

const (
	detectorNameHyprland = "hyprland"
	priorityHyprland     = 100
)

type hyprMonitor struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Scale     float64 `json:"scale"`
	Transform int     `json:"transform"`
	Focused   bool    `json:"focused"`
	Disabled  bool    `json:"disabled"`
	// Reserved is left, top, right, bottom in logical pixels.
	Reserved [4]int `json:"reserved"`
}

// HyprlandDetector reads the focused monitor from hyprctl.
type HyprlandDetector struct {
	run CommandRunner
}

// NewHyprlandDetector creates a detector using run to invoke hyprctl.
func NewHyprlandDetector(run CommandRunner) *HyprlandDetector {
	if run == nil {
		run = ExecRunner
	}
	return &HyprlandDetector{run: run}
}

// Name implements Detector.
func (*HyprlandDetector) Name() string { return detectorNameHyprland }

// Priority implements Detector.
func (*HyprlandDetector) Priority() int { return priorityHyprland }

// Available implements Detector.
func (*HyprlandDetector) Available() bool {
	return os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != ""
}

// Detect implements Detector.
func (d *HyprlandDetector) Detect(ctx context.Context) (entity.ScreenInfo, error) {
	out, err := d.run(ctx, "hyprctl", "monitors", "-j")
	if err != nil {
		return entity.ScreenInfo{}, err
	}
	return parseHyprlandMonitors(out)
}

// Check implements port.HealthChecker.
func (d *HyprlandDetector) Check(ctx context.Context) error {
	_, err := d.Detect(ctx)
	return err
}

func parseHyprlandMonitors(data []byte) (entity.ScreenInfo, error) {
	var monitors []hyprMonitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return entity.ScreenInfo{}, fmt.Errorf("parse hyprctl monitors: %w", err)
	}

	var chosen *hyprMonitor
	for i := range monitors {
		if monitors[i].Disabled {
			continue
		}
		if chosen == nil || monitors[i].Focused {
			chosen = &monitors[i]
		}
		if monitors[i].Focused {
			break
		}
	}
	if chosen == nil {
		return entity.ScreenInfo{}, ErrNoDisplay
	}

	width, height := chosen.logicalSize()
	r := chosen.Reserved
	info := entity.ScreenInfo{
		Width:  width - r[0] - r[2],
		Height: height - r[1] - r[3],
		Left:   chosen.X + r[0],
		Top:    chosen.Y + r[1],
	}
	if !info.Valid() {
		return entity.ScreenInfo{}, fmt.Errorf("%w: monitor %s reports %dx%d+%d+%d",
			ErrInvalidDisplay, chosen.Name, info.Width, info.Height, info.Left, info.Top)
	}
	return info, nil
}

// logicalSize applies the monitor scale and rotation.
func (m hyprMonitor) logicalSize() (int, int) {
	scale := m.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(m.Width) / scale))
	h := int(math.Round(float64(m.Height) / scale))
	if m.Transform%2 == 1 {
		return h, w
	}
	return w, h
}
