package screen

import (
	"context"

	"github.com/bnema/splitview/internal/domain/entity"
)

const (
	detectorNameStatic = "static"
	priorityStatic     = 10
)

// StaticDetector reports a fixed, user-configured screen area.
type StaticDetector struct {
	info entity.ScreenInfo
}

// NewStaticDetector creates a detector that always reports info.
func NewStaticDetector(info entity.ScreenInfo) *StaticDetector {
	return &StaticDetector{info: info}
}

// Name implements Detector.
func (*StaticDetector) Name() string { return detectorNameStatic }

// Priority implements Detector.
func (*StaticDetector) Priority() int { return priorityStatic }

// Available implements Detector.
func (d *StaticDetector) Available() bool { return d.info.Valid() }

// Detect implements Detector.
func (d *StaticDetector) Detect(context.Context) (entity.ScreenInfo, error) {
	if !d.info.Valid() {
		return entity.ScreenInfo{}, ErrInvalidDisplay
	}
	return d.info, nil
}
