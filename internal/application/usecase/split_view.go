package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/layout"
	"github.com/bnema/splitview/internal/domain/repository"
	domainurl "github.com/bnema/splitview/internal/domain/url"
	"github.com/bnema/splitview/internal/logging"
)

// LayoutDefaults are the configured spacing values used when a request does
// not override them.
type LayoutDefaults struct {
	EdgeToEdge bool
	Gap        int // between windows in edge-to-edge mode
	InsetGap   int // between windows in inset mode
	Margin     int // outer margin in inset mode
}

// DefaultLayoutDefaults mirrors layout.DefaultOptions.
func DefaultLayoutDefaults() LayoutDefaults {
	return LayoutDefaults{
		EdgeToEdge: true,
		Gap:        layout.DefaultEdgeToEdgeGap,
		InsetGap:   layout.DefaultInsetGap,
		Margin:     layout.DefaultInsetMargin,
	}
}

// Options resolves the layout options for the requested style.
func (d LayoutDefaults) Options(edgeToEdge bool) layout.Options {
	if edgeToEdge {
		return layout.Options{EdgeToEdge: true, Gap: d.Gap}
	}
	return layout.Options{Gap: d.InsetGap, Margin: d.Margin}
}

// SplitViewUseCase validates a pair of URLs, computes their layout and opens
// both windows.
type SplitViewUseCase struct {
	orchestrator *WindowOrchestrator
	screens      port.ScreenInfoProvider
	sessions     repository.LastSessionRepository
	settings     port.SettingsStore
	defaults     LayoutDefaults

	now   func() time.Time
	newID func() string
}

// NewSplitViewUseCase creates a new SplitViewUseCase.
// sessions and settings may be nil, in which case no last session is recorded.
func NewSplitViewUseCase(
	orchestrator *WindowOrchestrator,
	screens port.ScreenInfoProvider,
	sessions repository.LastSessionRepository,
	settings port.SettingsStore,
	defaults LayoutDefaults,
) *SplitViewUseCase {
	return &SplitViewUseCase{
		orchestrator: orchestrator,
		screens:      screens,
		sessions:     sessions,
		settings:     settings,
		defaults:     defaults,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// SplitInput is a split request.
type SplitInput struct {
	PrimaryURL   string
	SecondaryURL string
	Mode         entity.SplitMode
	// EdgeToEdge overrides the configured layout style when set.
	EdgeToEdge *bool
	// Gap overrides the configured gap for the chosen style when set.
	Gap *int
}

// SplitOutput is the result of a split request that passed validation.
type SplitOutput struct {
	PrimaryURL   string
	SecondaryURL string
	Screen       entity.ScreenInfo
	ScreenFound  bool
	Plan         entity.LayoutPlan
	Outcome      entity.SplitOutcome
	SessionSaved bool
}

// Plan validates the input and computes the layout without opening windows.
func (uc *SplitViewUseCase) Plan(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	primary, err := domainurl.NormalizeAndValidate(input.PrimaryURL)
	if err != nil {
		return nil, fmt.Errorf("primary url: %w", err)
	}
	secondary, err := domainurl.NormalizeAndValidate(input.SecondaryURL)
	if err != nil {
		return nil, fmt.Errorf("secondary url: %w", err)
	}

	screen, found := uc.resolveScreen(ctx)

	edgeToEdge := uc.defaults.EdgeToEdge
	if input.EdgeToEdge != nil {
		edgeToEdge = *input.EdgeToEdge
	}
	opts := uc.defaults.Options(edgeToEdge)
	if input.Gap != nil {
		opts.Gap = *input.Gap
	}

	plan, err := layout.Compute(screen, input.Mode, opts)
	if err != nil {
		return nil, fmt.Errorf("compute layout: %w", err)
	}

	return &SplitOutput{
		PrimaryURL:   primary,
		SecondaryURL: secondary,
		Screen:       screen,
		ScreenFound:  found,
		Plan:         plan,
	}, nil
}

// Execute validates both URLs, computes the layout and opens the windows.
// Validation and layout errors are returned before any window is created.
// Window failures are reported through SplitOutput.Outcome.
func (uc *SplitViewUseCase) Execute(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	log := logging.FromContext(ctx)

	out, err := uc.Plan(ctx, input)
	if err != nil {
		log.Debug().Err(err).Msg("split rejected")
		return nil, err
	}

	log.Info().
		Str("mode", out.Plan.Mode.String()).
		Bool("edge_to_edge", out.Plan.EdgeToEdge).
		Str("primary", out.Plan.Primary.String()).
		Str("secondary", out.Plan.Secondary.String()).
		Msg("opening split view")

	out.Outcome = uc.orchestrator.Open(ctx, out.PrimaryURL, out.SecondaryURL, out.Plan)
	if !out.Outcome.OK() {
		return out, nil
	}

	out.SessionSaved = uc.recordSession(ctx, out)
	return out, nil
}

func (uc *SplitViewUseCase) resolveScreen(ctx context.Context) (entity.ScreenInfo, bool) {
	log := logging.FromContext(ctx)

	if uc.screens == nil {
		return entity.DefaultScreenInfo(), false
	}

	screen, err := uc.screens.ScreenInfo(ctx)
	if err == nil && !screen.Valid() {
		err = errors.New("screen reported an empty area")
	}
	if err != nil {
		log.Warn().Err(err).Msg("screen info unavailable, using default screen")
		return entity.DefaultScreenInfo(), false
	}
	return screen, true
}

func (uc *SplitViewUseCase) recordSession(ctx context.Context, out *SplitOutput) bool {
	if uc.sessions == nil || !uc.rememberLayout(ctx) {
		return false
	}

	session := &entity.LastSession{
		ID:           uc.newID(),
		PrimaryURL:   out.PrimaryURL,
		SecondaryURL: out.SecondaryURL,
		Mode:         out.Plan.Mode,
		CreatedAt:    uc.now(),
	}
	log := logging.FromContext(logging.WithSplitID(ctx, session.ID))
	if err := uc.sessions.Save(ctx, session); err != nil {
		log.Warn().Err(err).Msg("failed to record last session")
		return false
	}
	log.Debug().Msg("last session recorded")
	return true
}

func (uc *SplitViewUseCase) rememberLayout(ctx context.Context) bool {
	if uc.settings == nil {
		return entity.DefaultPreferences().RememberLayout
	}
	values, err := uc.settings.Get(ctx, entity.SettingRememberLayout)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read remember_layout setting")
		return false
	}
	return parseBoolSetting(values, entity.SettingRememberLayout, entity.DefaultPreferences().RememberLayout)
}
