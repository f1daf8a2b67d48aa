package compare

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/carbonwise/carbonwise/internal/logging"
	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// Phase is the request phase of a comparison session.
type Phase int

const (
	// PhaseIdle means nothing has been requested, or a failure was dismissed.
	PhaseIdle Phase = iota
	// PhaseLoading means a compare request is in flight.
	PhaseLoading
	// PhaseSuccess means the latest request returned a result.
	PhaseSuccess
	// PhaseFailed means the latest request failed.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ErrCatalogAlreadyLoaded is returned when the catalog load is attempted twice.
var ErrCatalogAlreadyLoaded = errors.New("segment catalog already loaded for this session")

// SegmentSource fetches the segment catalog.
type SegmentSource interface {
	Segments(ctx context.Context) ([]vehicle.Segment, error)
}

// Comparer ranks vehicles for a request.
type Comparer interface {
	Compare(ctx context.Context, req vehicle.Request) (*vehicle.Result, error)
}

// Ticket is an issued compare request. Tag identifies it among overlapping
// requests; only the outcome of the most recently issued ticket is applied.
type Ticket struct {
	Tag     uint64
	Request vehicle.Request
}

// Run performs the round trip for t. It touches no session state and is
// safe to call off the event loop.
func (t Ticket) Run(ctx context.Context, c Comparer) Outcome {
	res, err := c.Compare(ctx, t.Request)
	return Outcome{Tag: t.Tag, Request: t.Request, Result: res, Err: err}
}

// Outcome is the completed round trip for a Ticket.
type Outcome struct {
	Tag     uint64
	Request vehicle.Request
	Result  *vehicle.Result
	Err     error
}

// Session is the single state container for one comparison session: the
// segment catalog, the form draft, the request phase and the input snapshot
// of the last successful request. All methods must be called from one
// goroutine (the event loop); only Ticket.Run may run elsewhere.
type Session struct {
	form Form

	catalog          []vehicle.Segment
	catalogAttempted bool
	catalogLoaded    bool
	catalogErr       string

	phase         Phase
	result        *vehicle.Result
	failure       string
	lastSubmitted *vehicle.Request
	latestTag     uint64
}

// NewSession returns an Idle session with a default form and no catalog.
func NewSession() *Session {
	return &Session{form: NewForm()}
}

// Form returns the editable draft.
func (s *Session) Form() *Form { return &s.form }

// Phase returns the current request phase.
func (s *Session) Phase() Phase { return s.phase }

// Result returns the result shown in PhaseSuccess, or nil.
func (s *Session) Result() *vehicle.Result { return s.result }

// Failure returns the message shown in PhaseFailed, or "".
func (s *Session) Failure() string { return s.failure }

// LastSubmitted returns the input of the last successful request, or nil.
func (s *Session) LastSubmitted() *vehicle.Request { return s.lastSubmitted }

// LatestTag returns the tag of the most recently issued ticket (0 if none).
func (s *Session) LatestTag() uint64 { return s.latestTag }

// Catalog returns a copy of the loaded segments.
func (s *Session) Catalog() []vehicle.Segment { return slices.Clone(s.catalog) }

// CatalogLoaded reports whether a catalog response has been applied.
func (s *Session) CatalogLoaded() bool { return s.catalogLoaded }

// CatalogError returns the catalog-load error message, or "".
func (s *Session) CatalogError() string { return s.catalogErr }

// CanSubmit reports whether a comparison can be submitted: the catalog has
// loaded and is non-empty.
func (s *Session) CanSubmit() bool {
	return s.catalogLoaded && len(s.catalog) > 0
}

// LoadCatalog fetches the catalog from src and applies it. It may be
// called once per session.
func (s *Session) LoadCatalog(ctx context.Context, src SegmentSource) error {
	if s.catalogAttempted {
		return ErrCatalogAlreadyLoaded
	}
	segments, err := src.Segments(ctx)
	s.ApplyCatalog(ctx, segments, err)
	return err
}

// ApplyCatalog records the catalog response. On success the first segment
// becomes the selected one; on failure the catalog stays empty, a catalog
// error is recorded and submission stays disabled. Only the first call has
// any effect.
func (s *Session) ApplyCatalog(ctx context.Context, segments []vehicle.Segment, err error) {
	if s.catalogAttempted {
		return
	}
	s.catalogAttempted = true
	logger := logging.FromContext(ctx)

	if err != nil {
		s.catalog = nil
		s.catalogErr = MsgCatalogFailed
		logger.Warn().Ctx(ctx).Err(err).Msg("segment catalog load failed")
		return
	}

	s.catalog = slices.Clone(segments)
	s.catalogLoaded = true
	if len(s.catalog) > 0 {
		s.form.Segment = s.catalog[0]
	}
	logger.Debug().Ctx(ctx).Int("segments", len(s.catalog)).Msg("segment catalog loaded")
}

// Submit validates the form and, if valid, moves the session to
// PhaseLoading with a new Ticket. Any previous result or failure is
// cleared first. Validation errors leave the phase untouched.
func (s *Session) Submit(ctx context.Context) (Ticket, error) {
	if !s.CanSubmit() {
		return Ticket{}, ErrSubmissionDisabled
	}
	req, err := s.form.ValidateAndBuild(s.catalog)
	if err != nil {
		return Ticket{}, err
	}

	s.latestTag++
	s.phase = PhaseLoading
	s.result = nil
	s.failure = ""

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Uint64("tag", s.latestTag).
		Str("segment", string(req.Segment)).
		Float64("daily_mileage", req.DailyMileage).
		Float64("ownership_years", req.OwnershipYears).
		Msg("comparison submitted")

	return Ticket{Tag: s.latestTag, Request: req}, nil
}

// Apply records a completed round trip. Outcomes for anything but the most
// recently issued ticket are discarded and Apply returns false.
func (s *Session) Apply(ctx context.Context, o Outcome) bool {
	logger := logging.FromContext(ctx)
	if o.Tag != s.latestTag || s.phase != PhaseLoading {
		logger.Debug().Ctx(ctx).
			Uint64("tag", o.Tag).
			Uint64("latest_tag", s.latestTag).
			Str("phase", s.phase.String()).
			Msg("discarding stale comparison outcome")
		return false
	}

	if o.Err == nil && o.Result == nil {
		o.Err = ErrEmptyResult
	}
	if o.Err != nil {
		s.phase = PhaseFailed
		s.result = nil
		s.failure = failureMessage(o.Err)
		logger.Warn().Ctx(ctx).Uint64("tag", o.Tag).Err(o.Err).Msg("comparison failed")
		return true
	}

	req := o.Request
	s.phase = PhaseSuccess
	s.result = o.Result
	s.failure = ""
	s.lastSubmitted = &req
	logger.Debug().Ctx(ctx).Uint64("tag", o.Tag).Float64("lifetime_km", o.Result.LifetimeKm).Msg("comparison succeeded")
	return true
}

// Dismiss returns a failed session to PhaseIdle, clearing the failure and
// any result. The LastSubmitted snapshot is kept across a dismissal. It
// reports whether anything changed.
func (s *Session) Dismiss() bool {
	if s.phase != PhaseFailed {
		return false
	}
	s.phase = PhaseIdle
	s.failure = ""
	s.result = nil
	return true
}

// Compare runs one synchronous submit, round trip and apply. It returns
// the validation or submission error, or the transport error of a failed
// request; the session reflects the outcome either way.
func (s *Session) Compare(ctx context.Context, c Comparer) error {
	ticket, err := s.Submit(ctx)
	if err != nil {
		return err
	}
	outcome := ticket.Run(ctx, c)
	s.Apply(ctx, outcome)
	if outcome.Err != nil {
		return outcome.Err
	}
	if s.phase == PhaseFailed {
		return ErrEmptyResult
	}
	return nil
}
