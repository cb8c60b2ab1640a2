// Package resetflow drives the four-step forgotten-password wizard:
// submit an email, confirm the mailed OTP code, choose a new password,
// done. A resend cooldown counts down once per second while the flow is
// alive.
package resetflow

import (
	"context"
	"sync"
	"time"

	"shopfront/internal/logging"
)

// Step identifies the wizard's current screen. Steps only advance through
// successful submissions; Back and StartOver move backwards.
type Step int

const (
	StepEmail Step = iota + 1
	StepOtp
	StepNewPassword
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepEmail:
		return "email"
	case StepOtp:
		return "otp"
	case StepNewPassword:
		return "new-password"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// API is the slice of the remote client the flow needs.
type API interface {
	SendOtp(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) (string, error)
}

// Tokens persists the token issued by a completed reset.
type Tokens interface {
	Set(ctx context.Context, token string) error
}

// Verifier re-establishes the signed-in session from the stored token.
type Verifier interface {
	Verify(ctx context.Context) bool
}

// Result reports a submission outcome to the caller.
type Result struct {
	OK      bool
	Message string
}

const resendCooldown = 60

// Flow holds the wizard's state machine. One Flow instance covers one
// wizard run; Close stops its cooldown ticker.
type Flow struct {
	api     API
	tokens  Tokens
	session Verifier
	log     logging.Logger

	mu       sync.Mutex
	step     Step
	email    string
	cooldown int
	signedIn bool

	done      chan struct{}
	closeOnce sync.Once

	tickEvery time.Duration
}

func New(apiClient API, tokens Tokens, session Verifier, log logging.Logger) *Flow {
	f := &Flow{
		api:       apiClient,
		tokens:    tokens,
		session:   session,
		log:       log,
		step:      StepEmail,
		done:      make(chan struct{}),
		tickEvery: time.Second,
	}
	go f.run()
	return f
}

// Close stops the cooldown ticker. Safe to call more than once.
func (f *Flow) Close() {
	f.closeOnce.Do(func() { close(f.done) })
}

func (f *Flow) run() {
	t := time.NewTicker(f.tickEvery)
	defer t.Stop()

	for {
		select {
		case <-f.done:
			return
		case <-t.C:
			f.tick()
		}
	}
}

// tick decrements the resend cooldown, stopping at zero.
func (f *Flow) tick() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cooldown > 0 {
		f.cooldown--
	}
}

// Step returns the wizard's current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Email returns the address the flow is resetting, empty on the first step.
func (f *Flow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// Cooldown returns the seconds left before another resend is allowed.
func (f *Flow) Cooldown() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cooldown
}

// SubmitEmail validates the address, requests an OTP mail and, on success,
// advances to the code step with a fresh resend cooldown.
func (f *Flow) SubmitEmail(ctx context.Context, email string) Result {
	if !emailRx.MatchString(email) {
		return Result{Message: msgInvalidEmail}
	}

	if err := f.api.SendOtp(ctx, email); err != nil {
		return f.failure(ctx, "sending reset code", err)
	}

	f.mu.Lock()
	f.email = email
	f.step = StepOtp
	f.cooldown = resendCooldown
	f.mu.Unlock()

	return Result{OK: true, Message: "Code sent. Check your inbox."}
}

// Resend requests another OTP mail for the already-submitted address. Only
// allowed on the code step once the cooldown has run out; the step does
// not change.
func (f *Flow) Resend(ctx context.Context) Result {
	f.mu.Lock()
	if f.step != StepOtp {
		f.mu.Unlock()
		return Result{Message: "Nothing to resend."}
	}
	if f.cooldown > 0 {
		left := f.cooldown
		f.mu.Unlock()
		return Result{Message: waitMessage(left)}
	}
	email := f.email
	f.mu.Unlock()

	if err := f.api.SendOtp(ctx, email); err != nil {
		return f.failure(ctx, "resending reset code", err)
	}

	f.mu.Lock()
	f.cooldown = resendCooldown
	f.mu.Unlock()

	return Result{OK: true, Message: "Code sent. Check your inbox."}
}

// SubmitOtp validates and confirms the mailed code, advancing to the
// password step.
func (f *Flow) SubmitOtp(ctx context.Context, code string) Result {
	if !otpRx.MatchString(code) {
		return Result{Message: msgInvalidOtp}
	}

	if err := f.api.VerifyOtp(ctx, code); err != nil {
		return f.failure(ctx, "verifying reset code", err)
	}

	f.mu.Lock()
	f.step = StepNewPassword
	f.mu.Unlock()

	return Result{OK: true, Message: "Code verified."}
}

// SubmitNewPassword validates and applies the new password. The token the
// backend returns is stored and the session re-verified, so a completed
// reset leaves the user signed in.
func (f *Flow) SubmitNewPassword(ctx context.Context, password, confirm string) Result {
	if msg := validatePassword(password, confirm); msg != "" {
		return Result{Message: msg}
	}

	f.mu.Lock()
	email := f.email
	f.mu.Unlock()

	token, err := f.api.ResetPassword(ctx, email, password)
	if err != nil {
		return f.failure(ctx, "resetting password", err)
	}

	if err := f.tokens.Set(ctx, token); err != nil {
		f.log.Warn(ctx, "persisting reset token", "error", err)
	}
	signedIn := f.session.Verify(ctx)

	f.mu.Lock()
	f.step = StepDone
	f.signedIn = signedIn
	f.mu.Unlock()

	return Result{OK: true, Message: "Password updated."}
}

// SignedIn reports whether the post-reset session verify succeeded. Only
// meaningful once the flow reaches StepDone.
func (f *Flow) SignedIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signedIn
}

// Back moves one step towards the email screen. The cooldown keeps
// ticking: going back does not earn a free resend.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepOtp:
		f.step = StepEmail
	case StepNewPassword:
		f.step = StepOtp
	}
}

// StartOver returns to the email step and forgets the address. The
// cooldown is left untouched for the same reason as Back.
func (f *Flow) StartOver() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.step = StepEmail
	f.email = ""
}

func (f *Flow) failure(ctx context.Context, msg string, err error) Result {
	f.log.Warn(ctx, msg, "error", err)
	return Result{Message: errorMessage(err)}
}
