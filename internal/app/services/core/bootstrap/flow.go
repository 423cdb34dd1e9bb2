package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"login-service/internal/app/contracts"
	"login-service/internal/app/models"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"login-service/internal/pkg/i18n"
	"login-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Dependencies struct {
	Storage   contracts.ClientStorage
	Issuer    contracts.TokenIssuer
	Navigator contracts.Navigator
	Messages  contracts.Messages

	// Locker, when set, keeps two flows of the same client from reaching the
	// issuer at the same time.
	Locker    contracts.LockerService
	LockTTL   time.Duration
	Publisher contracts.EventPublisher

	ClientID string
	Log      *zap.Logger
	Now      func() time.Time
}

// Flow checks for an existing pending identity, collects an email address and
// requests a one-time token for it. A Flow serves one activation of the login
// page and is safe for concurrent use.
type Flow struct {
	deps Dependencies

	mu    sync.Mutex
	state State
	form  FormState

	mounted       bool
	mountRedirect bool
	mountErr      error
}

func NewFlow(deps Dependencies) (*Flow, error) {
	switch {
	case deps.Storage == nil:
		return nil, fmt.Errorf("%w: storage", ErrMissingDependency)
	case deps.Issuer == nil:
		return nil, fmt.Errorf("%w: issuer", ErrMissingDependency)
	case deps.Navigator == nil:
		return nil, fmt.Errorf("%w: navigator", ErrMissingDependency)
	case deps.Messages == nil:
		return nil, fmt.Errorf("%w: messages", ErrMissingDependency)
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.LockTTL <= 0 {
		deps.LockTTL = time.Minute
	}

	return &Flow{
		deps:  deps,
		state: CheckingExistingSession,
		form: FormState{
			Errors:  map[string]string{},
			Touched: map[string]bool{},
		},
	}, nil
}

// Mount looks for a pending identity in client storage and navigates to the
// verification page when one exists. Only the first call does any work; later
// calls return the first result.
func (f *Flow) Mount(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mounted {
		return f.mountRedirect, f.mountErr
	}
	f.mounted = true

	requestID := utils.GetRequestID(ctx)
	var identity models.PendingIdentity
	found, err := f.deps.Storage.Get(ctx, constvars.StorageKeyUser, &identity)
	if err != nil {
		f.deps.Log.Error("bootstrap.Flow.Mount error reading client storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, f.deps.ClientID),
			zap.Error(err),
		)
		f.mountErr = err
		return false, err
	}

	if found && identity.IsPresent() {
		f.navigateLocked(constvars.RouteVerify)
		f.mountRedirect = true
		f.deps.Log.Info("bootstrap.Flow.Mount found pending identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, f.deps.ClientID),
			zap.String(constvars.LoggingRedirectPathKey, constvars.RouteVerify),
		)
		return true, nil
	}

	f.state = AwaitingInput
	return false, nil
}

// Change records a new value for the email field and recomputes its error.
// Changes are ignored while a submission is in flight.
func (f *Flow) Change(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.form.Loading || f.state == Redirecting {
		return
	}
	f.form.Email = value
	f.validateLocked()
}

// Blur marks the email field as touched, which makes its error visible.
func (f *Flow) Blur() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Redirecting {
		return
	}
	f.form.Touched[constvars.FormFieldEmail] = true
	f.validateLocked()
}

func (f *Flow) validateLocked() {
	if _, vErr := ValidateEmail(f.form.Email); vErr != nil {
		f.form.Errors[constvars.FormFieldEmail] = f.deps.Messages.Get(vErr.Kind.MessageKey())
		return
	}
	delete(f.form.Errors, constvars.FormFieldEmail)
}

// Submit requests a one-time token for the current email. On success the
// pending identity is stored and the flow navigates to the verification page.
// On failure the issuer's message is attached to the email field and the
// flow waits for input again.
func (f *Flow) Submit(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	f.mu.Lock()
	if f.state == Redirecting {
		f.mu.Unlock()
		return ErrFlowRedirected
	}
	if f.form.Loading {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}

	email, vErr := ValidateEmail(f.form.Email)
	if vErr != nil {
		f.form.Touched[constvars.FormFieldEmail] = true
		f.form.Errors[constvars.FormFieldEmail] = f.deps.Messages.Get(vErr.Kind.MessageKey())
		f.state = AwaitingInput
		f.mu.Unlock()
		return vErr
	}

	f.form.Loading = true
	f.state = Submitting
	f.mu.Unlock()

	err := f.submit(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Loading = false
	if f.state != Redirecting {
		f.state = AwaitingInput
	}

	if err != nil {
		f.deps.Log.Warn("bootstrap.Flow.Submit failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, f.deps.ClientID),
			zap.String(constvars.LoggingEmailDomainKey, utils.EmailDomain(email)),
			zap.Error(err),
		)
	}
	return err
}

// submit runs without f.mu held so Form reports Loading while the issuer is
// being called.
func (f *Flow) submit(ctx context.Context, email string) error {
	if f.deps.Locker != nil {
		lockKey := fmt.Sprintf(constvars.SubmitLockKeyFormat, f.deps.ClientID)
		acquired, lockValue, err := f.deps.Locker.TryLock(ctx, lockKey, f.deps.LockTTL)
		if err != nil {
			f.attachFieldError(clientMessage(err))
			return err
		}
		if !acquired {
			return ErrSubmissionInFlight
		}
		defer func() {
			if err := f.deps.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
				f.deps.Log.Warn("bootstrap.Flow.Submit error releasing submit lock",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(err),
				)
			}
		}()
	}

	if err := f.deps.Issuer.RequestOneTimeToken(ctx, email); err != nil {
		issuanceErr := &IssuanceError{Message: clientMessage(err), Err: err}
		f.attachFieldError(issuanceErr.Message)
		f.publish(ctx, constvars.LoginEventOTTRequestFailed, email, issuanceErr.Message)
		return issuanceErr
	}

	if err := f.deps.Storage.Set(ctx, constvars.StorageKeyUser, models.PendingIdentity{Email: email}); err != nil {
		f.attachFieldError(clientMessage(err))
		return err
	}
	f.publish(ctx, constvars.LoginEventOTTRequested, email, "")

	f.mu.Lock()
	f.navigateLocked(constvars.RouteVerify)
	f.mu.Unlock()
	return nil
}

func (f *Flow) attachFieldError(detail string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Touched[constvars.FormFieldEmail] = true
	f.form.Errors[constvars.FormFieldEmail] = f.deps.Messages.Get(i18n.KeyUnknownError) + " " + detail
}

func (f *Flow) navigateLocked(path string) {
	f.state = Redirecting
	f.deps.Navigator.NavigateTo(path)
}

// publish never fails the flow; publishing problems are only logged.
func (f *Flow) publish(ctx context.Context, eventType, email, reason string) {
	if f.deps.Publisher == nil {
		return
	}
	event := &models.LoginEvent{
		Type:        eventType,
		ClientID:    f.deps.ClientID,
		EmailDomain: utils.EmailDomain(email),
		OccurredAt:  f.deps.Now().UTC(),
		Reason:      reason,
	}
	if err := f.deps.Publisher.Publish(ctx, event); err != nil {
		f.deps.Log.Warn("bootstrap.Flow error publishing login event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

// Form returns a snapshot of the form.
func (f *Flow) Form() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form.clone()
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// clientMessage extracts text that is safe to show to the user.
func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
