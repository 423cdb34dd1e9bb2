package controllers

import (
	"errors"
	"login-service/internal/app/delivery/http/views/pages"
	"login-service/internal/app/services/core/bootstrap"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/dto/responses"
	"login-service/internal/pkg/i18n"
	"login-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type LoginController struct {
	Log          *zap.Logger
	LoginUsecase bootstrap.LoginUsecase
}

func NewLoginController(logger *zap.Logger, loginUsecase bootstrap.LoginUsecase) *LoginController {
	return &LoginController{
		Log:          logger,
		LoginUsecase: loginUsecase,
	}
}

// redirectNavigator remembers the path the flow navigated to so the handler
// can answer with a redirect once the flow returns.
type redirectNavigator struct {
	path string
}

func (n *redirectNavigator) NavigateTo(path string) {
	n.path = path
}

// ShowLogin renders the email form, or redirects to the verification page
// when the client already requested a token.
func (ctrl *LoginController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	messages := i18n.FromContext(ctx)
	navigator := new(redirectNavigator)

	flow, err := ctrl.LoginUsecase.NewFlow(ctx, utils.GetClientID(ctx), navigator, messages)
	if err != nil {
		ctrl.renderErrorPage(w, r, err)
		return
	}

	redirected, err := flow.Mount(ctx)
	if err != nil {
		ctrl.renderErrorPage(w, r, err)
		return
	}
	if redirected {
		utils.Redirect(w, r, navigator.path, constvars.StatusFound)
		return
	}

	ctrl.renderLoginPage(w, r, constvars.StatusOK, flow.Form(), "")
}

// Submit handles the posted email form.
func (ctrl *LoginController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := utils.GetRequestID(ctx)
	messages := i18n.FromContext(ctx)
	navigator := new(redirectNavigator)

	request, err := utils.ParseLoginRequest(r)
	if err != nil {
		ctrl.renderErrorPage(w, r, err)
		return
	}

	flow, err := ctrl.LoginUsecase.NewFlow(ctx, utils.GetClientID(ctx), navigator, messages)
	if err != nil {
		ctrl.renderErrorPage(w, r, err)
		return
	}

	redirected, err := flow.Mount(ctx)
	if err != nil {
		ctrl.renderErrorPage(w, r, err)
		return
	}
	if redirected {
		utils.Redirect(w, r, navigator.path, constvars.StatusSeeOther)
		return
	}

	flow.Change(request.Email)
	flow.Blur()

	err = flow.Submit(ctx)
	if err == nil {
		ctrl.Log.Info("LoginController.Submit one-time token requested",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, utils.GetClientID(ctx)),
			zap.String(constvars.LoggingRedirectPathKey, navigator.path),
		)
		utils.Redirect(w, r, navigator.path, constvars.StatusSeeOther)
		return
	}

	var (
		validationErr *bootstrap.ValidationError
		issuanceErr   *bootstrap.IssuanceError
	)
	switch {
	case errors.As(err, &validationErr):
		ctrl.renderLoginPage(w, r, constvars.StatusUnprocessableEntity, flow.Form(), "")
	case errors.As(err, &issuanceErr):
		ctrl.renderLoginPage(w, r, constvars.StatusBadGateway, flow.Form(), "")
	case errors.Is(err, bootstrap.ErrSubmissionInFlight):
		form := flow.Form()
		form.Loading = true
		ctrl.renderLoginPage(w, r, constvars.StatusConflict, form, messages.Get(i18n.KeyInFlight))
	case errors.Is(err, bootstrap.ErrFlowRedirected):
		utils.Redirect(w, r, constvars.RouteVerify, constvars.StatusSeeOther)
	default:
		utils.LogCustomError(ctrl.Log, err)
		ctrl.renderLoginPage(w, r, constvars.StatusInternalServerError, flow.Form(), "")
	}
}

// Validate answers the live validation requests sent on field change and
// blur events.
func (ctrl *LoginController) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, err := utils.ParseValidateEmailRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	flow, err := ctrl.LoginUsecase.NewFlow(ctx, utils.GetClientID(ctx), new(redirectNavigator), i18n.FromContext(ctx))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	flow.Change(request.Email)
	if request.Event == constvars.FieldEventBlur {
		flow.Blur()
	}

	form := flow.Form()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateEmailSuccessMessage, responses.ValidateEmail{
		Email:   form.Email,
		Touched: form.Touched[constvars.FormFieldEmail],
		Error:   form.FieldError(constvars.FormFieldEmail),
	})
}

// ShowVerify renders the landing page of the verification step.
func (ctrl *LoginController) ShowVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	messages := i18n.FromContext(ctx)

	identity, err := ctrl.LoginUsecase.GetPendingIdentity(ctx, utils.GetClientID(ctx))
	if err != nil {
		ctrl.renderErrorPage(w, r, err)
		return
	}
	if identity == nil {
		utils.Redirect(w, r, constvars.RouteLogin, constvars.StatusFound)
		return
	}

	utils.BuildHTMLResponse(ctrl.Log, w, r, constvars.StatusOK, pages.VerifyPage(pages.VerifyPageParams{
		Lang:     messages.Tag().String(),
		Messages: messages,
		Email:    identity.Email,
	}))
}

func (ctrl *LoginController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.Health{
		Status: constvars.HealthCheckSuccessMessage,
	})
}

func (ctrl *LoginController) renderLoginPage(w http.ResponseWriter, r *http.Request, code int, form bootstrap.FormState, notice string) {
	messages := i18n.FromContext(r.Context())
	utils.BuildHTMLResponse(ctrl.Log, w, r, code, pages.LoginPage(pages.LoginPageParams{
		Lang:     messages.Tag().String(),
		Messages: messages,
		Email:    form.Email,
		Error:    form.FieldError(constvars.FormFieldEmail),
		Loading:  form.Loading,
		Notice:   notice,
	}))
}

func (ctrl *LoginController) renderErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	code, _, _ := utils.LogCustomError(ctrl.Log, err)
	messages := i18n.FromContext(r.Context())
	utils.BuildHTMLResponse(ctrl.Log, w, r, code, pages.ErrorPage(pages.ErrorPageParams{
		Lang:     messages.Tag().String(),
		Messages: messages,
	}))
}
