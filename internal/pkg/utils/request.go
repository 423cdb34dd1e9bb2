package utils

import (
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/dto/requests"
	"login-service/internal/pkg/exceptions"
	"mime"
	"net/http"

	"github.com/goccy/go-json"
)

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	return err == nil && mediaType == constvars.MIMEApplicationJSON
}

// ParseLoginRequest accepts either a JSON body or a url-encoded form.
func ParseLoginRequest(r *http.Request) (*requests.Login, error) {
	request := new(requests.Login)
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		SanitizeLoginRequest(request)
		return request, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	request.Email = r.PostForm.Get(constvars.FormFieldEmail)
	SanitizeLoginRequest(request)
	return request, nil
}

func ParseValidateEmailRequest(r *http.Request) (*requests.ValidateEmail, error) {
	request := new(requests.ValidateEmail)
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		SanitizeValidateEmailRequest(request)
		return request, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	request.Email = r.PostForm.Get(constvars.FormFieldEmail)
	request.Event = r.PostForm.Get(constvars.FormFieldEvent)
	SanitizeValidateEmailRequest(request)
	return request, nil
}
