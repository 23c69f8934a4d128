package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/avvvet/mesto-services/internal/mestosvc/apperr"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const minPasswordLen = 8

var (
	validate = newValidator()

	// http(s) link with a host, optional www., optional path
	webURLPattern = regexp.MustCompile(`^https?://(www\.)?[\w\-.~:/?#\[\]@!$&'()*+,;=%]+#?$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("weburl", isWebURL); err != nil {
		panic(err)
	}
	return v
}

func isWebURL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !webURLPattern.MatchString(s) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// validateStruct maps validation failures to a generic bad request so that
// field-level details never reach the client.
func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &apperr.Error{Kind: apperr.KindBadRequest, Message: "invalid request", Err: err}
		}
		return apperr.Internal(err)
	}
	return nil
}

// ParseID rejects malformed identifiers before any store access.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("invalid id")
	}
	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkPasswordPolicy(password string) error {
	if len(password) < minPasswordLen || strings.TrimSpace(password) == "" {
		return apperr.BadRequest("password must be at least 8 characters and not blank")
	}
	return nil
}
