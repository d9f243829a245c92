// Package handler translates HTTP requests into single store operations.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/sports-club/internal/queue"
	"github.com/iliyamo/sports-club/internal/repository"
)

// storeTimeout bounds every store call made by a handler.
const storeTimeout = 5 * time.Second

// EventPublisher is implemented by service.Publisher. A nil publisher
// disables court events.
type EventPublisher interface {
	PublishCourtEvent(ctx context.Context, ev queue.CourtEvent) error
}

// Validator adapts go-playground/validator to echo.Validator. Field names in
// messages use the JSON tag so clients see the names they sent.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds the validator installed on the echo instance.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			if fe.Tag() == "required" {
				return fmt.Errorf("%s is required", fe.Field())
			}
			return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}

// bindStrict decodes the JSON body into v, rejecting unknown fields and
// trailing data, and then runs the registered validator. The returned
// error is already phrased for the client.
func bindStrict(c echo.Context, v interface{}) error {
	body := c.Request().Body
	if body == nil {
		return errors.New("invalid request body")
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field ") {
			return fmt.Errorf("unknown field %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		}
		return errors.New("invalid request body")
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("invalid request body")
	}
	return c.Validate(v)
}

// parseID reads the :id path parameter as an object id.
func parseID(c echo.Context) (primitive.ObjectID, bool) {
	id, err := repository.ParseID(c.Param("id"))
	return id, err == nil
}

// storeCtx derives the bounded context used for one store call.
func storeCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), storeTimeout)
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

func badRequest(c echo.Context, err error) error {
	return message(c, http.StatusBadRequest, err.Error())
}

func invalidID(c echo.Context) error {
	return message(c, http.StatusBadRequest, "Invalid id")
}

// serverError logs the store failure and answers with a generic 500; the
// underlying error never reaches the client.
func serverError(c echo.Context, op string, err error) error {
	log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("store operation failed")
	return message(c, http.StatusInternalServerError, "Server error")
}
