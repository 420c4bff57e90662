package service

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

var studentIDPattern = regexp.MustCompile(`^[0-9]{6}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return studentIDPattern.MatchString(fl.Field().String())
	})
	return v
}

// normalize trims the free-text inputs the way the form does before checking.
func normalize(req model.RegisterFormRequest) model.RegisterFormRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.EventID = model.EventRef(strings.TrimSpace(string(req.EventID)))
	return req
}

// checkIdentity runs the name and student id rules, adding failures to verr.
func (s *BookingService) checkIdentity(req model.RegisterFormRequest, verr *ValidationError) {
	err := s.validate.Struct(req)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only a nil or non-struct argument gets here.
		verr.add(FieldName, MsgInvalidName, ErrInvalidName)
		return
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Name":
			verr.add(FieldName, MsgInvalidName, ErrInvalidName)
		case "StudentID":
			verr.add(FieldStudentID, MsgInvalidID, ErrInvalidID)
		}
	}
}

// parseEventRef turns a dropdown value into an id. Blank or non-numeric
// values are reported as an unknown event.
func parseEventRef(ref model.EventRef) (int, bool) {
	id, err := strconv.Atoi(string(ref))
	if err != nil {
		return 0, false
	}
	return id, true
}
