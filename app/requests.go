package app

import (
	"fmt"
	"strings"

	"propfilter/domain/project"
	"propfilter/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FilterRequest is the user's selection as received from a form, query string or JSON body
type FilterRequest struct {
	Developers   []string `json:"developers" form:"developer" validate:"max=1000,dive,max=512"`
	Areas        []string `json:"areas" form:"area" validate:"max=1000,dive,max=512"`
	DeliverDates []string `json:"deliver_dates" form:"date" validate:"max=1000,dive,max=64"`
	Format       string   `json:"format" form:"format" validate:"omitempty,oneof=xlsx csv"`
}

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks request bounds
func (r FilterRequest) Validate() error {
	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InvalidInput(err.Error())
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return errors.InvalidInput(strings.Join(msgs, "; "))
}

// Criteria converts the request into filter criteria. Values are used verbatim.
func (r FilterRequest) Criteria() project.Criteria {
	return project.NewCriteria(r.Developers, r.Areas, r.DeliverDates)
}
