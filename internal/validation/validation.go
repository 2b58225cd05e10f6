// Package validation registers the enum binding tags used by request
// structs, e.g. `binding:"omitempty,userrole"`.
package validation

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"teranga_match/internal/models"
)

var once sync.Once

// Register installs the custom tags on gin's validator. Safe to call more
// than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		RegisterOn(v)
	})
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("userrole", enumTag(models.ParseUserRole))
	_ = v.RegisterValidation("bookingstatus", enumTag(models.ParseBookingStatus))
	_ = v.RegisterValidation("matchstatus", enumTag(models.ParseMatchStatus))
	_ = v.RegisterValidation("moderationstatus", enumTag(models.ParseModerationStatus))
	_ = v.RegisterValidation("mediatype", enumTag(models.ParseMediaType))
	_ = v.RegisterValidation("placetype", enumTag(models.ParsePlaceType))
	_ = v.RegisterValidation("relatedtype", enumTag(models.ParseRelatedType))
}

func enumTag[T ~string](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}
