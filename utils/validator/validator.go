package validatorx

import (
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/wa-crm/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("sortorder", validateSortOrder)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// sortorder accepts empty, "asc" or "desc" in any case.
func validateSortOrder(fl gpvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return strings.EqualFold(s, string(constant.SortAsc)) || strings.EqualFold(s, string(constant.SortDesc))
}
