package request

import (
	"regexp"

	cErr "mediadex/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator lets a request DTO supply its own message per "field.rule" key.
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d\]`)

// GetError maps binding failures to a response error, preferring the DTO's
// own message when it defines one for the failed rule.
func GetError(request interface{}, err error) *cErr.Error {
	if validationErrors, isValidatorErrors := err.(validator.ValidationErrors); isValidatorErrors {
		messages, isValidator := request.(Validator)

		var errorMessages []string
		for _, v := range validationErrors {
			if isValidator {
				field := reg.ReplaceAllString(v.Field(), ".*")
				if message, exist := messages.GetMessages()[field+"."+v.Tag()]; exist {
					errorMessages = append(errorMessages, message)
					continue
				}
			}
			errorMessages = append(errorMessages, v.Error())
		}
		if len(errorMessages) > 0 {
			return cErr.ValidateErr(errorMessages[0])
		}
	}

	return cErr.ValidateErr("Parameter error")
}
