package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks a decoded request body against its validator tags
// and folds all violations into a single InvalidArgument error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.InvalidArgument("invalid request: %v", err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return apperror.InvalidArgument("validation failed: %s", strings.Join(parts, "; "))
}
