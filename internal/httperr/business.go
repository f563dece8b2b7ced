package httperr

import "errors"

// BusinessError carries a machine-readable rule-violation code
// ("slot_conflict", "vehicle_not_found", ...) that handlers translate
// into an HTTP status. The code doubles as the error message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
