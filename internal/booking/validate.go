package booking

import (
	validatorlib "github.com/go-playground/validator/v10"

	"blueace_booking_client/platform/validator"
)

// fieldMessages maps struct fields to the error key and user-facing message
// shown inline and in the pre-submit alert.
var fieldMessages = map[string]struct {
	key     string
	message string
}{
	"FullName":        {FieldFullName, "Full Name is required. Please enter your full name."},
	"Email":           {FieldEmail, "Invalid email format. Please enter a valid email address."},
	"PhoneNumber":     {FieldPhoneNumber, "Phone number is required. Please provide a valid contact number."},
	"Address":         {FieldAddress, "Address is required. Please enter your complete address."},
	"Pincode":         {FieldPincode, "Pincode is required. Please provide a valid pincode."},
	"ServiceLocation": {FieldLocation, "Please Give nearByLandMark"},
}

// Validate recomputes the full error map in one pass. Submission proceeds
// only when the returned map is empty.
func (f *Form) Validate(v *validator.Validator) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string)

	if err := v.Struct(f); err != nil {
		if fieldErrs, ok := err.(validatorlib.ValidationErrors); ok {
			for _, fieldErr := range fieldErrs {
				mapped, known := fieldMessages[fieldErr.StructField()]
				if !known {
					continue
				}
				errs[mapped.key] = mapped.message
			}
		}
	}

	f.errors = errs

	out := make(map[string]string, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
