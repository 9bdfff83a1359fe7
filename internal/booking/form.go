// Package booking owns the booking form: composite state, validation, and the
// multipart submission to the order-creation endpoint.
package booking

import (
	"encoding/json"
	"strings"
	"sync"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/internal/session"
	"blueace_booking_client/platform/phone"
)

// Wire field names, also used as validation error keys.
const (
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldHouseNo     = "houseNo"
	FieldAddress     = "address"
	FieldPincode     = "Pincode"
	FieldMessage     = "message"
	FieldLocation    = "RangeWhereYouWantService"
)

// Point is a GeoJSON-like location. Coordinates is either empty (unresolved)
// or exactly a [longitude, latitude] pair, never partially populated.
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ServiceRange wraps the location the way the backend expects it.
type ServiceRange struct {
	Location Point `json:"location"`
}

// Selection identifies what is being booked, taken from the navigation params.
type Selection struct {
	ServiceID   string
	ServiceType string
}

// Form is one in-progress booking. Identity fields are seeded once from the
// resolved session and stay immutable for the life of the form.
type Form struct {
	mu sync.Mutex

	userID      string
	serviceID   string
	serviceType string

	FullName    string `validate:"required"`
	Email       string `validate:"omitempty,email"`
	PhoneNumber string `validate:"required"`
	HouseNo     string
	Address     string `validate:"required"`
	Pincode     string `validate:"required,pincode"`
	Message     string

	ServiceLocation []ServiceRange `validate:"required,min=1"`

	errors map[string]string
}

// NewForm creates an empty form seeded with the session and selection context.
func NewForm(sess session.Session, sel Selection) *Form {
	return &Form{
		userID:      sess.UserID,
		serviceID:   sel.ServiceID,
		serviceType: sel.ServiceType,
		FullName:    sess.FullName,
		Email:       sess.Email,
		PhoneNumber: sess.PhoneNumber,
		HouseNo:     sess.HouseNo,
		Pincode:     sess.Pincode,
		ServiceLocation: []ServiceRange{
			{Location: Point{Type: "Point", Coordinates: []float64{}}},
		},
		errors: make(map[string]string),
	}
}

// Set merges a field edit into the form and clears any existing validation
// error for that field. Re-validation only happens on the next submit.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldEmail:
		f.Email = value
	case FieldPhoneNumber:
		f.PhoneNumber = value
	case FieldHouseNo:
		f.HouseNo = value
	case FieldAddress:
		f.Address = value
	case FieldPincode:
		f.Pincode = value
	case FieldMessage:
		f.Message = value
	default:
		return
	}

	delete(f.errors, field)
}

// SetCoordinates overwrites the resolved service location with a [lon, lat] pair.
func (f *Form) SetCoordinates(longitude, latitude float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ServiceLocation = []ServiceRange{
		{Location: Point{Type: "Point", Coordinates: []float64{longitude, latitude}}},
	}
	delete(f.errors, FieldLocation)
}

// Errors returns the current validation error map.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Snapshot returns a value copy of the form taken at submit time, so late
// edits cannot leak into an in-flight request.
type Snapshot struct {
	UserID      string
	ServiceID   string
	ServiceType string
	FullName    string
	Email       string
	PhoneNumber string
	HouseNo     string
	Address     string
	Pincode     string
	Message     string
	Location    []ServiceRange
}

// Snapshot copies the current form state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	location := make([]ServiceRange, len(f.ServiceLocation))
	for i, r := range f.ServiceLocation {
		coords := make([]float64, len(r.Location.Coordinates))
		copy(coords, r.Location.Coordinates)
		location[i] = ServiceRange{Location: Point{Type: r.Location.Type, Coordinates: coords}}
	}

	return Snapshot{
		UserID:      f.userID,
		ServiceID:   f.serviceID,
		ServiceType: f.serviceType,
		FullName:    f.FullName,
		Email:       f.Email,
		PhoneNumber: f.PhoneNumber,
		HouseNo:     f.HouseNo,
		Address:     f.Address,
		Pincode:     f.Pincode,
		Message:     f.Message,
		Location:    location,
	}
}

// FormFields is the statically declared multipart field list: the wire
// contract stays visible here instead of being implied by struct shape.
func (s Snapshot) FormFields() ([]api.FormField, error) {
	location, err := json.Marshal(s.Location)
	if err != nil {
		return nil, err
	}

	return []api.FormField{
		{Name: "userId", Value: s.UserID},
		{Name: "serviceId", Value: s.ServiceID},
		{Name: "serviceType", Value: s.ServiceType},
		{Name: FieldFullName, Value: s.FullName},
		{Name: FieldEmail, Value: s.Email},
		{Name: FieldPhoneNumber, Value: phone.NormalizeE164(s.PhoneNumber)},
		{Name: FieldHouseNo, Value: s.HouseNo},
		{Name: FieldAddress, Value: s.Address},
		{Name: FieldPincode, Value: s.Pincode},
		{Name: FieldMessage, Value: s.Message},
		{Name: FieldLocation, Value: string(location)},
	}, nil
}

// NormalizeFileURI guarantees a file:// prefix on recorded clip URIs.
func NormalizeFileURI(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return uri
	}
	return "file://" + uri
}
