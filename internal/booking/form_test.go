package booking

import (
	"encoding/json"
	"testing"

	"blueace_booking_client/internal/session"
	"blueace_booking_client/platform/validator"
)

func TestValidateReportsAllMissingFieldsInOnePass(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{}, Selection{})
	errs := form.Validate(validator.New())

	for _, field := range []string{FieldFullName, FieldPhoneNumber, FieldAddress, FieldPincode} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
	if _, ok := errs[FieldLocation]; ok {
		t.Fatalf("location structure is present on a fresh form, got error anyway")
	}
	if _, ok := errs[FieldEmail]; ok {
		t.Fatalf("empty email must not produce an error")
	}
}

func TestValidatePassesOnCompleteForm(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{}, Selection{})
	form.Set(FieldFullName, "Anish Kumar")
	form.Set(FieldPhoneNumber, "7217619794")
	form.Set(FieldAddress, "12 MG Road")
	form.Set(FieldPincode, "110086")

	if errs := form.Validate(validator.New()); len(errs) != 0 {
		t.Fatalf("expected clean validation, got %v", errs)
	}
}

func TestValidateRejectsMalformedPincodeAndEmail(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{}, Selection{})
	form.Set(FieldFullName, "Anish Kumar")
	form.Set(FieldPhoneNumber, "7217619794")
	form.Set(FieldAddress, "12 MG Road")
	form.Set(FieldPincode, "0123")
	form.Set(FieldEmail, "not-an-email")

	errs := form.Validate(validator.New())
	if _, ok := errs[FieldPincode]; !ok {
		t.Fatalf("expected pincode error, got %v", errs)
	}
	if _, ok := errs[FieldEmail]; !ok {
		t.Fatalf("expected email format error, got %v", errs)
	}
}

func TestSetClearsOnlyThatFieldError(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{}, Selection{})
	form.Validate(validator.New())

	form.Set(FieldFullName, "Anish Kumar")

	errs := form.Errors()
	if _, ok := errs[FieldFullName]; ok {
		t.Fatalf("editing a field must clear its error")
	}
	if _, ok := errs[FieldPhoneNumber]; !ok {
		t.Fatalf("other field errors must survive an edit")
	}
}

func TestSetCoordinatesIsAlwaysAFullPair(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{}, Selection{})

	if coords := form.Snapshot().Location[0].Location.Coordinates; len(coords) != 0 {
		t.Fatalf("fresh form must have empty coordinates, got %v", coords)
	}

	form.SetCoordinates(77.2, 28.6)

	coords := form.Snapshot().Location[0].Location.Coordinates
	if len(coords) != 2 || coords[0] != 77.2 || coords[1] != 28.6 {
		t.Fatalf("expected [77.2 28.6] longitude first, got %v", coords)
	}
}

func TestFormFieldsDeclareTheWireContract(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{UserID: "u1"}, Selection{ServiceID: "s1", ServiceType: "AC Repair"})
	form.Set(FieldFullName, "Anish Kumar")
	form.Set(FieldPhoneNumber, "7217619794")
	form.Set(FieldAddress, "12 MG Road")
	form.Set(FieldPincode, "110086")
	form.SetCoordinates(77.1, 28.5)

	fields, err := form.Snapshot().FormFields()
	if err != nil {
		t.Fatalf("form fields failed: %v", err)
	}

	byName := map[string]string{}
	for _, field := range fields {
		byName[field.Name] = field.Value
	}

	if byName["userId"] != "u1" || byName["serviceId"] != "s1" || byName["serviceType"] != "AC Repair" {
		t.Fatalf("identity fields missing: %v", byName)
	}
	if byName[FieldPhoneNumber] != "+917217619794" {
		t.Fatalf("expected E.164 phone, got %q", byName[FieldPhoneNumber])
	}

	var location []ServiceRange
	if err := json.Unmarshal([]byte(byName[FieldLocation]), &location); err != nil {
		t.Fatalf("location field is not valid JSON: %v", err)
	}
	coords := location[0].Location.Coordinates
	if len(coords) != 2 || coords[0] != 77.1 || coords[1] != 28.5 {
		t.Fatalf("expected JSON location [77.1 28.5], got %v", coords)
	}
}

func TestSnapshotIsDetachedFromLaterEdits(t *testing.T) {
	t.Parallel()

	form := NewForm(session.Session{}, Selection{})
	form.Set(FieldFullName, "Before")
	form.SetCoordinates(77.1, 28.5)

	snapshot := form.Snapshot()

	form.Set(FieldFullName, "After")
	form.SetCoordinates(0, 0)

	if snapshot.FullName != "Before" {
		t.Fatalf("snapshot leaked a later edit: %q", snapshot.FullName)
	}
	if coords := snapshot.Location[0].Location.Coordinates; coords[0] != 77.1 {
		t.Fatalf("snapshot coordinates leaked a later edit: %v", coords)
	}
}

func TestNormalizeFileURI(t *testing.T) {
	t.Parallel()

	if got := NormalizeFileURI("/tmp/clip.wav"); got != "file:///tmp/clip.wav" {
		t.Fatalf("expected prefix added, got %q", got)
	}
	if got := NormalizeFileURI("file:///tmp/clip.wav"); got != "file:///tmp/clip.wav" {
		t.Fatalf("expected already-normalized uri unchanged, got %q", got)
	}
}
