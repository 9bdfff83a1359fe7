package booking

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/internal/autocomplete"
	"blueace_booking_client/internal/geocode"
	"blueace_booking_client/internal/recorder"
	"blueace_booking_client/platform/logger"
	"blueace_booking_client/platform/validator"
)

// OrderCreator submits the assembled booking. *api.Client satisfies this.
type OrderCreator interface {
	CreateOrder(ctx context.Context, fields []api.FormField, voice *api.VoiceAttachment) (api.OrderResult, error)
}

// Notifier surfaces blocking alerts to the user.
type Notifier interface {
	Alert(title, message string)
}

// Controller wires the form, autocomplete, geocoding, and recorder into the
// booking workflow and owns submission.
type Controller struct {
	form      *Form
	suggester *autocomplete.Coordinator
	resolver  *geocode.Resolver
	recorder  *recorder.Recorder
	orders    OrderCreator
	validator *validator.Validator
	notifier  Notifier
	navigator Navigator
	log       *logger.Logger

	submitting atomic.Bool
}

// NewController creates a controller for one booking screen instance.
func NewController(
	form *Form,
	suggester *autocomplete.Coordinator,
	resolver *geocode.Resolver,
	rec *recorder.Recorder,
	orders OrderCreator,
	v *validator.Validator,
	notifier Notifier,
	navigator Navigator,
	log *logger.Logger,
) *Controller {
	return &Controller{
		form:      form,
		suggester: suggester,
		resolver:  resolver,
		recorder:  rec,
		orders:    orders,
		validator: v,
		notifier:  notifier,
		navigator: navigator,
		log:       log,
	}
}

// Form exposes the owned form for field edits and error display.
func (c *Controller) Form() *Form {
	return c.form
}

// Recorder exposes the voice recorder for the recording controls.
func (c *Controller) Recorder() *recorder.Recorder {
	return c.recorder
}

// Suggestions returns the current autocomplete state.
func (c *Controller) Suggestions() ([]api.AddressSuggestion, bool) {
	return c.suggester.Suggestions(), c.suggester.Visible()
}

// OnAddressTextChanged records the text into the form immediately so the
// input stays responsive, then schedules a debounced suggestion fetch.
func (c *Controller) OnAddressTextChanged(ctx context.Context, text string) {
	c.form.Set(FieldAddress, text)
	c.suggester.OnTextChanged(ctx, text)
}

// SelectAddress hides the suggestion list, writes the selected text into the
// form, and resolves it to coordinates. A failed geocode leaves the previous
// location value; validation catches the absence later.
func (c *Controller) SelectAddress(ctx context.Context, description string) {
	c.suggester.Dismiss()
	c.form.Set(FieldAddress, description)

	coords, ok := c.resolver.Resolve(ctx, description)
	if !ok {
		return
	}

	// Longitude first, matching the backend's GeoJSON convention.
	c.form.SetCoordinates(coords.Longitude, coords.Latitude)
}

// Submit validates the form and issues the multipart booking request. All
// failure modes are converted to alerts; form state survives anything short
// of a confirmed booking.
func (c *Controller) Submit(ctx context.Context) {
	errs := c.form.Validate(c.validator)
	if len(errs) > 0 {
		c.notifier.Alert("Input Empty", joinMessages(errs))
		return
	}

	// At most one in-flight submission per form instance.
	if !c.submitting.CompareAndSwap(false, true) {
		return
	}
	defer c.submitting.Store(false)

	snapshot := c.form.Snapshot()

	fields, err := snapshot.FormFields()
	if err != nil {
		c.log.Error("serialize booking form", "error", err)
		c.notifier.Alert("Booking Failed", "There was an error submitting your booking. Please try again.")
		return
	}

	var voice *api.VoiceAttachment
	if clips := c.recorder.Clips(); len(clips) > 0 {
		voice = &api.VoiceAttachment{
			FileURI:  NormalizeFileURI(clips[0].FileURI),
			MIMEType: "audio/x-wav",
			Filename: "voiceNote.wav",
		}
	}

	result, err := c.orders.CreateOrder(ctx, fields, voice)
	if err != nil {
		c.log.Error("booking submission failed", "error", err)
		c.notifier.Alert("Booking Failed", "There was an error submitting your booking. Please try again.")
		return
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = "An unknown error occurred."
		}
		c.notifier.Alert("Booking Failed", message)
		return
	}

	// Local form and clip state is discarded by leaving the screen.
	c.recorder.ClearAll()
	c.notifier.Alert("Booking Successful", "Your booking has been made successfully.")
	RouteResult(c.navigator, result.Data)
}

// joinMessages concatenates all validation messages for the pre-submit alert,
// in a stable order.
func joinMessages(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(errs))
	for _, key := range keys {
		messages = append(messages, errs[key])
	}
	return strings.Join(messages, "\n")
}
