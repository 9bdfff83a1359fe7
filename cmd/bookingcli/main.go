package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/internal/audio"
	"blueace_booking_client/internal/autocomplete"
	"blueace_booking_client/internal/booking"
	"blueace_booking_client/internal/catalog"
	"blueace_booking_client/internal/geocode"
	"blueace_booking_client/internal/recorder"
	"blueace_booking_client/internal/session"
	"blueace_booking_client/internal/ui"
	"blueace_booking_client/platform/apperr"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"
	"blueace_booking_client/platform/phone"
	"blueace_booking_client/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting booking client")

	ctx := context.Background()
	term := ui.NewTerminal(os.Stdin, os.Stdout)

	client := api.New(cfg, log)
	store := session.NewFileTokenStore(cfg.GetTokenPath())
	resolver := session.NewResolver(client, store, log)

	sess, err := resolver.Resolve(ctx)
	if err != nil {
		if !apperr.Is(err, apperr.KindUnauthorized) {
			log.Error("session resolve failed", "error", err)
		}
		sess, err = signIn(ctx, resolver, term)
		if err != nil {
			term.Alert("Login Failed", err.Error())
			os.Exit(1)
		}
	}
	log = log.WithUserID(sess.UserID)

	authed := client.WithToken(sess.Token)

	selection, err := chooseService(ctx, catalog.New(authed, log), term)
	if err != nil {
		term.Alert("Error", "Could not load the service catalog. Please try again later.")
		os.Exit(1)
	}

	form := booking.NewForm(sess, selection)
	suggester := autocomplete.New(authed, cfg, log)
	geocoder := geocode.New(authed, log)

	rec := recorder.New(
		audio.NewFFMPEGCapture(cfg),
		audio.NewFFPlayPlayer(cfg),
		audio.NewDesktopGate(cfg),
		audio.XDGSettingsOpener{},
		term,
		log,
	)

	controller := booking.NewController(
		form, suggester, geocoder, rec,
		authed, validator.New(), term, term, log,
	)

	fmt.Printf("\nBook A Service of %s\n", selection.ServiceType)
	runBookingLoop(ctx, controller, term)
}

func signIn(ctx context.Context, resolver *session.Resolver, term *ui.Terminal) (session.Session, error) {
	fmt.Println("Sign in to continue.")
	email := term.Prompt("Email")

	contact := term.Prompt("Phone number")
	for contact != "" && !phone.IsValid(contact) {
		contact = term.Prompt("That number does not look valid. Phone number")
	}

	password := term.Prompt("Password")
	return resolver.SignIn(ctx, email, password, contact)
}

func chooseService(ctx context.Context, svc *catalog.Service, term *ui.Terminal) (booking.Selection, error) {
	categories, err := svc.Categories(ctx)
	if err != nil {
		return booking.Selection{}, err
	}

	fmt.Println("\nService categories:")
	for i, category := range categories {
		fmt.Printf("  %d. %s\n", i+1, category.Name)
	}

	index := promptIndex(term, "Choose a category", len(categories))
	category := categories[index]

	services, err := svc.ServicesForSubCategory(ctx, category.Name)
	if err != nil || len(services) == 0 {
		// The category itself is bookable when it has no listed services.
		return booking.Selection{ServiceType: category.Name}, nil
	}

	fmt.Printf("\nServices in %s:\n", category.Name)
	for i, service := range services {
		fmt.Printf("  %d. %s\n", i+1, service.Name)
	}

	chosen := services[promptIndex(term, "Choose a service", len(services))]
	return booking.Selection{
		ServiceID:   chosen.ID,
		ServiceType: chosen.Name,
	}, nil
}

func promptIndex(term *ui.Terminal, label string, count int) int {
	for {
		raw := term.Prompt(fmt.Sprintf("%s (1-%d)", label, count))
		index, err := strconv.Atoi(raw)
		if err == nil && index >= 1 && index <= count {
			return index - 1
		}
	}
}

func runBookingLoop(ctx context.Context, controller *booking.Controller, term *ui.Terminal) {
	help := `Commands:
  name <text>      set full name        phone <text>     set phone number
  house <text>     set house number     pincode <text>   set pincode
  landmark <text>  type address text    pick <n>         select suggestion n
  message <text>   set message          record           start/stop recording
  play <n>         toggle clip n        clear            clear recordings
  show             show form state      submit           submit booking
  quit             exit`

	fmt.Println(help)

	for {
		line := term.Prompt("\n>")
		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch command {
		case "name":
			controller.Form().Set(booking.FieldFullName, rest)
		case "phone":
			controller.Form().Set(booking.FieldPhoneNumber, rest)
		case "house":
			controller.Form().Set(booking.FieldHouseNo, rest)
		case "pincode":
			controller.Form().Set(booking.FieldPincode, rest)
		case "message":
			controller.Form().Set(booking.FieldMessage, rest)
		case "landmark":
			controller.OnAddressTextChanged(ctx, rest)
			showSuggestions(controller)
		case "pick":
			suggestions, visible := controller.Suggestions()
			index, err := strconv.Atoi(rest)
			if err != nil || !visible || index < 1 || index > len(suggestions) {
				fmt.Println("no such suggestion")
				continue
			}
			controller.SelectAddress(ctx, suggestions[index-1].Description)
		case "record":
			if controller.Recorder().Active() {
				controller.Recorder().Stop(ctx)
				fmt.Printf("recorded %d clip(s)\n", len(controller.Recorder().Clips()))
			} else {
				controller.Recorder().Start(ctx)
			}
		case "play":
			index, err := strconv.Atoi(rest)
			if err != nil {
				continue
			}
			controller.Recorder().TogglePlayback(ctx, index-1)
		case "clear":
			controller.Recorder().ClearAll()
		case "show":
			showForm(controller)
		case "submit":
			controller.Submit(ctx)
		case "quit", "exit":
			return
		case "help":
			fmt.Println(help)
		}
	}
}

func showSuggestions(controller *booking.Controller) {
	// Give the debounced fetch a moment before rendering; the list also
	// refreshes on the next prompt.
	suggestions, visible := controller.Suggestions()
	if !visible {
		return
	}
	for i, suggestion := range suggestions {
		fmt.Printf("  %d. %s\n", i+1, suggestion.Description)
	}
}

func showForm(controller *booking.Controller) {
	snapshot := controller.Form().Snapshot()
	fmt.Printf("  name:     %s\n", snapshot.FullName)
	fmt.Printf("  phone:    %s\n", snapshot.PhoneNumber)
	fmt.Printf("  house:    %s\n", snapshot.HouseNo)
	fmt.Printf("  address:  %s\n", snapshot.Address)
	fmt.Printf("  pincode:  %s\n", snapshot.Pincode)
	fmt.Printf("  message:  %s\n", snapshot.Message)
	if len(snapshot.Location) > 0 {
		fmt.Printf("  location: %v\n", snapshot.Location[0].Location.Coordinates)
	}
	fmt.Printf("  clips:    %d\n", len(controller.Recorder().Clips()))
}
