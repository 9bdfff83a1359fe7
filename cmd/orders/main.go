package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/internal/orders"
	"blueace_booking_client/internal/session"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"
)

func main() {
	approveBill := flag.String("approve-bill", "", "approve the vendor bill with this id")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting orders client")

	ctx := context.Background()

	client := api.New(cfg, log)
	store := session.NewFileTokenStore(cfg.GetTokenPath())
	resolver := session.NewResolver(client, store, log)

	sess, err := resolver.Resolve(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "not signed in: run bookingcli first")
		os.Exit(1)
	}

	svc := orders.New(client.WithToken(sess.Token), log.WithUserID(sess.UserID))

	if *approveBill != "" {
		message, err := svc.ApproveBill(ctx, *approveBill)
		if err != nil {
			log.Error("bill approval failed", "billId", *approveBill, "error", err)
			os.Exit(1)
		}
		fmt.Println(message)
		return
	}

	history, err := svc.History(ctx, sess.UserID)
	if err != nil {
		log.Error("failed to load orders", "error", err)
		os.Exit(1)
	}

	printBucket("Active", history.Active)
	printBucket("Completed", history.Completed)
	printBucket("Cancelled", history.Cancelled)
}

func printBucket(title string, bucket []api.Order) {
	fmt.Printf("\n%s (%d)\n", title, len(bucket))
	for _, order := range bucket {
		fmt.Printf("  %s  %-24s %s\n", order.ID, order.ServiceType, order.OrderStatus)
	}
}
