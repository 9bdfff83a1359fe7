package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/internal/catalog"
	"blueace_booking_client/platform/config"
	"blueace_booking_client/platform/logger"
	"blueace_booking_client/platform/phone"
)

func main() {
	categoryName := flag.String("category", "", "look up a service category by name")
	productName := flag.String("product", "", "look up a product by name")
	inquireProduct := flag.String("inquire", "", "product id to send an enquiry for")
	fullName := flag.String("name", "", "your name for the enquiry")
	contactNumber := flag.String("phone", "", "your phone number for the enquiry")
	message := flag.String("message", "", "enquiry message")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting catalog client")

	ctx := context.Background()
	svc := catalog.New(api.New(cfg, log), log)

	switch {
	case *categoryName != "":
		categories, err := svc.CategoryByName(ctx, *categoryName)
		if err != nil {
			fail(log, "category lookup failed", err)
		}
		for _, category := range categories {
			fmt.Printf("%s  %s\n", category.ID, category.Name)
		}

	case *productName != "":
		products, err := svc.ProductByName(ctx, *productName)
		if err != nil {
			fail(log, "product lookup failed", err)
		}
		printProducts(products)

	case *inquireProduct != "":
		result, err := svc.SubmitInquiry(ctx, api.ProductInquiry{
			ProductID:   *inquireProduct,
			FullName:    *fullName,
			PhoneNumber: phone.NormalizeE164(*contactNumber),
			Message:     *message,
		})
		if err != nil {
			fail(log, "enquiry failed", err)
		}
		fmt.Println(result)

	default:
		content, err := svc.Home(ctx)
		if err != nil {
			fail(log, "home fetch failed", err)
		}

		fmt.Printf("Service categories (%d)\n", len(content.Categories))
		for _, category := range content.Categories {
			fmt.Printf("  %s\n", category.Name)
		}

		fmt.Printf("\nProducts (%d)\n", len(content.Products))
		printProducts(content.Products)

		fmt.Printf("\nOffers (%d)\n", len(content.Banners))
		for _, banner := range content.Banners {
			fmt.Printf("  %s\n", banner.Title)
		}
	}
}

func printProducts(products []api.Product) {
	for _, product := range products {
		fmt.Printf("  %s  %-24s Rs %d\n", product.ID, product.Name, product.Price)
	}
}

func fail(log *logger.Logger, message string, err error) {
	log.Error(message, "error", err)
	os.Exit(1)
}
