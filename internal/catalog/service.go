// Package catalog fetches the service and product catalogs shown before a
// booking is started.
package catalog

import (
	"context"
	"strings"

	"blueace_booking_client/internal/api"
	"blueace_booking_client/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Service exposes read operations over the remote catalog.
type Service struct {
	client *api.Client
	log    *logger.Logger
}

// New creates a catalog service.
func New(client *api.Client, log *logger.Logger) *Service {
	return &Service{client: client, log: log}
}

// Categories lists all service categories.
func (s *Service) Categories(ctx context.Context) ([]api.ServiceCategory, error) {
	return s.client.GetAllServiceCategories(ctx)
}

// CategoryByName fetches categories matching a display name.
func (s *Service) CategoryByName(ctx context.Context, name string) ([]api.ServiceCategory, error) {
	return s.client.GetServiceCategoryByName(ctx, name)
}

// ServicesForSubCategory lists services whose sub-category name matches
// case-insensitively.
func (s *Service) ServicesForSubCategory(ctx context.Context, name string) ([]api.Service, error) {
	all, err := s.client.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]api.Service, 0, len(all))
	for _, svc := range all {
		if strings.EqualFold(svc.SubCategory.Name, name) {
			matched = append(matched, svc)
		}
	}

	return matched, nil
}

// Products lists the product catalog.
func (s *Service) Products(ctx context.Context) ([]api.Product, error) {
	return s.client.GetAllProducts(ctx)
}

// ProductByName fetches products matching a display name.
func (s *Service) ProductByName(ctx context.Context, name string) ([]api.Product, error) {
	return s.client.GetProductByName(ctx, name)
}

// SubmitInquiry sends a product enquiry and converts the envelope into a
// user-facing status message.
func (s *Service) SubmitInquiry(ctx context.Context, inquiry api.ProductInquiry) (string, error) {
	envelope, err := s.client.CreateProductInquiry(ctx, inquiry)
	if err != nil {
		return "", err
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "Something went wrong while submitting your enquiry. Please try again."
		}
		return message, nil
	}

	return "Thank you! Your enquiry has been submitted successfully. Our team will get back to you soon.", nil
}

// HomeContent is everything the home screen renders in one shot.
type HomeContent struct {
	Categories []api.ServiceCategory
	Products   []api.Product
	Banners    []api.Banner
}

// Home fetches categories, products, and banners concurrently.
func (s *Service) Home(ctx context.Context) (HomeContent, error) {
	var content HomeContent

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		categories, err := s.client.GetAllServiceCategories(groupCtx)
		if err != nil {
			return err
		}
		content.Categories = categories
		return nil
	})

	group.Go(func() error {
		products, err := s.client.GetAllProducts(groupCtx)
		if err != nil {
			return err
		}
		content.Products = products
		return nil
	})

	group.Go(func() error {
		banners, err := s.client.GetPromotionalBanners(groupCtx)
		if err != nil {
			return err
		}
		content.Banners = banners
		return nil
	})

	if err := group.Wait(); err != nil {
		return HomeContent{}, err
	}

	return content, nil
}
