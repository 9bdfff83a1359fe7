package api

import (
	"context"
	"net/url"
)

// FindMe resolves the authenticated user's profile from the bearer token.
func (c *Client) FindMe(ctx context.Context) (UserProfile, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/find_me", &envelope); err != nil {
		return UserProfile{}, err
	}

	var profile UserProfile
	if err := envelopeData(envelope, &profile); err != nil {
		return UserProfile{}, err
	}

	return profile, nil
}

// loginRequest mirrors the backend's login payload field names.
type loginRequest struct {
	Email         string `json:"Email"`
	Password      string `json:"Password"`
	ContactNumber string `json:"ContactNumber"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password, contactNumber string) (string, error) {
	payload := loginRequest{Email: email, Password: password, ContactNumber: contactNumber}

	var resp loginResponse
	if err := c.postJSON(ctx, "/Login", payload, &resp); err != nil {
		return "", err
	}

	return resp.Token, nil
}

// GetAllServiceCategories lists the service catalog.
func (c *Client) GetAllServiceCategories(ctx context.Context) ([]ServiceCategory, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-all-service-category", &envelope); err != nil {
		return nil, err
	}

	var categories []ServiceCategory
	if err := envelopeData(envelope, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetServiceCategoryByName fetches one category by its display name.
func (c *Client) GetServiceCategoryByName(ctx context.Context, name string) ([]ServiceCategory, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-service-category-by-name/"+url.PathEscape(name), &envelope); err != nil {
		return nil, err
	}

	var categories []ServiceCategory
	if err := envelopeData(envelope, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetAllServices lists every bookable service.
func (c *Client) GetAllServices(ctx context.Context) ([]Service, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-all-service", &envelope); err != nil {
		return nil, err
	}

	var services []Service
	if err := envelopeData(envelope, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// GetAllProducts lists the product catalog.
func (c *Client) GetAllProducts(ctx context.Context) ([]Product, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-all-products", &envelope); err != nil {
		return nil, err
	}

	var products []Product
	if err := envelopeData(envelope, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductByName fetches products matching a display name.
func (c *Client) GetProductByName(ctx context.Context, name string) ([]Product, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-product-by-name/"+url.PathEscape(name), &envelope); err != nil {
		return nil, err
	}

	var products []Product
	if err := envelopeData(envelope, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// GetPromotionalBanners lists home-screen promotional banners.
func (c *Client) GetPromotionalBanners(ctx context.Context) ([]Banner, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-all-promotional-banner", &envelope); err != nil {
		return nil, err
	}

	var banners []Banner
	if err := envelopeData(envelope, &banners); err != nil {
		return nil, err
	}

	return banners, nil
}

// CreateProductInquiry submits a product enquiry form.
func (c *Client) CreateProductInquiry(ctx context.Context, inquiry ProductInquiry) (Envelope, error) {
	var envelope Envelope
	if err := c.postJSON(ctx, "/create-product-inquiry", inquiry, &envelope); err != nil {
		return Envelope{}, err
	}
	return envelope, nil
}

// GetOrdersByUser lists every order placed by the given user.
func (c *Client) GetOrdersByUser(ctx context.Context, userID string) ([]Order, error) {
	var envelope Envelope
	if err := c.getJSON(ctx, "/get-order-by-user-id?userId="+url.QueryEscape(userID), &envelope); err != nil {
		return nil, err
	}

	var orders []Order
	if err := envelopeData(envelope, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateBillStatus approves or rejects a vendor bill on an order.
func (c *Client) UpdateBillStatus(ctx context.Context, billID, status string) error {
	payload := map[string]string{"status": status}
	return c.putJSON(ctx, "/update-status-bills/"+url.PathEscape(billID), payload, nil)
}
