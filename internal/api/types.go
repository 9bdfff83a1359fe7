package api

import "encoding/json"

// Envelope is the standard response wrapper used by most booking API endpoints.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AddressSuggestion is one autocomplete candidate. Description is the display
// text; the remaining fields are provider metadata kept for re-querying.
type AddressSuggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// Coordinates is a geocode result as returned by the backend.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserProfile mirrors the relevant parts of the /find_me payload.
type UserProfile struct {
	ID            string `json:"_id"`
	FullName      string `json:"FullName"`
	Email         string `json:"Email"`
	ContactNumber string `json:"ContactNumber"`
	HouseNo       string `json:"HouseNo"`
	Pincode       string `json:"PinCode"`
}

// ServiceCategory is one entry of the service catalog.
type ServiceCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Service is a bookable service; SubCategory carries the category it belongs to.
type Service struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	SubCategory SubCategory `json:"subCategoryId"`
}

// SubCategory is the embedded category reference on a Service.
type SubCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product is one entry of the product catalog.
type Product struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Banner is a promotional banner shown on the home screen.
type Banner struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

// Order is one entry of the user's order history.
type Order struct {
	ID          string `json:"_id"`
	ServiceType string `json:"serviceType"`
	OrderStatus string `json:"OrderStatus"`
	CreatedAt   string `json:"createdAt"`
}

// ProductInquiry is the payload for create-product-inquiry.
type ProductInquiry struct {
	ProductID   string `json:"productId"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// FormField is one statically declared multipart field of a booking submission.
// The booking controller owns the field list so the wire contract stays visible.
type FormField struct {
	Name  string
	Value string
}

// VoiceAttachment describes the optional audio part of a booking submission.
type VoiceAttachment struct {
	FileURI  string
	MIMEType string
	Filename string
}

// OrderResult is the backend's answer to a booking submission. Data carries the
// server-echoed order payload forward to the confirmation view.
type OrderResult struct {
	Success bool
	Message string
	Data    json.RawMessage
}
