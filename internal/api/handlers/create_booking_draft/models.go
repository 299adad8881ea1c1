package create_booking_draft

import (
	createBookingDraft "github.com/ksudate/WFC-BookingService/internal/usecase/create_booking_draft"
)

// CreateBookingDraftRequest HTTP request model
type CreateBookingDraftRequest struct {
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	CarID           string   `json:"carId"`
	MenuID          string   `json:"menuId"`
	OptionIDs       []string `json:"optionIds"`
	StartAt         string   `json:"startAt"`
	DurationMinutes int      `json:"durationMinutes"`
	PriceAmount     int64    `json:"priceAmount"`
}

// CreateBookingDraftResponse HTTP response model
type CreateBookingDraftResponse struct {
	BookingID       string   `json:"bookingId"`
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	CarID           string   `json:"carId"`
	MenuID          string   `json:"menuId"`
	OptionIDs       []string `json:"optionIds"`
	StartAt         string   `json:"startAt"`
	DurationMinutes int      `json:"durationMinutes"`
	PriceAmount     int64    `json:"priceAmount"`
	PriceCurrency   string   `json:"priceCurrency"`
	Status          string   `json:"status"`
	CalendarEventID *string  `json:"calendarEventId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingDraftRequest) ToUseCaseRequest() *createBookingDraft.Request {
	return &createBookingDraft.Request{
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		CarID:           r.CarID,
		MenuID:          r.MenuID,
		OptionIDs:       r.OptionIDs,
		StartAt:         r.StartAt,
		DurationMinutes: r.DurationMinutes,
		PriceAmount:     r.PriceAmount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBookingDraft.Response) *CreateBookingDraftResponse {
	return &CreateBookingDraftResponse{
		BookingID:       resp.BookingID,
		CustomerName:    resp.CustomerName,
		PhoneNumber:     resp.PhoneNumber,
		CarID:           resp.CarID,
		MenuID:          resp.MenuID,
		OptionIDs:       resp.OptionIDs,
		StartAt:         resp.StartAt,
		DurationMinutes: resp.DurationMinutes,
		PriceAmount:     resp.PriceAmount,
		PriceCurrency:   resp.PriceCurrency,
		Status:          resp.Status,
		CalendarEventID: resp.CalendarEventID,
	}
}
