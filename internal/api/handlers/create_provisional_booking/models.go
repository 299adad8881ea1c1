package create_provisional_booking

import (
	createProvisionalBooking "github.com/ksudate/WFC-BookingService/internal/usecase/create_provisional_booking"
)

// CreateProvisionalBookingRequest HTTP request model
type CreateProvisionalBookingRequest struct {
	CarID           string `json:"carId"`
	StartAt         string `json:"startAt"`
	DurationMinutes int    `json:"durationMinutes"`
	CustomerName    string `json:"customerName"`
	PhoneNumber     string `json:"phoneNumber"`
	CarModelName    string `json:"carModelName,omitempty"`
	MenuLabel       string `json:"menuLabel,omitempty"`
	Channel         string `json:"channel,omitempty"`
}

// CreateProvisionalBookingResponse HTTP response model
type CreateProvisionalBookingResponse struct {
	CarID           string `json:"carId"`
	StartAt         string `json:"startAt"`
	DurationMinutes int    `json:"durationMinutes"`
	CalendarEventID string `json:"calendarEventId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateProvisionalBookingRequest) ToUseCaseRequest() *createProvisionalBooking.Request {
	return &createProvisionalBooking.Request{
		CarID:           r.CarID,
		StartAt:         r.StartAt,
		DurationMinutes: r.DurationMinutes,
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		CarModelName:    r.CarModelName,
		MenuLabel:       r.MenuLabel,
		Channel:         r.Channel,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createProvisionalBooking.Response) *CreateProvisionalBookingResponse {
	return &CreateProvisionalBookingResponse{
		CarID:           resp.CarID,
		StartAt:         resp.StartAt,
		DurationMinutes: resp.DurationMinutes,
		CalendarEventID: resp.CalendarEventID,
	}
}
