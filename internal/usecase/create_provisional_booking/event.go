package create_provisional_booking

import (
	"fmt"
	"strings"

	"github.com/ksudate/WFC-BookingService/internal/domain"
)

// provisionalMarker префикс заголовка предварительного события,
// по нему события ищутся в календаре вручную
const provisionalMarker = "【仮】"

// buildEventTitle собирает заголовок события.
// Пример: 【仮】 プリウス リア5面 （棚原）
func buildEventTitle(req *Request, customerName domain.CustomerName) string {
	parts := []string{provisionalMarker}
	if req.CarModelName != "" {
		parts = append(parts, req.CarModelName)
	}
	if req.MenuLabel != "" {
		parts = append(parts, req.MenuLabel)
	}
	parts = append(parts, fmt.Sprintf("（%s）", customerName.String()))
	return strings.TrimSpace(strings.Join(parts, " "))
}

// buildEventDescription собирает описание события для администратора
func buildEventDescription(req *Request, customerName domain.CustomerName, phone domain.PhoneNumber) string {
	lines := []string{
		fmt.Sprintf("氏名: %s", customerName.String()),
		fmt.Sprintf("電話番号: %s", phone.Display()),
	}
	if req.CarModelName != "" {
		lines = append(lines, fmt.Sprintf("車種: %s", req.CarModelName))
	}
	if req.MenuLabel != "" {
		lines = append(lines, fmt.Sprintf("内容: %s", req.MenuLabel))
	}
	if req.Channel != "" {
		lines = append(lines, fmt.Sprintf("受付: %s", req.Channel))
	}
	return strings.Join(lines, "\n")
}
