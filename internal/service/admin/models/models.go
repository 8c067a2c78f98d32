package models

import (
	appointmentModels "github.com/m04kA/SMC-HairBooking/internal/service/appointments/models"
	hoursModels "github.com/m04kA/SMC-HairBooking/internal/service/hours/models"
	shopModels "github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

// DashboardResponse панель администратора: все салоны, выбранный салон и последние записи
type DashboardResponse struct {
	Shops          []shopModels.ShopResponse               `json:"shops"`
	SelectedShopID *int64                                  `json:"selectedShopId"`
	SelectedShop   *shopModels.ShopResponse                `json:"selectedShop,omitempty"`
	Staff          []shopModels.StaffResponse              `json:"staff"`
	Services       []shopModels.ServiceResponse            `json:"services"`
	Hours          []hoursModels.DayHours                  `json:"hours"`
	Appointments   []appointmentModels.AppointmentResponse `json:"appointments"`
}

// CreateShopRequest новый салон
type CreateShopRequest struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Area        string `json:"area"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// CreateStaffRequest новый мастер
type CreateStaffRequest struct {
	ShopID int64  `json:"shopId"`
	Name   string `json:"name"`
	Title  string `json:"title"`
}

// CreateServiceRequest новая услуга. Price в евро: "12,50" или "12.50".
type CreateServiceRequest struct {
	ShopID int64  `json:"shopId"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// ToggleResponse новое состояние салона
type ToggleResponse struct {
	ShopID int64 `json:"shopId"`
	IsOpen bool  `json:"isOpen"`
}
