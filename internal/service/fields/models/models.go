package models

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// Response модели

// FieldResponse ответ с данными площадки
type FieldResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	FieldType    string    `json:"fieldType"`
	PricePerHour float64   `json:"pricePerHour"`
	Rating       float64   `json:"rating"`
	Amenities    []string  `json:"amenities"`
	OwnerID      string    `json:"ownerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ScheduleRuleResponse правило еженедельного расписания
type ScheduleRuleResponse struct {
	DayOfWeek int     `json:"dayOfWeek"` // 0 = воскресенье
	Day       string  `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// FieldDetailsResponse площадка вместе с недельным расписанием
type FieldDetailsResponse struct {
	FieldResponse
	Schedule []ScheduleRuleResponse `json:"schedule"`
}

// FieldListResponse ответ со списком площадок
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
	Total  int             `json:"total"`
}

// Методы конвертации

// FromDomainField конвертирует domain модель в DTO
func FromDomainField(f *domain.Field) *FieldResponse {
	if f == nil {
		return nil
	}

	amenities := f.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &FieldResponse{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		FieldType:    string(f.FieldType),
		PricePerHour: f.PricePerHour,
		Rating:       f.Rating,
		Amenities:    amenities,
		OwnerID:      f.OwnerID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// FromDomainFieldList конвертирует список площадок в DTO
func FromDomainFieldList(fields []*domain.Field) *FieldListResponse {
	result := &FieldListResponse{
		Fields: make([]FieldResponse, 0, len(fields)),
		Total:  len(fields),
	}
	for _, f := range fields {
		result.Fields = append(result.Fields, *FromDomainField(f))
	}
	return result
}

// FromDomainSchedule конвертирует правила расписания в DTO
func FromDomainSchedule(rules []*domain.ScheduleRule) []ScheduleRuleResponse {
	result := make([]ScheduleRuleResponse, 0, len(rules))
	for _, r := range rules {
		result = append(result, ScheduleRuleResponse{
			DayOfWeek: int(r.DayOfWeek),
			Day:       r.DayOfWeek.String(),
			StartTime: r.StartTime.String(),
			EndTime:   r.EndTime.String(),
			Price:     r.Price,
			Available: r.BaseAvailable,
		})
	}
	return result
}
