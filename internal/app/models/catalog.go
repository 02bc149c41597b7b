package models

import (
	"medbook-service/internal/pkg/dto/responses"
	"time"
)

type Clinic struct {
	ID          string
	Name        string
	Address     string
	PhoneNumber string
}

func (c Clinic) ConvertIntoResponse() responses.Clinic {
	return responses.Clinic{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
	}
}

type Doctor struct {
	ID          string
	ClinicID    string
	ClinicName  string
	FullName    string
	Specialty   string
	Description string
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	return responses.Doctor{
		ID:          d.ID,
		ClinicID:    d.ClinicID,
		ClinicName:  d.ClinicName,
		FullName:    d.FullName,
		Specialty:   d.Specialty,
		Description: d.Description,
	}
}

type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           int64
}

func (s Service) ConvertIntoResponse() responses.Service {
	return responses.Service{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// DoctorService pairs a doctor with a service they provide. PriceOverride
// takes precedence over the service price when set.
type DoctorService struct {
	ID            string
	DoctorID      string
	DoctorName    string
	ClinicID      string
	Service       Service
	PriceOverride *int64
}

func (ds *DoctorService) EffectivePrice() int64 {
	if ds.PriceOverride != nil {
		return *ds.PriceOverride
	}
	return ds.Service.Price
}

func (ds *DoctorService) ConvertIntoResponse(hours []WorkingHour) responses.DoctorService {
	response := responses.DoctorService{
		ID:         ds.ID,
		DoctorID:   ds.DoctorID,
		DoctorName: ds.DoctorName,
		Service:    ds.Service.ConvertIntoResponse(),
		Price:      ds.EffectivePrice(),
	}
	for _, hour := range hours {
		response.WorkingHours = append(response.WorkingHours, hour.ConvertIntoResponse())
	}
	return response
}

// WorkingHour is one weekday window of a doctor service. Weekday follows
// time.Weekday numbering. Start and End are wall-clock "HH:MM[:SS]".
type WorkingHour struct {
	DoctorServiceID string
	Weekday         time.Weekday
	StartTime       string
	EndTime         string
}

func (wh WorkingHour) ConvertIntoResponse() responses.WorkingHour {
	return responses.WorkingHour{
		Weekday: wh.Weekday.String(),
		Start:   wh.StartTime,
		End:     wh.EndTime,
	}
}
