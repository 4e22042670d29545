package appointment

import (
	"time"

	"github.com/BruksfildServices01/headz-api/internal/httperr"
)

type Service string

const (
	ServiceConsultation Service = "consultation"
	ServiceHairFixing   Service = "hair_fixing"
	ServiceMaintenance  Service = "maintenance"
	ServiceStyling      Service = "styling"
)

type serviceInfo struct {
	label    string
	duration time.Duration
}

var services = map[Service]serviceInfo{
	ServiceConsultation: {"Initial Consultation", 30 * time.Minute},
	ServiceHairFixing:   {"Hair Fixing Service", 120 * time.Minute},
	ServiceMaintenance:  {"Maintenance Service", 60 * time.Minute},
	ServiceStyling:      {"Styling Service", 60 * time.Minute},
}

func ParseService(s string) (Service, error) {
	if _, ok := services[Service(s)]; !ok {
		return "", httperr.ErrBusiness("invalid_service")
	}
	return Service(s), nil
}

func (s Service) Duration() time.Duration {
	return services[s].duration
}

func (s Service) Label() string {
	return services[s].label
}
