package submit_lead

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/leads"
)

type LeadService interface {
	Submit(ctx context.Context, req *leads.Request) (*leads.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
