package check_start_time

import (
	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	checkStartTime "github.com/m04kA/SMC-AppointmentService/internal/usecase/check_start_time"
)

// CheckStartTimeRequest HTTP request model
type CheckStartTimeRequest struct {
	StartTime     string `json:"startTime"`
	AppointmentID *int64 `json:"appointmentId,omitempty"` // Задан при редактировании
}

// CheckStartTimeResponse HTTP response model
type CheckStartTimeResponse struct {
	Valid  bool                          `json:"valid"`
	Errors []handlers.FieldErrorResponse `json:"errors"`
}

func (r *CheckStartTimeRequest) ToUseCaseRequest() (*checkStartTime.Request, error) {
	startTime, err := handlers.ParseDateTime(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkStartTime.Request{
		StartTime:     startTime,
		AppointmentID: r.AppointmentID,
	}, nil
}

func FromUseCaseResponse(resp *checkStartTime.Response) *CheckStartTimeResponse {
	return &CheckStartTimeResponse{
		Valid:  resp.Valid,
		Errors: handlers.ToFieldErrors(resp.Errors),
	}
}
