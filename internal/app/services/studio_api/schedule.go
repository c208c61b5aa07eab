package studioapi

import (
	"context"
	"net/url"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

func (c *studioClient) ListStudents(ctx context.Context, search string) ([]responses.Student, error) {
	query := url.Values{}
	if search != "" {
		query.Set(constvars.URLQueryParamSearch, search)
	}
	var result []responses.Student
	err := c.sendJSON(ctx, constvars.MethodGet, resourcePath(constvars.ResourceStudents), query, nil, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) ListInstructors(ctx context.Context) ([]responses.Instructor, error) {
	var result []responses.Instructor
	err := c.sendJSON(ctx, constvars.MethodGet, resourcePath(constvars.ResourceInstructors), nil, nil, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListAppointments lists every appointment, or only those starting on date
// (YYYY-MM-DD) when it is set.
func (c *studioClient) ListAppointments(ctx context.Context, date string) ([]responses.Appointment, error) {
	query := url.Values{}
	if date != "" {
		query.Set(constvars.URLQueryParamDate, date)
	}
	var result []responses.Appointment
	err := c.sendJSON(ctx, constvars.MethodGet, resourcePath(constvars.ResourceAppointments), query, nil, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	result := new(responses.Appointment)
	err := c.sendJSON(ctx, constvars.MethodPost, resourcePath(constvars.ResourceAppointments), nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	result := new(responses.Appointment)
	err := c.sendJSON(ctx, constvars.MethodPut, resourcePath(constvars.ResourceAppointments, appointmentID), nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) DeleteAppointment(ctx context.Context, appointmentID string) error {
	return c.sendJSON(ctx, constvars.MethodDelete, resourcePath(constvars.ResourceAppointments, appointmentID), nil, nil, nil)
}
