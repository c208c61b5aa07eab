package studioapi

import (
	"context"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/requests"
	"pilates-vision-service/internal/pkg/dto/responses"
)

func (c *studioClient) CreateStudent(ctx context.Context, request *requests.CreateStudent) (*responses.Student, error) {
	result := new(responses.Student)
	err := c.sendJSON(ctx, constvars.MethodPost, resourcePath(constvars.ResourceStudents), nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) UpdateStudent(ctx context.Context, studentID string, request *requests.UpdateStudent) (*responses.Student, error) {
	result := new(responses.Student)
	err := c.sendJSON(ctx, constvars.MethodPut, resourcePath(constvars.ResourceStudents, studentID), nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) DeleteStudent(ctx context.Context, studentID string) error {
	return c.sendJSON(ctx, constvars.MethodDelete, resourcePath(constvars.ResourceStudents, studentID), nil, nil, nil)
}

func (c *studioClient) CreateInstructor(ctx context.Context, request *requests.CreateInstructor) (*responses.Instructor, error) {
	result := new(responses.Instructor)
	err := c.sendJSON(ctx, constvars.MethodPost, resourcePath(constvars.ResourceInstructors), nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) UpdateInstructor(ctx context.Context, instructorID string, request *requests.UpdateInstructor) (*responses.Instructor, error) {
	result := new(responses.Instructor)
	err := c.sendJSON(ctx, constvars.MethodPut, resourcePath(constvars.ResourceInstructors, instructorID), nil, request, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *studioClient) DeleteInstructor(ctx context.Context, instructorID string) error {
	return c.sendJSON(ctx, constvars.MethodDelete, resourcePath(constvars.ResourceInstructors, instructorID), nil, nil, nil)
}
