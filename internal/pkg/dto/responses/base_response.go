package responses

import "pilates-vision-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorDTO struct {
	StatusCode int                  `json:"status_code"`
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Detail     string               `json:"detail"`
	DevMessage string               `json:"dev_message,omitempty"`
	Location   *exceptions.Location `json:"location,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
