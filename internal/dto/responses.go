package dto

import "time"

// Envelope общий формат ответа всех процедур.
// data не опускается: null означает, что запись не найдена.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody описание ошибки для клиента.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProcedureInfo описание процедуры для GET /api/rpc.
type ProcedureInfo struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

// HealthResponse ответ healthcheck.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}
