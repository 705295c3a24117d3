package dto

// Response envoltura estándar de TODAS las respuestas de la API:
// {success, message?, data?, error?}. Los handlers nunca exponen detalle
// interno (stack traces, errores crudos del store) en Error.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error con mensaje corto.
func Fail(message string) Response {
	return Response{Success: false, Error: message}
}
