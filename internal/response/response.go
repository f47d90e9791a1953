package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the common JSON envelope for all API endpoints
type ApiResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

// ErrorDetail carries a machine-readable error code and a human message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SendSuccess writes the standard success envelope
func SendSuccess(c *gin.Context, status int, message string, result any) {
	c.JSON(status, ApiResponse{
		Code:    status,
		Message: message,
		Result:  result,
	})
}

// SendError writes the standard error envelope
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// SendFile writes binary spreadsheet content as an attachment download
func SendFile(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
