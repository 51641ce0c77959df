package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/muhammadheryan/shop-console/utils/logger"
	"go.uber.org/zap"
)

type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorData(w, err, nil)
}

// writeErrorData writes err in the response envelope along with data, used by
// screen endpoints to return the state that goes with a failure.
func writeErrorData(w http.ResponseWriter, err error, data interface{}) {
	var cErr errors.CustomError
	if !stderrors.As(err, &cErr) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		cErr = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, cErr.ErrorHTTPCode(), Response{
		Code:    cErr.ErrorCode(),
		Message: cErr.Error(),
		Data:    data,
	})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}
