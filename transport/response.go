package transport

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/muhammadheryan/wa-crm/constant"
	"github.com/muhammadheryan/wa-crm/model"
	"github.com/muhammadheryan/wa-crm/utils/errors"
	"github.com/muhammadheryan/wa-crm/utils/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// writeError renders a CustomError; anything else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !goerrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), model.ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Detail:  ce.Detail(),
	})
}
