package http

import (
	"net/http"

	"github.com/krontech/worklog-backend-go/internal/domain/worklogtype"
	"github.com/krontech/worklog-backend-go/internal/handler/http/response"
)

type WorklogTypeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

// WorklogTypeHandlerImpl serves the worklog type reference data straight
// from the repository; there is no business logic to wrap.
type WorklogTypeHandlerImpl struct {
	typeRepo worklogtype.WorklogTypeRepository
}

func NewWorklogTypeHandler(typeRepo worklogtype.WorklogTypeRepository) WorklogTypeHandler {
	return &WorklogTypeHandlerImpl{typeRepo: typeRepo}
}

// List implements WorklogTypeHandler.
func (h *WorklogTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.typeRepo.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]worklogtype.WorklogTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, worklogtype.ToResponse(t))
	}

	response.Success(w, responses)
}
