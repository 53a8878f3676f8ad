package worklogtype

import "time"

// WorklogType is immutable reference data categorizing worklog entries.
type WorklogType struct {
	ID        string
	Name      string
	Code      string
	IsActive  bool
	CreatedAt time.Time
}

type WorklogTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func ToResponse(t WorklogType) WorklogTypeResponse {
	return WorklogTypeResponse{ID: t.ID, Name: t.Name, Code: t.Code}
}
