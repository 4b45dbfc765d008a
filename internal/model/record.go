package model

import "time"

// TabularRecord is a row from the spreadsheet-style store. Fields is an
// opaque mapping; any schema is a convention owned by the caller.
type TabularRecord struct {
	ID          string                 `json:"id"`
	Fields      map[string]interface{} `json:"fields"`
	CreatedTime time.Time              `json:"createdTime"`
}
