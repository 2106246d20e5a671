package tone3000

import "strconv"

// ListMeta describes the pagination state of a listing response.
type ListMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListOptions selects a page of a listing. Zero values defer to the API's
// defaults.
type ListOptions struct {
	Page     int
	PageSize int
}

func (o ListOptions) queryParams() map[string]string {
	queryParams := map[string]string{}
	if o.Page > 0 {
		queryParams["page"] = strconv.Itoa(o.Page)
	}
	if o.PageSize > 0 {
		queryParams["page_size"] = strconv.Itoa(o.PageSize)
	}
	return queryParams
}
