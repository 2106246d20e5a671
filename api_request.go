package tone3000

type apiRequest struct {
	method      string
	path        string
	queryParams map[string]string
	reqBodyObj  interface{}
	successCode int
	respObj     interface{}
	// anonymous requests (session issuance and refresh) carry no bearer token
	// and bypass the token lifecycle entirely.
	anonymous bool
}
