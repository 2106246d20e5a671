package tone3000

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
)

type ModelsClient interface {
	// List returns a page of the downloadable models belonging to a tone.
	List(ctx context.Context, toneID int64, opts ListOptions) (ModelList, error)
	// Download fetches a model file from its pre-signed URL. The URL is
	// absolute but the request still carries bearer authorization. The caller
	// owns the returned stream and must close it.
	Download(ctx context.Context, modelURL string) (io.ReadCloser, error)
}

type modelsClient struct {
	*baseClient
}

func (c *modelsClient) List(
	ctx context.Context,
	toneID int64,
	opts ListOptions,
) (ModelList, error) {
	queryParams := opts.queryParams()
	queryParams["tone_id"] = strconv.FormatInt(toneID, 10)
	modelList := ModelList{}
	return modelList, c.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "models",
			queryParams: queryParams,
			successCode: http.StatusOK,
			respObj:     &modelList,
		},
	)
}

func (c *modelsClient) Download(
	ctx context.Context,
	modelURL string,
) (io.ReadCloser, error) {
	resp, err := c.authenticatedFetch(ctx, modelURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, NewErrRequestFailed(resp.StatusCode, bodyBytes)
	}
	return resp.Body, nil
}
