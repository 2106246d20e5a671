package tone3000

import (
	"context"
	"net/http"
)

type TonesClient interface {
	// Created returns a page of tones published by the authenticated user.
	Created(ctx context.Context, opts ListOptions) (ToneList, error)
	// Favorited returns a page of tones the authenticated user favorited.
	Favorited(ctx context.Context, opts ListOptions) (ToneList, error)
	// Search returns a page of the public catalog matching the given
	// criteria.
	Search(ctx context.Context, opts SearchOptions) (ToneList, error)
}

type tonesClient struct {
	*baseClient
}

func (c *tonesClient) Created(
	ctx context.Context,
	opts ListOptions,
) (ToneList, error) {
	return c.list(ctx, "tones/created", opts.queryParams())
}

func (c *tonesClient) Favorited(
	ctx context.Context,
	opts ListOptions,
) (ToneList, error) {
	return c.list(ctx, "tones/favorited", opts.queryParams())
}

func (c *tonesClient) Search(
	ctx context.Context,
	opts SearchOptions,
) (ToneList, error) {
	if err := opts.validate(); err != nil {
		return ToneList{}, err
	}
	return c.list(ctx, "tones/search", opts.queryParams())
}

func (c *tonesClient) list(
	ctx context.Context,
	path string,
	queryParams map[string]string,
) (ToneList, error) {
	toneList := ToneList{}
	return toneList, c.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        path,
			queryParams: queryParams,
			successCode: http.StatusOK,
			respObj:     &toneList,
		},
	)
}
