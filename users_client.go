package tone3000

import (
	"context"
	"net/http"
)

type UsersClient interface {
	// Current returns the profile of the authenticated user.
	Current(ctx context.Context) (User, error)
	// List returns a page of the public user listing.
	List(ctx context.Context, opts ListOptions) (UserList, error)
}

type usersClient struct {
	*baseClient
}

func (c *usersClient) Current(ctx context.Context) (User, error) {
	user := User{}
	return user, c.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "user",
			successCode: http.StatusOK,
			respObj:     &user,
		},
	)
}

func (c *usersClient) List(
	ctx context.Context,
	opts ListOptions,
) (UserList, error) {
	userList := UserList{}
	return userList, c.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "users",
			queryParams: opts.queryParams(),
			successCode: http.StatusOK,
			respObj:     &userList,
		},
	)
}
