package server

import (
	"network/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Feed   *handler.Feed
	Post   *handler.Post
	Like   *handler.Like
	Follow *handler.Follow
}
