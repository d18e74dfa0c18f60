package api

import (
	"Agora/internal/service"
	"context"
	"fmt"
	"io"
	"strings"
)

// HandlerFunc 子命令处理函数，args 不含命令名本身
type HandlerFunc func(ctx context.Context, args []string, w io.Writer) error

type route struct {
	name    string
	usage   string
	handler HandlerFunc
}

// Router 命令表，两级命令优先于一级命令匹配
type Router struct {
	routes map[string]route
	order  []string
}

func (r *Router) Handle(name, usage string, h HandlerFunc) {
	if r.routes == nil {
		r.routes = make(map[string]route)
	}
	r.routes[name] = route{name: name, usage: usage, handler: h}
	r.order = append(r.order, name)
}

func SetupRouter(group *HandlersGroup) *Router {
	r := &Router{}

	r.Handle("login", "login --token TOKEN", group.UserHandler.Login)
	r.Handle("logout", "logout", group.UserHandler.Logout)
	r.Handle("whoami", "whoami", group.UserHandler.Whoami)

	r.Handle("post", "post [--media FILE]... [--preview] CONTENT", group.PostHandler.CreatePost)

	r.Handle("feed", "feed [--page N] [--json]", group.FeedHandler.List)
	r.Handle("feed watch", "feed watch [--page N]", group.FeedHandler.Watch)
	r.Handle("like", "like POST_ID", group.FeedHandler.Like)

	r.Handle("profile show", "profile show [--user ID] [--remote] [--json]", group.ProfileHandler.Show)
	r.Handle("profile edit", "profile edit [--name ..] [--title ..] [--email ..] [--phone ..] ...", group.ProfileHandler.Edit)
	r.Handle("profile avatar", "profile avatar FILE", group.ProfileHandler.Avatar)
	r.Handle("profile reset", "profile reset", group.ProfileHandler.Reset)

	return r
}

// Dispatch 解析命令名并调用对应的处理函数
func (r *Router) Dispatch(ctx context.Context, args []string, w io.Writer) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		r.Usage(w)
		return nil
	}
	if len(args) >= 2 {
		if rt, ok := r.routes[args[0]+" "+args[1]]; ok {
			return rt.handler(ctx, args[2:], w)
		}
	}
	if rt, ok := r.routes[args[0]]; ok {
		return rt.handler(ctx, args[1:], w)
	}
	return fmt.Errorf("%w: %s", service.ErrUnknownCommand, strings.Join(args, " "))
}

func (r *Router) Usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: agora [--config DIR] COMMAND [ARGS]")
	_, _ = fmt.Fprintln(w)
	for _, name := range r.order {
		_, _ = fmt.Fprintf(w, "  agora %s\n", r.routes[name].usage)
	}
}
