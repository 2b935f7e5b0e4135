package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/hotel-portal/internal/portal"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	serverName = "hotel-portal"
	appName    = "hotel_portal"

	NSSite = "site"
)

// New returns the public JSON-RPC server. It registers prometheus collectors, so call it once per process.
func New(logger *slog.Logger, manager *portal.Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true, AllowCORS: true})
	rpcServer.Register(NSSite, NewSiteService(manager))

	rpcServer.Use(
		middleware.WithSLog(logger.InfoContext, serverName, nil),
		middleware.WithSentry(serverName),
		middleware.WithMetrics(appName),
	)

	return rpcServer
}
