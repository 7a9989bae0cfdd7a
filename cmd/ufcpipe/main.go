package main

import (
	"log/slog"
	"os"

	"ufcpipe/cmd/ufcpipe/commands"
	"ufcpipe/lib/serviceutil"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	commands.ExecuteContext(serviceutil.SignalContext())
}
