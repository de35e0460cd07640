package main

import (
	"tautracker/cmd/tracker/commands"
	"tautracker/lib/serviceutil"
	"tautracker/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "tautracker")
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
