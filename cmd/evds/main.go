// evds is a command-line client for the Central Bank of the Republic of
// Turkey's EVDS web service.
//
// Usage:
//
//	evds data TP.DK.USD.A --date 13-12-2011
//	evds datagroup bie_yssk --start 13-12-2011 --end 12-12-2012
//	evds categories
//	evds serielist bie_yssk
//	evds currency --codes USD,GBP --direction selling --date 13-12-2011
//
// The response body is written to stdout exactly as the service returned
// it. The API key is read from EVDS_API_KEY.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	Execute(ctx)
}
