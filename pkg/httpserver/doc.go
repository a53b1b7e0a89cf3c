// Package httpserver runs an http.Handler until its context is canceled and
// then shuts it down gracefully.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Run returns nil after a clean shutdown. Start and bind failures are wrapped
// in ErrStart and a shutdown that exceeds the timeout in ErrShutdown.
package httpserver
