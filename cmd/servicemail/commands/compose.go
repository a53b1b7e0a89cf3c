package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/servicemail/pkg/countdown"
	"github.com/dmitrymomot/servicemail/pkg/qrcode"
	core "github.com/dmitrymomot/servicemail/svc/servicemail"
)

// ErrRejected is returned when the input fails validation. The field error
// has already been printed.
var ErrRejected = errors.New("servicemail: input rejected")

type composeFlags struct {
	email, store, order string
	name, brand, model  string
	template            string
	seconds             int
	interval            time.Duration
	open                bool
	qrPath              string
}

func composeCmd() *cobra.Command {
	var f composeFlags

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a service email and print or open its mailto link",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.email, "email", "", "customer email address")
	fl.StringVar(&f.store, "store", "", "store number (3 or 4 digits)")
	fl.StringVar(&f.order, "order", "", "service order number SSSS-YYMMDD-#####")
	fl.StringVar(&f.name, "name", "", "customer name")
	fl.StringVar(&f.brand, "brand", "", "product brand")
	fl.StringVar(&f.model, "model", "", "product model")
	fl.StringVar(&f.template, "template", string(core.ServiceExchange), "service-exchange or unit-return")
	fl.IntVar(&f.seconds, "countdown", 5, "seconds before the link is released")
	fl.DurationVar(&f.interval, "interval", countdown.DefaultInterval, "countdown tick interval")
	fl.BoolVar(&f.open, "open", false, "open the link with the system mail client")
	fl.StringVar(&f.qrPath, "qr", "", "also write a QR code PNG of the link to this path")
	_ = fl.MarkHidden("interval")

	return cmd
}

func runCompose(ctx context.Context, stdout, stderr io.Writer, f composeFlags) error {
	// An unknown selector is passed through so composing reports it.
	tpl, err := core.ParseTemplate(f.template)
	if err != nil {
		tpl = core.Template(f.template)
	}

	res := core.Compose(ctx, core.Input{
		Email:        f.email,
		StoreNumber:  f.store,
		OrderNumber:  f.order,
		CustomerName: f.name,
		Brand:        f.brand,
		Model:        f.model,
		Template:     tpl,
	})
	if !res.OK() {
		fmt.Fprintf(stderr, "%s: %s\n", res.Err.Field, res.Err.Message)
		return errors.Join(ErrRejected, res.Err)
	}

	msg := res.Message
	fmt.Fprintf(stdout, "To: %s\nCC: %s\nSubject: %s\n\n%s\n\n", msg.To, msg.CC, msg.Subject, msg.Body)

	uri := msg.MailtoURI()
	if f.qrPath != "" {
		if err := qrcode.WriteFile(f.qrPath, uri); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "QR code written to %s\n", f.qrPath)
	}

	fmt.Fprintf(stderr, "Opening in %d seconds, press Ctrl-C to cancel\n", f.seconds)
	task := countdown.Start(ctx, f.seconds,
		func(context.Context) error {
			if f.open {
				return openURI(uri)
			}
			_, err := fmt.Fprintln(stdout, uri)
			return err
		},
		countdown.WithInterval(f.interval),
		countdown.WithTick(func(remaining int) {
			fmt.Fprintf(stderr, "%d\n", remaining)
		}),
	)

	if _, err := task.Wait(); err != nil {
		if errors.Is(err, countdown.ErrCanceled) {
			fmt.Fprintln(stderr, "canceled")
		}
		return err
	}
	return nil
}

// openURI hands uri to the OS opener without waiting for the mail client.
func openURI(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	return cmd.Process.Release()
}
