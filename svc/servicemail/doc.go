// Package servicemail turns the raw fields of a Geek Squad service form into a
// pre-filled customer email.
//
// The package is a pure pipeline with no I/O:
//
//	Normalize -> validate email -> validate store -> validate order -> compose
//
// Validation stops at the first failing field and reports it as a
// *FieldError, a tagged value that names the offending field (email, store or
// order), the error kind and a message ready to show next to that field. On
// success Compose returns a ComposedMessage carrying the recipient, the CC list
// derived from the store number, and the subject and body for the selected
// template.
//
//	res := servicemail.Compose(ctx, servicemail.Input{
//	    Email:        "cust@ex.com",
//	    StoreNumber:  "630",
//	    OrderNumber:  "0630-250814-56874",
//	    CustomerName: "jane doe",
//	    Template:     servicemail.ServiceExchange,
//	})
//	if res.Err != nil {
//	    // render res.Err.Message against res.Err.Field
//	}
//	uri := res.Message.MailtoURI()
//
// Each call to Compose drives its own small state machine
// (idle -> validating -> failed|ready), so the same input always yields the
// same Result and no state survives between attempts. Launching the mail
// client, and the countdown that precedes it, belong to the caller; see the
// countdown and mailto packages.
package servicemail
