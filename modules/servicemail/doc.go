// Package servicemail serves the service email form over HTTP.
//
// Routes, relative to where Router is mounted:
//
//	GET  /                 form page
//	POST /compose          compose; 422 form with the field error, or the
//	                       confirmation page that opens the mail client after
//	                       the countdown
//	POST /api/compose      JSON variant of /compose
//	POST /validate/{field} as-you-type check of email, store or order
//	GET  /countdown        DataStar stream of the countdown, then a redirect to
//	                       the mailto: URI
//	GET  /qrcode           PNG QR code of the mailto: URI
//	GET  /healthz          liveness probe
//
// With WithRateLimiter, /api/compose and /qrcode are limited per client IP.
// QR codes are cached by mailto: URI.
//
// DataStar requests get element patches instead of full pages, so the same
// routes drive both the progressive and the script-free form.
package servicemail
