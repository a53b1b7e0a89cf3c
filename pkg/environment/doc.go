// Package environment parses the APP_ENV value and carries it through
// context.Context, HTTP requests and structured logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	r.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Unknown and empty values parse as Development.
package environment
