package servicemail_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/svc/servicemail"
)

func validInput() servicemail.Input {
	return servicemail.Input{
		Email:        "cust@ex.com",
		StoreNumber:  "630",
		OrderNumber:  "0630-250814-56874",
		CustomerName: "jane doe",
		Brand:        "Samsung",
		Model:        "QN65",
		Template:     servicemail.ServiceExchange,
	}
}

func TestCompose_ServiceExchange(t *testing.T) {
	t.Parallel()

	res := servicemail.Compose(context.Background(), validInput())
	require.True(t, res.OK())
	require.Nil(t, res.Err)
	require.NotNil(t, res.Message)

	assert.Equal(t, servicemail.StateReady, res.State)
	assert.Equal(t, "cust@ex.com", res.Message.To)
	assert.Equal(t,
		"BBY-DL-STORE-000630-SHIFTLEADERS@bestbuy.com;BBY-DL-STORE-000630-PRECINCT@bestbuy.com",
		res.Message.CC,
	)
	assert.Equal(t, "Geek Squad Service Exchange Authorization - Order #0630-250814-56874", res.Message.Subject)
	assert.Contains(t, res.Message.Body, "Hello Jane Doe,")
	assert.Contains(t, res.Message.Body, "Service Order: 0630-250814-56874")
}

func TestCompose_UnitReturnWithoutOrder(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.OrderNumber = "   "
	in.Template = servicemail.UnitReturn

	res := servicemail.Compose(context.Background(), in)
	require.True(t, res.OK())
	assert.Equal(t, "Geek Squad Unit Return - Order #", res.Message.Subject)
	assert.Contains(t, res.Message.Body, "Service Order: \n")
}

func TestCompose_StopsAtFirstFailingField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edit  func(*servicemail.Input)
		field servicemail.Field
		kind  servicemail.ErrorKind
	}{
		{
			name:  "email before store and order",
			edit:  func(in *servicemail.Input) { in.Email = ""; in.StoreNumber = "x"; in.OrderNumber = "bad" },
			field: servicemail.FieldEmail,
			kind:  servicemail.KindRequired,
		},
		{
			name:  "email shape",
			edit:  func(in *servicemail.Input) { in.Email = "a@bc" },
			field: servicemail.FieldEmail,
			kind:  servicemail.KindInvalidEmailShape,
		},
		{
			name:  "store before order",
			edit:  func(in *servicemail.Input) { in.StoreNumber = "12"; in.OrderNumber = "bad" },
			field: servicemail.FieldStore,
			kind:  servicemail.KindBadLength,
		},
		{
			name:  "order format",
			edit:  func(in *servicemail.Input) { in.OrderNumber = "0630-25081-56874" },
			field: servicemail.FieldOrder,
			kind:  servicemail.KindBadFormat,
		},
		{
			name:  "order store mismatch",
			edit:  func(in *servicemail.Input) { in.StoreNumber = "631" },
			field: servicemail.FieldOrder,
			kind:  servicemail.KindStoreMismatch,
		},
		{
			name:  "unknown template",
			edit:  func(in *servicemail.Input) { in.Template = "warranty" },
			field: servicemail.FieldTemplate,
			kind:  servicemail.KindUnknownTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validInput()
			tt.edit(&in)

			res := servicemail.Compose(context.Background(), in)
			assert.False(t, res.OK())
			assert.Equal(t, servicemail.StateFailed, res.State)
			assert.Nil(t, res.Message)
			require.NotNil(t, res.Err)
			assert.Equal(t, tt.field, res.Err.Field)
			assert.Equal(t, tt.kind, res.Err.Kind)
		})
	}
}

func TestCompose_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, in := range []servicemail.Input{validInput(), {Email: "x"}} {
		first := servicemail.Compose(ctx, in)
		second := servicemail.Compose(ctx, in)
		assert.Equal(t, first, second)
	}
}

func TestComposer_LogsTransitions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := servicemail.NewComposer(servicemail.WithLogger(log))

	res := c.Compose(context.Background(), validInput())
	require.True(t, res.OK())

	out := buf.String()
	assert.Contains(t, out, "from=idle to=validating event=submit")
	assert.Contains(t, out, "from=validating to=ready event=resolve")
	assert.Contains(t, out, "submission ready")
}

func TestComposedMessage_MailtoURI(t *testing.T) {
	t.Parallel()

	msg := servicemail.ComposedMessage{
		To:      "cust@ex.com",
		CC:      "a@b.com;c@d.com",
		Subject: "Order #1",
		Body:    "Hi,\nBye",
	}
	assert.Equal(t,
		"mailto:cust@ex.com?cc=a%40b.com%3Bc%40d.com&subject=Order%20%231&body=Hi%2C%0ABye",
		msg.MailtoURI(),
	)
}
