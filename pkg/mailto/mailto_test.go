package mailto_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/pkg/mailto"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name                  string
		to, cc, subject, body string
		expected              string
	}{
		{
			name:     "recipient only",
			to:       "cust@ex.com",
			expected: "mailto:cust@ex.com",
		},
		{
			name:     "all parameters",
			to:       "cust@ex.com",
			cc:       "a@b.com;c@d.com",
			subject:  "Order #1",
			body:     "Hello Jane,\n\nBye",
			expected: "mailto:cust@ex.com?cc=a%40b.com%3Bc%40d.com&subject=Order%20%231&body=Hello%20Jane%2C%0A%0ABye",
		},
		{
			name:     "empty cc is omitted",
			to:       "x@y.z",
			subject:  "Hi",
			expected: "mailto:x@y.z?subject=Hi",
		},
		{
			name:     "only body",
			to:       "x@y.z",
			body:     "a&b=c",
			expected: "mailto:x@y.z?body=a%26b%3Dc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mailto.Build(tt.to, tt.cc, tt.subject, tt.body))
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain-text_1.0~", mailto.Escape("plain-text_1.0~"))
	assert.Equal(t, "%20%21%27%28%29%2A", mailto.Escape(" !'()*"))
	assert.Equal(t, "%C3%A9", mailto.Escape("é"))
	assert.Equal(t, "", mailto.Escape(""))
}

func TestBuild_RoundTripsThroughURLParser(t *testing.T) {
	body := "Service Order: 0630-250814-56874\nBrand: Sony & Co\nModel: X/1+2"
	uri := mailto.Build("cust@ex.com", "a@b.com;c@d.com", "Order #0630", body)

	u, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "cust@ex.com", u.Opaque)

	q, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, body, q.Get("body"))
	assert.Equal(t, "Order #0630", q.Get("subject"))
	assert.Equal(t, "a@b.com;c@d.com", q.Get("cc"))
}
