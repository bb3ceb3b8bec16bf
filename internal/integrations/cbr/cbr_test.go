package cbr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/coop-loan-analytics/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyRateResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <KeyRateResponse xmlns="http://web.cbr.ru/">
      <KeyRateResult>
        <diffgr:diffgram xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
          <KeyRate xmlns="">
            <KR><DT>2025-06-10T00:00:00+03:00</DT><Rate>20.00</Rate></KR>
            <KR><DT>2025-06-09T00:00:00+03:00</DT><Rate>21.00</Rate></KR>
          </KeyRate>
        </diffgr:diffgram>
      </KeyRateResult>
    </KeyRateResponse>
  </soap:Body>
</soap:Envelope>`

func newTestClient(url string) *CBRClient {
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewCBRClient(&config.Config{CBRURL: url, CBRMargin: 5}, log)
	c.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestGetKeyRate(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		assert.Equal(t, "http://web.cbr.ru/KeyRate", r.Header.Get("SOAPAction"))
		_, _ = w.Write([]byte(keyRateResponse))
	}))
	defer srv.Close()

	rate, err := newTestClient(srv.URL).GetKeyRate(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 25.0, rate, 1e-9)
	assert.Contains(t, gotBody, "<fromDate>2025-05-16</fromDate>")
	assert.Contains(t, gotBody, "<ToDate>2025-06-15</ToDate>")
}

func TestGetKeyRate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: ""},
		{name: "malformed xml", status: http.StatusOK, body: "<oops"},
		{name: "no rates", status: http.StatusOK, body: `<diffgram><KeyRate></KeyRate></diffgram>`},
		{name: "missing rate", status: http.StatusOK, body: `<diffgram><KeyRate><KR><DT>x</DT></KR></KeyRate></diffgram>`},
		{name: "bad number", status: http.StatusOK, body: `<diffgram><KeyRate><KR><Rate>n/a</Rate></KR></KeyRate></diffgram>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).GetKeyRate(context.Background())
			assert.Error(t, err)
		})
	}
}
