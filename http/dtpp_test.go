package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flightbag/flightbag"
	flightbaghttp "github.com/flightbag/flightbag/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dtppMetafile = `<?xml version="1.0" encoding="UTF-8"?>
<digital_tpp cycle="2608" from_edate="0901Z 08/06/26" to_edate="0901Z 09/03/26">
 <state_code ID="DC" state_fullname="District of Columbia">
  <city_name ID="WASHINGTON" volume="EAST-1">
   <airport_name ID="RONALD REAGAN WASHINGTON NTL" military="N" apt_ident="DCA" icao_ident="KDCA" alnum="1002">
    <record>
     <chartseq>10100</chartseq>
     <chart_code>APD</chart_code>
     <chart_name>AIRPORT DIAGRAM</chart_name>
     <pdf_name>00591AD.PDF</pdf_name>
    </record>
    <record>
     <chartseq>50100</chartseq>
     <chart_code>IAP</chart_code>
     <chart_name>ILS OR LOC RWY 1</chart_name>
     <pdf_name>00591IL1.PDF</pdf_name>
    </record>
    <record>
     <chartseq>50200</chartseq>
     <chart_code>IAP</chart_code>
     <chart_name>VOR RWY 33</chart_name>
     <pdf_name>DELETED</pdf_name>
    </record>
   </airport_name>
  </city_name>
 </state_code>
 <state_code ID="VA" state_fullname="Virginia">
  <city_name ID="RICHMOND" volume="EAST-2">
   <airport_name ID="RICHMOND INTL" military="N" apt_ident="RIC" icao_ident="KRIC" alnum="1050">
    <record>
     <chartseq>70100</chartseq>
     <chart_code>STAR</chart_code>
     <chart_name>SPIDR ONE</chart_name>
     <pdf_name>05222SPIDR.PDF</pdf_name>
    </record>
   </airport_name>
  </city_name>
 </state_code>
</digital_tpp>`

func TestDTPPService_Charts(t *testing.T) {
	t.Parallel()

	newServer := func(t *testing.T) *httptest.Server {
		t.Helper()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2608/xml_data/d-TPP_Metafile.xml", r.URL.Path)
			_, _ = w.Write([]byte(dtppMetafile))
		}))
		t.Cleanup(server.Close)
		return server
	}

	t.Run("matches by FAA identifier", func(t *testing.T) {
		t.Parallel()

		server := newServer(t)
		svc := flightbaghttp.NewDTPPService(fastClient(), server.URL, "2608")

		charts, err := svc.Charts(context.Background(), "dca")
		require.NoError(t, err)

		// The deleted VOR RWY 33 record is dropped.
		require.Len(t, charts, 2)
		assert.Equal(t, "AIRPORT DIAGRAM", charts[0].Title)
		assert.Equal(t, "APD", charts[0].Code)
		assert.Equal(t, "DCA", charts[0].Airport)
		assert.Equal(t, server.URL+"/2608/00591AD.PDF", charts[0].PDF)
		assert.Equal(t, "ILS OR LOC RWY 1", charts[1].Title)
	})

	t.Run("matches by ICAO identifier", func(t *testing.T) {
		t.Parallel()

		server := newServer(t)
		svc := flightbaghttp.NewDTPPService(fastClient(), server.URL, "2608")

		charts, err := svc.Charts(context.Background(), "KRIC")
		require.NoError(t, err)
		require.Len(t, charts, 1)
		assert.Equal(t, "SPIDR ONE", charts[0].Title)
		assert.Equal(t, "STAR", charts[0].Code)
	})

	t.Run("returns ENOTFOUND for an airport outside the metafile", func(t *testing.T) {
		t.Parallel()

		server := newServer(t)
		svc := flightbaghttp.NewDTPPService(fastClient(), server.URL, "2608")

		_, err := svc.Charts(context.Background(), "KSEA")
		require.Error(t, err)
		assert.Equal(t, flightbag.ENOTFOUND, flightbag.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE for a missing cycle", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := flightbaghttp.NewDTPPService(fastClient(), server.URL, "2608")

		_, err := svc.Charts(context.Background(), "KDCA")
		require.Error(t, err)
		assert.Equal(t, flightbag.EUNAVAILABLE, flightbag.ErrorCode(err))
	})

	t.Run("requires an airport identifier", func(t *testing.T) {
		t.Parallel()

		svc := flightbaghttp.NewDTPPService(fastClient(), "http://unused.invalid", "2608")

		_, err := svc.Charts(context.Background(), "  ")
		require.Error(t, err)
		assert.Equal(t, flightbag.EINVALID, flightbag.ErrorCode(err))
	})

	t.Run("defaults to the current cycle", func(t *testing.T) {
		t.Parallel()

		svc := flightbaghttp.NewDTPPService(fastClient(), "", "")
		assert.Len(t, svc.Cycle(), 4)
	})
}

func TestCurrentCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"epoch cycle", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), "2001"},
		{"fourteenth cycle of a drift year", time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), "2014"},
		{"previous year's cycle still effective", time.Date(2021, 1, 27, 12, 0, 0, 0, time.UTC), "2014"},
		{"new year's first cycle", time.Date(2021, 1, 28, 0, 0, 0, 0, time.UTC), "2101"},
		{"mid-cycle date", time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC), "2608"},
		{"before the epoch", time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), "2001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, flightbaghttp.CurrentCycle(tt.t))
		})
	}
}

// Compile-time verification that DTPPService implements the domain
// interface.
var _ flightbag.ChartSource = (*flightbaghttp.DTPPService)(nil)
