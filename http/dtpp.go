package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/flightbag/flightbag"
)

// DefaultDTPPBase is the FAA digital Terminal Procedures Publication
// root. Chart PDFs and the per-cycle metafile live under it.
const DefaultDTPPBase = "https://aeronav.faa.gov/d-tpp"

// airacEpoch is the effective date of AIRAC cycle 2001. Cycles run 28
// days; the FAA names them YYNN by the effective date's year.
var airacEpoch = time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)

// CurrentCycle returns the d-TPP cycle identifier effective at t, e.g.
// "2608". Times before the epoch report the epoch cycle.
func CurrentCycle(t time.Time) string {
	t = t.UTC()
	if t.Before(airacEpoch) {
		t = airacEpoch
	}
	n := int(t.Sub(airacEpoch) / (28 * 24 * time.Hour))
	eff := airacEpoch.AddDate(0, 0, n*28)
	ord := (eff.YearDay()-1)/28 + 1
	return fmt.Sprintf("%02d%02d", eff.Year()%100, ord)
}

// Ensure DTPPService implements flightbag.ChartSource at compile time.
var _ flightbag.ChartSource = (*DTPPService)(nil)

// DTPPService reads charts from the FAA d-TPP metafile, an XML index of
// every published terminal procedure for a cycle. The metafile is
// large, so one fetch serves both the requested identifier and its
// ICAO alternate.
type DTPPService struct {
	client *Client
	base   string
	cycle  string
}

// NewDTPPService creates a DTPPService for the given cycle. An empty
// base uses DefaultDTPPBase; an empty cycle uses the cycle currently in
// effect.
func NewDTPPService(client *Client, base, cycle string) *DTPPService {
	if base == "" {
		base = DefaultDTPPBase
	}
	if cycle == "" {
		cycle = CurrentCycle(time.Now())
	}
	return &DTPPService{
		client: client,
		base:   strings.TrimRight(base, "/"),
		cycle:  cycle,
	}
}

// Cycle returns the cycle identifier the service reads from.
func (s *DTPPService) Cycle() string {
	return s.cycle
}

// Charts returns every chart the cycle's metafile publishes for the
// airport, matched by FAA or ICAO identifier.
func (s *DTPPService) Charts(ctx context.Context, airport string) ([]flightbag.Chart, error) {
	ident := flightbag.NormalizeIdent(airport)
	if ident == "" {
		return nil, flightbag.Errorf(flightbag.EINVALID, "airport identifier required")
	}

	u := fmt.Sprintf("%s/%s/xml_data/d-TPP_Metafile.xml", s.base, s.cycle)
	body, status, err := s.client.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, flightbag.Errorf(flightbag.EUNAVAILABLE, "d-TPP metafile returned HTTP %d for cycle %s", status, s.cycle)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, flightbag.Errorf(flightbag.EINTERNAL, "malformed d-TPP metafile for cycle %s", s.cycle)
	}
	root := doc.Root()
	if root == nil {
		return nil, flightbag.Errorf(flightbag.EINTERNAL, "empty d-TPP metafile for cycle %s", s.cycle)
	}

	idents := []string{ident}
	if alt, ok := flightbag.AlternateIdent(ident); ok {
		idents = append(idents, alt)
	}

	var out []flightbag.Chart
	for _, state := range root.SelectElements("state_code") {
		for _, city := range state.SelectElements("city_name") {
			for _, apt := range city.SelectElements("airport_name") {
				if !airportMatches(apt, idents) {
					continue
				}
				faa := apt.SelectAttrValue("apt_ident", "")
				for _, rec := range apt.SelectElements("record") {
					if c, ok := s.extractRecord(rec, faa); ok {
						out = append(out, c)
					}
				}
			}
		}
	}
	if len(out) == 0 {
		return nil, flightbag.Errorf(flightbag.ENOTFOUND, "no charts found for %s in cycle %s", ident, s.cycle)
	}
	return out, nil
}

// extractRecord converts one metafile <record> into a Chart. Records
// without a usable PDF (pending deletions carry the literal "DELETED")
// are dropped.
func (s *DTPPService) extractRecord(rec *etree.Element, airport string) (flightbag.Chart, bool) {
	pdf := elementText(rec, "pdf_name")
	if pdf == "" || strings.EqualFold(pdf, "DELETED") {
		return flightbag.Chart{}, false
	}
	c := flightbag.Chart{
		Airport: airport,
		Title:   elementText(rec, "chart_name"),
		PDF:     fmt.Sprintf("%s/%s/%s", s.base, s.cycle, pdf),
		Code:    elementText(rec, "chart_code"),
	}
	if err := c.Validate(); err != nil {
		return flightbag.Chart{}, false
	}
	return c, true
}

func airportMatches(apt *etree.Element, idents []string) bool {
	faa := apt.SelectAttrValue("apt_ident", "")
	icao := apt.SelectAttrValue("icao_ident", "")
	for _, id := range idents {
		if id == faa || (icao != "" && id == icao) {
			return true
		}
	}
	return false
}

func elementText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
