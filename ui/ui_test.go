package ui

// go test -v github.com/skypies/launchdb/ui

import(
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/config"
	"github.com/skypies/launchdb/launchdata"
)

func newTestServer(t *testing.T) *httptest.Server {
	ls,err := launchdata.Loader{}.Load(context.Background(), "../testdata/spacex_launch_dash.csv")
	require.NoError(t, err)

	d,err := NewDashboard(ls, NewLayout(config.DefaultTitle, ls, config.DefaultSlider()))
	require.NoError(t, err)

	srv := httptest.NewServer(d.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string, string) {
	resp,err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body,err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(body)
}

func TestLayout(t *testing.T) {
	ls := ldb.LaunchSet{
		{Site:"VAFB SLC-4E", PayloadKG:500},
		{Site:"CCAFS LC-40", PayloadKG:9600},
		{Site:"VAFB SLC-4E", PayloadKG:0},
	}
	l := NewLayout("t", ls, config.DefaultSlider())

	assert.Equal(t, []DropdownOption{
		{ldb.AllSites, ldb.AllSites},
		{"VAFB SLC-4E", "VAFB SLC-4E"},
		{"CCAFS LC-40", "CCAFS LC-40"},
	}, l.Sites)
	assert.Equal(t, ldb.AllSites, l.DefaultSite)
	assert.Equal(t, SitePlaceholder, l.Placeholder)
	assert.Equal(t, ldb.PayloadRange{Lo:0, Hi:9600}, l.Slider.Value)
	assert.Equal(t, 1000.0, l.Slider.Step)
	assert.Equal(t, []Mark{{2500,"2500 (Kg)"},{5000,"5000 (Kg)"},{7500,"7500 (Kg)"}}, l.Slider.Marks)
}

func TestFormValueUIOptions(t *testing.T) {
	dflt := ldb.PayloadRange{Lo:0, Hi:9600}
	tests := []struct{
		Query string
		Site  string
		Range ldb.PayloadRange
		Err   bool
	}{
		{"", ldb.AllSites, dflt, false},
		{"site=KSC+LC-39A", "KSC LC-39A", dflt, false},
		{"lo=2500&hi=7500", ldb.AllSites, ldb.PayloadRange{Lo:2500,Hi:7500}, false},
		{"hi=5000", ldb.AllSites, ldb.PayloadRange{Lo:0,Hi:5000}, false},
		{"range=1000,2000", ldb.AllSites, ldb.PayloadRange{Lo:1000,Hi:2000}, false},
		{"range=1000,2000&hi=3000", ldb.AllSites, ldb.PayloadRange{Lo:1000,Hi:3000}, false},
		{"lo=heavy", "", ldb.PayloadRange{}, true},
		{"range=1,2,3", "", ldb.PayloadRange{}, true},
		{"hi=Inf", "", ldb.PayloadRange{}, true},
		{"lo=-Inf", "", ldb.PayloadRange{}, true},
		{"lo=NaN", "", ldb.PayloadRange{}, true},
		{"range=0,%2BInf", "", ldb.PayloadRange{}, true},
		{"lo=0&hi=1e11", ldb.AllSites, ldb.PayloadRange{Lo:0,Hi:1e11}, false},
	}

	for _,test := range tests {
		r := httptest.NewRequest("GET", "/?"+test.Query, nil)
		opt,err := FormValueUIOptions(r, dflt)
		if test.Err {
			assert.Error(t, err, test.Query)
			continue
		}
		require.NoError(t, err, test.Query)
		assert.Equal(t, test.Site, opt.Site, test.Query)
		assert.Equal(t, test.Range, opt.Range, test.Query)
	}
}

func TestPieEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status,ctype,body := get(t, srv, "/api/pie")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", ctype)

	assert.Equal(t, "Total Successful Launches by Site", gjson.Get(body, "layout.title.text").String())
	total := 0.0
	for _,v := range gjson.Get(body, "data.0.values").Array() { total += v.Float() }
	assert.Equal(t, 14.0, total, "all-sites pie should sum to the number of successes")

	_,_,body = get(t, srv, "/api/pie?site=KSC+LC-39A")
	assert.Equal(t, "Success vs. Failure for KSC LC-39A", gjson.Get(body, "layout.title.text").String())
	assert.Equal(t, `["1","0"]`, gjson.Get(body, "data.0.labels").Raw)
	assert.Equal(t, `[5,1]`, gjson.Get(body, "data.0.values").Raw)

	status,_,body = get(t, srv, "/api/pie?site=Boca+Chica")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), gjson.Get(body, "data.0.values.#").Int())
}

func TestScatterEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status,_,body := get(t, srv, "/api/scatter?lo=2500&hi=7500")
	require.Equal(t, http.StatusOK, status)

	n := 0
	for _,trace := range gjson.Get(body, "data").Array() {
		for _,x := range trace.Get("x").Array() {
			assert.True(t, x.Float() >= 2500 && x.Float() <= 7500, "x=%v out of range", x.Float())
			n++
		}
	}
	assert.Equal(t, 18, n)
	assert.Equal(t, "v1.1", gjson.Get(body, "data.0.name").String())

	_,_,body = get(t, srv, "/api/scatter?site=KSC+LC-39A&lo=2500&hi=7500")
	n = 0
	for _,trace := range gjson.Get(body, "data").Array() { n += len(trace.Get("x").Array()) }
	assert.Equal(t, 5, n)

	// No lo/hi means the full table
	_,_,body = get(t, srv, "/api/scatter")
	n = 0
	for _,trace := range gjson.Get(body, "data").Array() { n += len(trace.Get("x").Array()) }
	assert.Equal(t, 37, n)

	status,ctype,body := get(t, srv, "/api/scatter?lo=lots")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.True(t, strings.HasPrefix(ctype, "text/plain"))
	assert.Contains(t, body, `lo: "lots" is not a number`)
}

func TestSitesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	_,_,body := get(t, srv, "/api/sites")

	assert.Equal(t, ldb.AllSites, gjson.Get(body, "options.0.value").String())
	assert.Equal(t, int64(5), gjson.Get(body, "options.#").Int())
	assert.Equal(t, "CCAFS LC-40", gjson.Get(body, "sites.0.name").String())
	assert.Equal(t, int64(23), gjson.Get(body, "sites.0.launches").Int())
	assert.Equal(t, "CCAFS SLC-40", gjson.Get(body, "sites.0.nearest_site").String())
}

func TestDashboardPage(t *testing.T) {
	srv := newTestServer(t)

	status,ctype,body := get(t, srv, "/")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(ctype, "text/html"))
	assert.Contains(t, body, "SpaceX Launch Records Dashboard")
	assert.Contains(t, body, `placeholder="Select a Launch Site"`)
	assert.Contains(t, body, "2500 (Kg)")
	assert.Contains(t, body, "Total Successful Launches by Site")
	assert.Contains(t, body, `<option value="VAFB SLC-4E">`)

	status,_,_ = get(t, srv, "/nosuchpage")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDebugOptions(t *testing.T) {
	srv := newTestServer(t)
	status,ctype,body := get(t, srv, "/api/pie?site=KSC+LC-39A&debugoptions=1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "text/plain", ctype)
	assert.Contains(t, body, `Site:"KSC LC-39A"`)
}

func TestReportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	status,_,body := get(t, srv, "/report?rep=launches&site=KSC+LC-39A&lo=2500&hi=7500")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<b>Matched</b>")

	status,ctype,body := get(t, srv, "/report?rep=launches&site=KSC+LC-39A&lo=2500&hi=7500&format=csv")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "text/plain", ctype)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 6) // header plus five launches
	assert.Equal(t, "Flight Number,Launch Site,Payload Mass (kg),Booster Version,Booster Version Category,class", lines[0])

	resp,err := http.Get(srv.URL + "/report?rep=sites&format=csv&download=1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "report-sites-all-sites-0:9600.csv")

	status,_,_ = get(t, srv, "/report?rep=nosuchreport")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPDFEndpoint(t *testing.T) {
	srv := newTestServer(t)
	status,ctype,body := get(t, srv, "/pdf?site=CCAFS+LC-40&lo=0&hi=5000")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/pdf", ctype)
	assert.True(t, strings.HasPrefix(body, "%PDF-"))
}

func TestPDFEndpointWideRanges(t *testing.T) {
	srv := newTestServer(t)
	client := &http.Client{Timeout: 5 * time.Second}

	for _,q := range []string{"lo=0&hi=1e11", "lo=-1e300&hi=1e300", "lo=20000&hi=30000"} {
		resp,err := client.Get(srv.URL + "/pdf?" + q)
		require.NoError(t, err, q)
		body,_ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, q)
		assert.True(t, strings.HasPrefix(string(body), "%PDF-"), q)
	}

	// The filename shows the range actually drawn
	resp,err := client.Get(srv.URL + "/pdf?lo=0&hi=1e11")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "launches-all-sites-0:10000.pdf")

	for _,q := range []string{"hi=Inf", "lo=-Inf", "hi=NaN"} {
		status,_,_ := get(t, srv, "/pdf?"+q)
		assert.Equal(t, http.StatusBadRequest, status, q)
	}
}

func TestSliderExtent(t *testing.T) {
	s := Slider{Min:0, Max:10000, Value:ldb.PayloadRange{Lo:0, Hi:9600}}
	assert.Equal(t, ldb.PayloadRange{Lo:0, Hi:10000}, s.Extent())

	s.Value = ldb.PayloadRange{Lo:-50, Hi:15600}
	assert.Equal(t, ldb.PayloadRange{Lo:-50, Hi:15600}, s.Extent())
}

func TestLoadDashboardAndServe(t *testing.T) {
	cfg := config.Default()
	cfg.Data = []string{"../testdata/spacex_launch_dash.csv"}

	d,err := LoadDashboard(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, d.Launches, 37)
	assert.Len(t, d.Layout.Sites, 5)

	cfg.Data = []string{"../testdata/nosuchfile.csv"}
	_,err = LoadDashboard(context.Background(), cfg)
	assert.Error(t, err)

	// Serve returns cleanly once its context is cancelled
	ctx,cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- Serve(ctx, "127.0.0.1:0", d.Routes()) }()
	cancel()
	assert.NoError(t, <-done)
}
