package papers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/eutils"
	"github.com/mohan-31743/pubmed-paper-fetcher/internal/logger"
)

type fakeSource struct {
	searchRes       *eutils.SearchResult
	searchErr       error
	summaries       []eutils.Summary
	summariesErr    error
	summariesCalled bool
}

func (f *fakeSource) Search(ctx context.Context, query string, limit int) (*eutils.SearchResult, error) {
	return f.searchRes, f.searchErr
}

func (f *fakeSource) Summaries(ctx context.Context, ids []string) ([]eutils.Summary, error) {
	f.summariesCalled = true
	return f.summaries, f.summariesErr
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestFetch_SearchErrorAbsorbed(t *testing.T) {
	logs := quietLogs(t)
	src := &fakeSource{searchErr: fmt.Errorf("connection refused")}

	records := Fetch(context.Background(), src, "cancer", 0)

	if len(records) != 0 {
		t.Errorf("expected empty result, got %d records", len(records))
	}
	if src.summariesCalled {
		t.Error("summaries should not be fetched after a search failure")
	}
	if !strings.Contains(logs.String(), "fetching papers") {
		t.Errorf("search failure not logged: %q", logs.String())
	}
}

func TestFetch_NoMatchesSkipsSummaries(t *testing.T) {
	quietLogs(t)
	src := &fakeSource{searchRes: &eutils.SearchResult{Count: 0}}

	records := Fetch(context.Background(), src, "zxqj nonsense", 0)

	if len(records) != 0 {
		t.Errorf("expected empty result, got %d records", len(records))
	}
	if src.summariesCalled {
		t.Error("summaries should not be fetched for an empty ID list")
	}
}

func TestFetch_SummariesErrorAbsorbed(t *testing.T) {
	logs := quietLogs(t)
	src := &fakeSource{
		searchRes:    &eutils.SearchResult{Count: 1, IDs: []string{"111"}},
		summariesErr: fmt.Errorf("timeout"),
	}

	records := Fetch(context.Background(), src, "cancer", 0)

	if len(records) != 0 {
		t.Errorf("expected empty result, got %d records", len(records))
	}
	if !strings.Contains(logs.String(), "fetching paper details") {
		t.Errorf("summary failure not logged: %q", logs.String())
	}
}

func TestFetch_Success(t *testing.T) {
	quietLogs(t)
	src := &fakeSource{
		searchRes: &eutils.SearchResult{Count: 1, IDs: []string{"111"}},
		summaries: []eutils.Summary{{ID: "111", Title: "Study A", PubDate: "2023"}},
	}

	records := Fetch(context.Background(), src, "cancer", 0)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].PubmedID != "111" || records[0].Title != "Study A" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestFetch_EndToEnd(t *testing.T) {
	quietLogs(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/esearch.fcgi"):
			w.Write([]byte(`{"esearchresult":{"count":"2","idlist":["111","222"]}}`))
		case strings.HasSuffix(r.URL.Path, "/esummary.fcgi"):
			w.Write([]byte(`{"result":{
				"uids":["111","222"],
				"111":{"title":"Study A","pubdate":"2023","authors":[{"name":"Jane Doe","affiliation":"Pfizer Inc.","email":"jane@pfizer.com"}]},
				"222":{"title":"Study B","pubdate":"2022","authors":[{"name":"John Smith","affiliation":"Massachusetts Institute of Technology"}]}
			}}`))
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := eutils.NewClient(eutils.WithBaseURL(srv.URL))
	records := Fetch(context.Background(), client, "cancer immunotherapy", 0)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	want111 := Record{
		PubmedID:            "111",
		Title:               "Study A",
		PubDate:             "2023",
		NonAcademicAuthors:  "Jane Doe",
		CompanyAffiliations: "Pfizer Inc.",
		Email:               "jane@pfizer.com",
	}
	if records[0] != want111 {
		t.Errorf("record 111 mismatch:\n got %+v\nwant %+v", records[0], want111)
	}

	want222 := Record{
		PubmedID:            "222",
		Title:               "Study B",
		PubDate:             "2022",
		NonAcademicAuthors:  "",
		CompanyAffiliations: "",
		Email:               NA,
	}
	if records[1] != want222 {
		t.Errorf("record 222 mismatch:\n got %+v\nwant %+v", records[1], want222)
	}
}

func TestFetch_SearchHTTP500(t *testing.T) {
	logs := quietLogs(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := eutils.NewClient(eutils.WithBaseURL(srv.URL))
	records := Fetch(context.Background(), client, "cancer immunotherapy", 0)

	if len(records) != 0 {
		t.Errorf("expected empty result after HTTP 500, got %d records", len(records))
	}
	if !strings.Contains(logs.String(), "500") {
		t.Errorf("expected HTTP 500 in log output, got: %q", logs.String())
	}
}

func TestFetch_SearchFailureLogOmitsAPIKey(t *testing.T) {
	logs := quietLogs(t)
	client := eutils.NewClient(
		eutils.WithBaseURL("http://127.0.0.1:1"),
		eutils.WithAPIKey("secret-key-123"),
	)

	records := Fetch(context.Background(), client, "cancer immunotherapy", 0)

	if len(records) != 0 {
		t.Errorf("expected empty result, got %d records", len(records))
	}
	if !strings.Contains(logs.String(), "fetching papers") {
		t.Errorf("search failure not logged: %q", logs.String())
	}
	if strings.Contains(logs.String(), "secret-key-123") {
		t.Errorf("API key leaked into log output: %q", logs.String())
	}
}
