package edgelist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
)

func TestParseCSV_Valid(t *testing.T) {
	input := "Ross,Rachel,92\nMonica,Chandler,85\nJoey,Phoebe,31\n"

	edges, err := ParseCSV(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(edges) != 3 {
		t.Fatalf("Expected 3 edges, got %d", len(edges))
	}

	if edges[0].From != "Ross" || edges[0].To != "Rachel" || edges[0].Weight != 92 {
		t.Errorf("Unexpected first edge: %+v", edges[0])
	}
}

func TestParseCSV_HeaderRow(t *testing.T) {
	input := "from,to,weight\nRoss,Rachel,92\n"

	edges, err := ParseCSV(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(edges) != 1 {
		t.Fatalf("Expected header to be skipped, got %d edges", len(edges))
	}
}

func TestParseCSV_MalformedWeight(t *testing.T) {
	input := "Ross,Rachel,92\nMonica,Chandler,lots\n"

	_, err := ParseCSV(strings.NewReader(input), "test")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Expected ErrMalformedInput, got %v", err)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if perr.Line != 2 {
		t.Errorf("Expected error on line 2, got line %d", perr.Line)
	}
}

func TestParseCSV_NonPositiveWeight(t *testing.T) {
	for _, input := range []string{"Ross,Rachel,0\n", "Ross,Rachel,-3\n"} {
		if _, err := ParseCSV(strings.NewReader(input), "test"); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Input %q: expected ErrMalformedInput, got %v", input, err)
		}
	}
}

func TestParseCSV_EmptyEndpoint(t *testing.T) {
	input := "Ross,,92\n"

	if _, err := ParseCSV(strings.NewReader(input), "test"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Expected ErrMalformedInput, got %v", err)
	}
}

func TestParseCSV_WrongFieldCount(t *testing.T) {
	input := "Ross,Rachel\n"

	if _, err := ParseCSV(strings.NewReader(input), "test"); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Expected ErrMalformedInput, got %v", err)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader(""), "test"); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.csv")
	if err := os.WriteFile(path, []byte("Ross,Rachel,92\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	edges, err := Load(context.Background(), path, SourceOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(edges) != 1 {
		t.Errorf("Expected 1 edge, got %d", len(edges))
	}
}

func TestLoad_SnappyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.csv.snappy")
	compressed := snappy.Encode(nil, []byte("Ross,Rachel,92\nMonica,Chandler,85\n"))
	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	edges, err := Load(context.Background(), path, SourceOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(edges) != 2 {
		t.Errorf("Expected 2 edges, got %d", len(edges))
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ross,Rachel,92\nJoey,Phoebe,31\n"))
	}))
	defer srv.Close()

	edges, err := Load(context.Background(), srv.URL+"/edges.csv", SourceOptions{HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(edges) != 2 {
		t.Errorf("Expected 2 edges, got %d", len(edges))
	}
}

func TestLoad_HTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Load(context.Background(), srv.URL+"/missing.csv", SourceOptions{HTTPClient: srv.Client()}); err == nil {
		t.Fatal("Expected error for 404 response")
	}
}

func TestLoad_UnknownScheme(t *testing.T) {
	if _, err := Load(context.Background(), "ftp://example.com/edges.csv", SourceOptions{}); !errors.Is(err, ErrUnknownScheme) {
		t.Fatalf("Expected ErrUnknownScheme, got %v", err)
	}
}
