package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grycap/awsome-cli/pkg/browse"
)

func newS3Server(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Header().Set("Content-Type", "application/xml")
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
	<Owner><ID>test</ID><DisplayName>test</DisplayName></Owner>
	<Buckets>
		<Bucket><Name>photos</Name><CreationDate>2024-01-15T10:00:00.000Z</CreationDate></Bucket>
		<Bucket><Name>logs</Name><CreationDate>2024-02-20T08:30:00.000Z</CreationDate></Bucket>
	</Buckets>
</ListAllMyBucketsResult>`)
		case "/photos":
			w.Header().Set("Content-Type", "application/xml")
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
	<Name>photos</Name>
	<Prefix></Prefix>
	<Delimiter>/</Delimiter>
	<KeyCount>2</KeyCount>
	<Contents>
		<Key>cat.jpg</Key>
		<Size>2048</Size>
		<LastModified>2024-03-01T12:00:00.000Z</LastModified>
		<ETag>&quot;abc123&quot;</ETag>
		<StorageClass>STANDARD</StorageClass>
	</Contents>
	<CommonPrefixes><Prefix>raw/</Prefix></CommonPrefixes>
</ListBucketResult>`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestListCommandPrintsBuckets(t *testing.T) {
	server := newS3Server(t)
	defer server.Close()

	configFile := writeConfigFile(t, "list-profile", server.URL)

	stdout, stderr, err := runCommand(t,
		"list", "s3",
		"--config", configFile,
	)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "BUCKET NAME") {
		t.Fatalf("missing table header: %q", stdout)
	}
	if !strings.Contains(stdout, "photos") || !strings.Contains(stdout, "logs") {
		t.Fatalf("unexpected bucket list output: %q", stdout)
	}
}

func TestListCommandJSONOutput(t *testing.T) {
	server := newS3Server(t)
	defer server.Close()

	configFile := writeConfigFile(t, "list-profile-json", server.URL)

	stdout, stderr, err := runCommand(t,
		"list", "s3",
		"--config", configFile,
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}

	var records []browse.Record
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if len(records) != 2 || records[0].ID != "photos" {
		t.Fatalf("unexpected json output: %v", records)
	}
	if !records[0].Container {
		t.Fatal("buckets must be marked as containers")
	}
}

func TestListCommandNestedPath(t *testing.T) {
	server := newS3Server(t)
	defer server.Close()

	configFile := writeConfigFile(t, "list-profile-path", server.URL)

	stdout, _, err := runCommand(t,
		"list", "s3",
		"--config", configFile,
		"--path", "photos/",
	)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(stdout, "raw/") {
		t.Fatalf("missing folder entry: %q", stdout)
	}
	if !strings.Contains(stdout, "cat.jpg") || !strings.Contains(stdout, "2.0 KiB") {
		t.Fatalf("unexpected object listing: %q", stdout)
	}
}

func TestListCommandFuzzyFilter(t *testing.T) {
	server := newS3Server(t)
	defer server.Close()

	configFile := writeConfigFile(t, "list-profile-filter", server.URL)

	stdout, _, err := runCommand(t,
		"list", "s3",
		"--config", configFile,
		"--filter", "pho",
		"--output", "json",
	)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	var records []browse.Record
	if err := json.Unmarshal([]byte(stdout), &records); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if len(records) != 1 || records[0].ID != "photos" {
		t.Fatalf("filter not applied: %v", records)
	}
}

func TestListCommandRejectsPathOnFlatService(t *testing.T) {
	configFile := writeConfigFile(t, "list-profile-flat", "http://localhost:1")

	_, _, err := runCommand(t,
		"list", "ec2",
		"--config", configFile,
		"--path", "something/",
	)
	if err == nil {
		t.Fatal("expected error for a path on a flat service")
	}
	if !strings.Contains(err.Error(), "no nested paths") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListCommandUnknownService(t *testing.T) {
	configFile := writeConfigFile(t, "list-profile-unknown", "http://localhost:1")

	_, _, err := runCommand(t,
		"list", "gamelift",
		"--config", configFile,
	)
	if err == nil {
		t.Fatal("expected error for an unknown service")
	}
	if !strings.Contains(err.Error(), "unknown service") {
		t.Fatalf("unexpected error: %v", err)
	}
}
