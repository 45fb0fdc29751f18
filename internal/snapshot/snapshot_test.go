package snapshot

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestKey(t *testing.T) {
	if got := Key("counter", 7); got != "counter/commit-0007.html" {
		t.Errorf("Key() = %q", got)
	}
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	s := &DirStore{Dir: dir}
	if err := s.Put(context.Background(), Key("todo", 1), []byte("<ul></ul>")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "todo", "commit-0001.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<ul></ul>" {
		t.Errorf("snapshot = %q", data)
	}
}

func TestS3Store(t *testing.T) {
	fake := &fakeS3{}
	s := NewS3Store(fake, "renders", "/ci/run-1/")
	if err := s.Put(context.Background(), Key("counter", 2), []byte("<h1>2</h1>")); err != nil {
		t.Fatal(err)
	}

	if len(fake.inputs) != 1 {
		t.Fatalf("PutObject called %d times", len(fake.inputs))
	}
	in := fake.inputs[0]
	if aws.ToString(in.Bucket) != "renders" {
		t.Errorf("Bucket = %q", aws.ToString(in.Bucket))
	}
	if got := aws.ToString(in.Key); got != "ci/run-1/counter/commit-0002.html" {
		t.Errorf("Key = %q", got)
	}
	if fake.bodies[0] != "<h1>2</h1>" {
		t.Errorf("Body = %q", fake.bodies[0])
	}
	if _, ok := in.Metadata["snapshot-time"]; !ok {
		t.Error("snapshot-time metadata missing")
	}

	fake.err = errors.New("access denied")
	if err := s.Put(context.Background(), "k", nil); !errors.Is(err, fake.err) {
		t.Errorf("Put() = %v, want wrapped access denied", err)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		target  string
		wantDir bool
		wantErr bool
	}{
		{target: "out/snapshots", wantDir: true},
		{target: "s3://bucket/prefix"},
		{target: "s3://bucket"},
		{target: "s3:///prefix", wantErr: true},
		{target: "", wantErr: true},
	}
	for _, tt := range tests {
		store, err := Open(tt.target, S3Options{Region: "us-east-1"})
		if tt.wantErr {
			if err == nil {
				t.Errorf("Open(%q) should fail", tt.target)
			}
			continue
		}
		if err != nil {
			t.Errorf("Open(%q): %v", tt.target, err)
			continue
		}
		_, isDir := store.(*DirStore)
		if isDir != tt.wantDir {
			t.Errorf("Open(%q) = %T", tt.target, store)
		}
	}
}
