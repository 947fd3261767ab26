package autojson_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"autojson"
)

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &autojson.Error{Kind: autojson.KindFile, Op: "read", Path: "/tmp/x.json", Err: cause}

	msg := err.Error()
	for _, part := range []string{"read", "/tmp/x.json", "boom"} {
		if !strings.Contains(msg, part) {
			t.Fatalf("message %q missing %q", msg, part)
		}
	}
	if !errors.Is(err, cause) {
		t.Fatal("Unwrap should expose the cause")
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := &autojson.Error{Kind: autojson.KindDecode, Op: "decode", Path: "a.json", Err: errors.New("bad token")}
	wrapped := fmt.Errorf("loading fixtures: %w", inner)

	kind, ok := autojson.KindOf(wrapped)
	if !ok || kind != autojson.KindDecode {
		t.Fatalf("KindOf = %v, %v", kind, ok)
	}
	if !autojson.IsDecodeError(wrapped) {
		t.Fatal("IsDecodeError should see through wrapping")
	}
	if autojson.IsFileError(wrapped) {
		t.Fatal("IsFileError should not match a decode error")
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	if _, ok := autojson.KindOf(errors.New("unrelated")); ok {
		t.Fatal("foreign errors carry no kind")
	}
	if autojson.IsFileError(nil) || autojson.IsDecodeError(nil) {
		t.Fatal("nil has no kind")
	}
}

func TestKind_String(t *testing.T) {
	cases := map[autojson.Kind]string{
		autojson.KindJSON:   "json",
		autojson.KindFile:   "file",
		autojson.KindDecode: "decode",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
