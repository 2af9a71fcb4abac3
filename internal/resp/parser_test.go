package resp

import (
	"bytes"
	"errors"
	"testing"
	"testing/quick"
)

// ============================================================
// Parse Tests - single values
// ============================================================

func TestParse_SingleValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{
			name:  "simple string",
			input: "+OK\r\n",
			want:  Value{Kind: KindSimpleString, Str: []byte("OK")},
		},
		{
			name:  "empty simple string",
			input: "+\r\n",
			want:  Value{Kind: KindSimpleString, Str: []byte("")},
		},
		{
			name:  "error",
			input: "-ERR unknown command\r\n",
			want:  Value{Kind: KindError, Str: []byte("ERR unknown command")},
		},
		{
			name:  "integer",
			input: ":1000\r\n",
			want:  Value{Kind: KindInteger, Int: 1000},
		},
		{
			name:  "negative integer",
			input: ":-42\r\n",
			want:  Value{Kind: KindInteger, Int: -42},
		},
		{
			name:  "bulk string",
			input: "$5\r\nhello\r\n",
			want:  Value{Kind: KindBulkString, Str: []byte("hello")},
		},
		{
			name:  "empty bulk string",
			input: "$0\r\n\r\n",
			want:  Value{Kind: KindBulkString, Str: []byte("")},
		},
		{
			name:  "bulk string with embedded CRLF",
			input: "$6\r\nab\r\ncd\r\n",
			want:  Value{Kind: KindBulkString, Str: []byte("ab\r\ncd")},
		},
		{
			name:  "null bulk string",
			input: "$-1\r\n",
			want:  Value{Kind: KindNull},
		},
		{
			name:  "null array",
			input: "*-1\r\n",
			want:  Value{Kind: KindNull},
		},
		{
			name:  "empty array",
			input: "*0\r\n",
			want:  Value{Kind: KindArray, Array: []Value{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := 0
			got, err := Parse([]byte(tt.input), &pos)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pos != len(tt.input) {
				t.Errorf("cursor = %d, want %d", pos, len(tt.input))
			}
			assertValueEqual(t, got, tt.want)
		})
	}
}

func TestParse_Array(t *testing.T) {
	input := []byte("*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")
	pos := 0

	got, err := Parse(input, &pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != KindArray {
		t.Fatalf("kind = %v, want array", got.Kind)
	}
	if len(got.Array) != 3 {
		t.Fatalf("len = %d, want 3", len(got.Array))
	}
	for i, want := range []string{"SET", "foo", "bar"} {
		if string(got.Array[i].Str) != want {
			t.Errorf("elem[%d] = %q, want %q", i, got.Array[i].Str, want)
		}
	}
	if pos != len(input) {
		t.Errorf("cursor = %d, want %d", pos, len(input))
	}
}

func TestParse_NestedArray(t *testing.T) {
	input := []byte("*2\r\n*2\r\n:1\r\n:2\r\n$1\r\nx\r\n")
	pos := 0

	got, err := Parse(input, &pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Array[0].Kind != KindArray || len(got.Array[0].Array) != 2 {
		t.Errorf("inner array not parsed: %+v", got.Array[0])
	}
	if got.Array[0].Array[1].Int != 2 {
		t.Errorf("inner[1] = %d, want 2", got.Array[0].Array[1].Int)
	}
	if string(got.Array[1].Str) != "x" {
		t.Errorf("elem[1] = %q, want x", got.Array[1].Str)
	}
}

// ============================================================
// Parse Tests - malformed input
// ============================================================

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "invalid prefix", input: "%2\r\n"},
		{name: "unterminated simple string", input: "+OK"},
		{name: "unterminated integer", input: ":12"},
		{name: "integer with trailing garbage", input: ":12x\r\n"},
		{name: "integer with leading space", input: ": 12\r\n"},
		{name: "empty integer", input: ":\r\n"},
		{name: "bulk length not a number", input: "$abc\r\n"},
		{name: "bulk length below -1", input: "$-2\r\n"},
		{name: "bulk body short of declared length", input: "$10\r\nhi\r\n"},
		{name: "bulk missing terminator", input: "$2\r\nhi"},
		{name: "bulk wrong terminator", input: "$2\r\nhixx"},
		{name: "array length not a number", input: "*x\r\n"},
		{name: "array length below -1", input: "*-3\r\n"},
		{name: "array with missing elements", input: "*2\r\n$1\r\na\r\n"},
		{name: "lone LF line", input: "+OK\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := 0
			_, err := Parse([]byte(tt.input), &pos)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrProtocol) {
				t.Errorf("error %v does not wrap ErrProtocol", err)
			}
		})
	}
}

func TestParse_DoesNotMutateInput(t *testing.T) {
	input := []byte("$3\r\nfoo\r\n")
	orig := append([]byte(nil), input...)

	pos := 0
	if _, err := Parse(input, &pos); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(input, orig) {
		t.Error("parser mutated its input")
	}
}

// ============================================================
// Streaming: concatenated frames parse in order
// ============================================================

func TestParse_ConcatenatedFrames(t *testing.T) {
	frames := []string{
		"+OK\r\n",
		"*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n",
		":7\r\n",
		"$-1\r\n",
		"$4\r\nlast\r\n",
	}
	buf := []byte(frames[0] + frames[1] + frames[2] + frames[3] + frames[4])

	pos := 0
	var got []Value
	for pos < len(buf) {
		v, err := Parse(buf, &pos)
		if err != nil {
			t.Fatalf("frame %d: unexpected error: %v", len(got), err)
		}
		got = append(got, v)
	}

	if len(got) != len(frames) {
		t.Fatalf("parsed %d frames, want %d", len(got), len(frames))
	}
	if got[0].Kind != KindSimpleString || got[1].Kind != KindArray ||
		got[2].Int != 7 || got[3].Kind != KindNull || string(got[4].Str) != "last" {
		t.Errorf("frames parsed out of order or wrong: %+v", got)
	}
}

// ============================================================
// Round-trip properties
// ============================================================

func TestBulkReply_RoundTrip(t *testing.T) {
	prop := func(v []byte) bool {
		pos := 0
		parsed, err := Parse(BulkReply(v), &pos)
		if err != nil {
			return false
		}
		return parsed.Kind == KindBulkString && bytes.Equal(parsed.Str, v)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

func TestParse_ReencodeCanonical(t *testing.T) {
	// Every byte string the codec can emit must parse back and re-encode
	// to the identical bytes.
	emitted := [][]byte{
		OKReply(),
		NullBulkReply(),
		IntReply(0),
		IntReply(1),
		IntReply(-12345),
		BulkReply(nil),
		BulkReply([]byte("value with\r\nbinary\x00bytes")),
		ErrorReply("ERR unknown command"),
		AppendValue(nil, Value{Kind: KindArray, Array: []Value{
			{Kind: KindBulkString, Str: []byte("GET")},
			{Kind: KindBulkString, Str: []byte("k")},
		}}),
	}

	for _, wire := range emitted {
		pos := 0
		v, err := Parse(wire, &pos)
		if err != nil {
			t.Fatalf("parse %q: %v", wire, err)
		}
		if got := AppendValue(nil, v); !bytes.Equal(got, wire) {
			t.Errorf("re-encode = %q, want %q", got, wire)
		}
	}
}

func assertValueEqual(t *testing.T, got, want Value) {
	t.Helper()
	if got.Kind != want.Kind {
		t.Fatalf("kind = %v, want %v", got.Kind, want.Kind)
	}
	if !bytes.Equal(got.Str, want.Str) {
		t.Errorf("str = %q, want %q", got.Str, want.Str)
	}
	if got.Int != want.Int {
		t.Errorf("int = %d, want %d", got.Int, want.Int)
	}
	if len(got.Array) != len(want.Array) {
		t.Errorf("array len = %d, want %d", len(got.Array), len(want.Array))
	}
}
