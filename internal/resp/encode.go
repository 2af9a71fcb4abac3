package resp

import "strconv"

// Shared reply constants. Callers must treat these as read-only.
var (
	okReply       = []byte("+OK\r\n")
	nullBulkReply = []byte("$-1\r\n")
	zeroReply     = []byte(":0\r\n")
	oneReply      = []byte(":1\r\n")
)

// OKReply returns "+OK\r\n".
func OKReply() []byte { return okReply }

// NullBulkReply returns the null bulk string "$-1\r\n", the miss reply.
func NullBulkReply() []byte { return nullBulkReply }

// BulkReply encodes v as a length-prefixed bulk string.
func BulkReply(v []byte) []byte {
	return AppendValue(nil, Value{Kind: KindBulkString, Str: v})
}

// IntReply encodes n as a RESP integer. 0 and 1 are served from shared
// buffers since they dominate (DEL replies).
func IntReply(n int64) []byte {
	switch n {
	case 0:
		return zeroReply
	case 1:
		return oneReply
	}
	return AppendValue(nil, Value{Kind: KindInteger, Int: n})
}

// ErrorReply encodes msg as a RESP error. msg must be a single line; the
// encoder does not reject embedded CR or LF.
func ErrorReply(msg string) []byte {
	out := make([]byte, 0, len(msg)+3)
	out = append(out, '-')
	out = append(out, msg...)
	return append(out, crlf...)
}

// AppendValue appends the canonical encoding of v to dst. Null always
// encodes as the null bulk string.
func AppendValue(dst []byte, v Value) []byte {
	switch v.Kind {
	case KindSimpleString:
		dst = append(dst, '+')
		dst = append(dst, v.Str...)
		return append(dst, crlf...)
	case KindError:
		dst = append(dst, '-')
		dst = append(dst, v.Str...)
		return append(dst, crlf...)
	case KindInteger:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, v.Int, 10)
		return append(dst, crlf...)
	case KindBulkString:
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(v.Str)), 10)
		dst = append(dst, crlf...)
		dst = append(dst, v.Str...)
		return append(dst, crlf...)
	case KindArray:
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v.Array)), 10)
		dst = append(dst, crlf...)
		for _, elem := range v.Array {
			dst = AppendValue(dst, elem)
		}
		return dst
	case KindNull:
		return append(dst, nullBulkReply...)
	}
	return dst
}
