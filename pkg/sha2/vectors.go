package sha2

import "strings"

// Vector is a known-answer test case.
type Vector struct {
	Name    string
	Input   []byte
	Variant Variant
	Want    string
}

const (
	msg448 = "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"
	msg896 = "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"
)

// Vectors returns the FIPS 180-4 example messages with their digests.
// A fresh slice is built on every call so callers may not alias the inputs.
func Vectors() []Vector {
	million := []byte(strings.Repeat("a", 1000000))

	return []Vector{
		{"empty", []byte{}, SHA224, "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
		{"empty", []byte{}, SHA256, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", []byte("abc"), SHA224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"abc", []byte("abc"), SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"448 bits", []byte(msg448), SHA224, "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525"},
		{"448 bits", []byte(msg448), SHA256, "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
		{"896 bits", []byte(msg896), SHA224, "c97ca9a559850ce97a04a96def6d99a9e0e0e2ab14e6b8df265fc0b3"},
		{"896 bits", []byte(msg896), SHA256, "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1"},
		{"one million a", million, SHA224, "20794655980c91d8bbb4c1ea97618a4bf03f42581948b2ee4ee7ad67"},
		{"one million a", million, SHA256, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
	}
}
