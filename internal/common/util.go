package common

// WipeByteArray overwrites the contents of b with zeros. Use it to clear
// password buffers once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
