package domain

import "bytes"

var newline = []byte("\n")

// splitLines splits content after every '\n', keeping the terminators.
// A trailing fragment without a terminator is still a line.
func splitLines(content []byte) [][]byte {
	lines := bytes.SplitAfter(content, newline)
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}

	return lines
}

func joinLines(lines [][]byte) []byte {
	return bytes.Join(lines, nil)
}

// concatLines joins several line slices into one buffer.
func concatLines(parts ...[][]byte) []byte {
	var buf bytes.Buffer

	for _, part := range parts {
		for _, line := range part {
			buf.Write(line)
		}
	}

	return buf.Bytes()
}
